// Package dashboard assembles named dashboard sections from a decoded
// planner batch: day-by-day views for events and notes, per-context
// mini-sections for urgent contexts, and flat item lists for the rest.
package dashboard

import (
	"encoding/json"
	"strings"
	"time"

	"plandash/internal/display"
	"plandash/internal/record"
)

// DayBucket holds the items that share one calendar date, in input order.
type DayBucket struct {
	Date  time.Time
	Items []display.Item
}

// EventBuckets groups events by the start date of their timestamps.
// Distinct dates keep their first-occurrence order from the input — the
// planner already emits events date-ordered, and re-sorting here would
// hide upstream ordering bugs.
func EventBuckets(evs []record.Event) ([]DayBucket, error) {
	return buildBuckets(len(evs), func(i int) (string, display.Item) {
		return evs[i].Timestamp.Start.Date, display.FromEvent(evs[i])
	})
}

// NoteBuckets groups daily notes by their own date field, with the same
// ordering guarantees as EventBuckets.
func NoteBuckets(notes []record.Note) ([]DayBucket, error) {
	return buildBuckets(len(notes), func(i int) (string, display.Item) {
		return notes[i].Date, display.FromNote(notes[i])
	})
}

// buildBuckets does the order-preserving grouping. The bucket key is the
// raw wire date string, so bucketing is exact date equality; an explicit
// key-order slice carries the first-occurrence order.
func buildBuckets(n int, at func(i int) (string, display.Item)) ([]DayBucket, error) {
	order := make([]string, 0, n)
	byDate := make(map[string]*DayBucket)

	for i := 0; i < n; i++ {
		key, item := at(i)
		b, ok := byDate[key]
		if !ok {
			date, err := record.ParseDate(key)
			if err != nil {
				return nil, err
			}
			b = &DayBucket{Date: date}
			byDate[key] = b
			order = append(order, key)
		}
		b.Items = append(b.Items, item)
	}

	out := make([]DayBucket, 0, len(order))
	for _, key := range order {
		out = append(out, *byDate[key])
	}
	return out, nil
}

// dayHeaderLayout formats bucket headers like "Monday, January 02".
const dayHeaderLayout = "Monday, January 02"

// dayView renders a per-day section for events or daily notes: a day
// header followed by that day's items, one blank line between day groups.
// Empty input still renders one (empty) item list so callers see a
// uniform "no items" notice.
func dayView(r *display.Renderer, kind record.Kind, raw json.RawMessage) (string, error) {
	var (
		buckets []DayBucket
		err     error
	)

	switch kind {
	case record.KindEvents:
		var evs []record.Event
		if err := json.Unmarshal(raw, &evs); err != nil {
			return "", err
		}
		buckets, err = EventBuckets(evs)
	case record.KindDailyNotes:
		var notes []record.Note
		if err := json.Unmarshal(raw, &notes); err != nil {
			return "", err
		}
		buckets, err = NoteBuckets(notes)
	default:
		return "", &record.UnknownKindError{Kind: kind}
	}
	if err != nil {
		return "", err
	}

	if len(buckets) == 0 {
		return r.ItemList(nil), nil
	}

	blocks := make([]string, 0, len(buckets))
	for _, b := range buckets {
		header := r.Styles.DayHeader.Render(b.Date.Format(dayHeaderLayout))
		blocks = append(blocks, header+"\n"+r.ItemList(b.Items))
	}
	return strings.Join(blocks, "\n\n"), nil
}
