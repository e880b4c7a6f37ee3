package dashboard

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plandash/internal/display"
	"plandash/internal/record"
)

func testRenderer(t *testing.T) *display.Renderer {
	t.Helper()
	r, err := display.NewRenderer(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), "ascii", 60)
	require.NoError(t, err)
	return r
}

func eventOn(date, title string) record.Event {
	return record.Event{
		Title: title,
		Timestamp: record.Timestamp{
			Start: record.TimePoint{Date: date},
		},
	}
}

func TestEventBucketsPartition(t *testing.T) {
	evs := []record.Event{
		eventOn("2026-03-12", "b1"),
		eventOn("2026-03-10", "a1"),
		eventOn("2026-03-12", "b2"),
		eventOn("2026-03-10", "a2"),
	}

	buckets, err := EventBuckets(evs)
	require.NoError(t, err)
	require.Len(t, buckets, 2)

	// Distinct dates in first-occurrence order, not calendar order.
	assert.Equal(t, time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC), buckets[0].Date)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), buckets[1].Date)

	// No record duplicated or dropped; within-date insertion order kept.
	total := 0
	for _, b := range buckets {
		total += len(b.Items)
	}
	assert.Equal(t, len(evs), total)
	assert.Equal(t, "b1", buckets[0].Items[0].Title)
	assert.Equal(t, "b2", buckets[0].Items[1].Title)
	assert.Equal(t, "a1", buckets[1].Items[0].Title)
	assert.Equal(t, "a2", buckets[1].Items[1].Title)
}

func TestNoteBuckets(t *testing.T) {
	notes := []record.Note{
		{Title: "n1", Date: "2026-03-11"},
		{Title: "n2", Date: "2026-03-11"},
		{Title: "n3", Date: "2026-03-13"},
	}
	buckets, err := NoteBuckets(notes)
	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Len(t, buckets[0].Items, 2)
	assert.Len(t, buckets[1].Items, 1)
}

func TestDayViewEndToEnd(t *testing.T) {
	r := testRenderer(t)

	raw := []byte(`[
		{
			"title": "e1", "body": "", "location": "",
			"timestamp": {"start": {"date": "2026-03-11", "time": "09:00:00"},
			              "end": {"date": "2026-03-11", "time": "10:00:00"}},
			"people": []
		},
		{
			"title": "e2", "body": "", "location": "",
			"timestamp": {"start": {"date": "2026-03-11", "time": null}, "end": null},
			"people": []
		}
	]`)

	out, err := dayView(r, record.KindEvents, raw)
	require.NoError(t, err)

	// One day header for both events.
	assert.Equal(t, 1, strings.Count(out, "Wednesday, March 11"))

	i1 := strings.Index(out, "from 09:00 to 10:00")
	i2 := strings.Index(out, "all day")
	require.GreaterOrEqual(t, i1, 0)
	require.GreaterOrEqual(t, i2, 0)
	assert.Less(t, i1, i2, "events must keep input order")
}

func TestDayViewSeparatesDays(t *testing.T) {
	r := testRenderer(t)

	raw := []byte(`[
		{"title": "n1", "body": "", "date": "2026-03-11"},
		{"title": "n2", "body": "", "date": "2026-03-12"}
	]`)
	out, err := dayView(r, record.KindDailyNotes, raw)
	require.NoError(t, err)
	assert.Contains(t, out, "Wednesday, March 11")
	assert.Contains(t, out, "Thursday, March 12")
	assert.Contains(t, out, "\n\n", "day groups are separated by a blank line")
}

func TestDayViewEmpty(t *testing.T) {
	r := testRenderer(t)

	out, err := dayView(r, record.KindEvents, []byte(`[]`))
	require.NoError(t, err)
	assert.Contains(t, out, "No items found.")
}
