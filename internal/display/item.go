// Package display normalizes planner records into a single displayable
// item shape and renders those items as styled terminal text.
package display

import (
	"strings"
	"time"

	"plandash/internal/record"
)

// Color is the emphasis tag of an Additional's value. The renderer maps it
// to an actual terminal style; the item model stays presentation-free.
type Color int

const (
	ColorNone Color = iota
	ColorBlue
	ColorOrange
	ColorRed
	ColorGreen
)

// Value is an Additional's payload: either verbatim text or a point in
// time that is humanized relative to the current date at render time.
type Value interface {
	display(current time.Time) string
}

// TextValue is shown exactly as written.
type TextValue string

func (v TextValue) display(time.Time) string { return string(v) }

// TimeValue is shown through RelativeDate, with its time-of-day appended
// unless it is an all-day sentinel.
type TimeValue time.Time

func (v TimeValue) display(current time.Time) string {
	t := time.Time(v)
	return RelativeDate(t, t.Format("15:04"), current)
}

// Additional is a labeled fact attached to an item, e.g. "Deadline: next
// Friday". A nil Value means there is nothing to show; neither label nor
// value is rendered then.
type Additional struct {
	Name  string
	Value Value
	Color Color
}

// ValueText resolves the additional's value for display. The second return
// is false when the additional must be omitted entirely.
func (a Additional) ValueText(current time.Time) (string, bool) {
	if a.Value == nil {
		return "", false
	}
	s := a.Value.display(current)
	if s == "" {
		return "", false
	}
	return s, true
}

// Timestamp is an item's time-of-day range in HH:MM granularity. Empty
// strings mean the corresponding endpoint is absent; both absent renders
// as "all day".
type Timestamp struct {
	Start string
	End   string
}

// NewTimestamp converts a wire timestamp, stripping seconds from both
// endpoints.
func NewTimestamp(ts record.Timestamp) *Timestamp {
	out := &Timestamp{Start: stripSeconds(ts.Start.Time)}
	if ts.End != nil {
		out.End = stripSeconds(ts.End.Time)
	}
	return out
}

// Phrase renders the range as an inline title suffix.
func (t *Timestamp) Phrase() string {
	switch {
	case t.Start != "" && t.End != "":
		return "from " + t.Start + " to " + t.End
	case t.Start != "":
		return "from " + t.Start
	case t.End != "":
		return "until " + t.End
	default:
		return "all day"
	}
}

// stripSeconds reduces HH:MM:SS to HH:MM. HH:MM values pass through.
func stripSeconds(clock string) string {
	if strings.Count(clock, ":") == 2 {
		return clock[:strings.LastIndex(clock, ":")]
	}
	return clock
}

// Item is the canonical unit of display. It is built once per raw record,
// rendered once, and never mutated; every Item gets freshly allocated
// slices, nothing is shared between constructions.
type Item struct {
	Title       string
	Body        string
	Additionals []Additional
	Time        *Timestamp
	People      []record.Person
}
