// Package record holds the wire model for the planner's JSON output: the
// closed set of record kinds, one struct per kind, and the batch decoder.
// Records are decoded as-is; turning them into something displayable is
// the job of internal/display.
package record

import (
	"encoding/json"
	"fmt"
	"time"
)

// Kind identifies how a raw record must be interpreted. The set is closed;
// the planner supplies the kind alongside each record list, it is never
// inferred from record shape.
type Kind string

const (
	KindEvents         Kind = "events"
	KindDailyNotes     Kind = "daily_notes"
	KindTickles        Kind = "tickles"
	KindPersonDates    Kind = "person_dates"
	KindTasks          Kind = "tasks"
	KindProjects       Kind = "projects"
	KindWaitings       Kind = "waitings"
	KindTargetContexts Kind = "target_contexts"
)

// Known reports whether k is a member of the closed kind set.
func (k Kind) Known() bool {
	switch k {
	case KindEvents, KindDailyNotes, KindTickles, KindPersonDates,
		KindTasks, KindProjects, KindWaitings, KindTargetContexts:
		return true
	}
	return false
}

// UnknownKindError reports a record kind outside the closed set. This is a
// caller/configuration error, not a data error, and is fatal to the call
// in progress.
type UnknownKindError struct {
	Kind Kind
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown record kind %q", string(e.Kind))
}

// Date layouts used by the planner.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05"
)

// ParseDate parses a bare planner date (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("record: bad date %q: %w", s, err)
	}
	return t, nil
}

// ParseDateTime parses a planner datetime (YYYY-MM-DDTHH:MM:SS).
func ParseDateTime(s string) (time.Time, error) {
	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("record: bad datetime %q: %w", s, err)
	}
	return t, nil
}

// Person is an (identifier, display name) pair. The planner encodes it as
// a two-element JSON array.
type Person struct {
	ID   string
	Name string
}

func (p *Person) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("record: person must be an [id, name] pair, got %d elements", len(pair))
	}
	p.ID, p.Name = pair[0], pair[1]
	return nil
}

func (p Person) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{p.ID, p.Name})
}

// TimePoint is one endpoint of an event timestamp. Time is empty for
// all-day endpoints.
type TimePoint struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// Timestamp is an event's start/end pair. End is nil for point events.
type Timestamp struct {
	Start TimePoint  `json:"start"`
	End   *TimePoint `json:"end"`
}

// Event is a calendar event occurrence.
type Event struct {
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Location  string    `json:"location"`
	Timestamp Timestamp `json:"timestamp"`
	People    []Person  `json:"people"`
}

// Note is a free-form note pinned to a single day.
type Note struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Date  string `json:"date"`
}

// Tickle is a tickler-file reminder that surfaced on Date.
type Tickle struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Date  string `json:"date"`
}

// PersonDate is a date linked to a person (birthday, anniversary, ...).
type PersonDate struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Date   string `json:"date"`
	Person Person `json:"person"`
}

// Task is an actionable item. CanStart is false while the task is blocked
// behind something else.
type Task struct {
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	CanStart  bool     `json:"can_start"`
	Scheduled string   `json:"scheduled"`
	Deadline  string   `json:"deadline"`
	Priority  string   `json:"priority"`
	Contexts  []string `json:"contexts"`
	Effort    string   `json:"effort"`
	People    []Person `json:"people"`
}

// Project is a multi-task container; only its own metadata is displayed.
type Project struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Scheduled string `json:"scheduled"`
	Deadline  string `json:"deadline"`
	Priority  string `json:"priority"`
}

// Waiting is an item delegated to someone else; Sent is when it left.
type Waiting struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Scheduled string `json:"scheduled"`
	Deadline  string `json:"deadline"`
	Sent      string `json:"sent"`
}
