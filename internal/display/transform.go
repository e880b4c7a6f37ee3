package display

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"plandash/internal/record"
)

// This file maps each record kind onto the common Item shape. The mapping
// per kind is fixed; absent upstream fields (empty string / JSON null)
// propagate as absent Additional values, never as empty-string values.

// FromEvent maps a calendar event. The event's date is not part of the
// item; events are always embedded in a date-specific day section.
func FromEvent(ev record.Event) Item {
	return Item{
		Title: ev.Title,
		Body:  ev.Body,
		Additionals: []Additional{
			{Name: "Location", Value: textValue(ev.Location), Color: ColorBlue},
		},
		Time:   NewTimestamp(ev.Timestamp),
		People: ev.People,
	}
}

// FromNote maps a daily note: title and body only.
func FromNote(n record.Note) Item {
	return Item{
		Title:       n.Title,
		Body:        n.Body,
		Additionals: []Additional{},
	}
}

// FromTickle maps a tickler reminder.
func FromTickle(t record.Tickle) (Item, error) {
	appeared, err := dateValue(t.Date)
	if err != nil {
		return Item{}, err
	}
	return Item{
		Title: t.Title,
		Body:  t.Body,
		Additionals: []Additional{
			{Name: "Appeared", Value: appeared, Color: ColorBlue},
		},
	}, nil
}

// FromPersonDate maps a person-linked date.
func FromPersonDate(pd record.PersonDate) (Item, error) {
	date, err := dateValue(pd.Date)
	if err != nil {
		return Item{}, err
	}
	return Item{
		Title: pd.Title,
		Body:  pd.Body,
		Additionals: []Additional{
			{Name: "Date", Value: date, Color: ColorBlue},
			{Name: "Person", Value: textValue(pd.Person.Name), Color: ColorNone},
		},
	}, nil
}

// FromTask maps an actionable task. A task that cannot start yet gets a
// "[NEXT] " title prefix so blocked work stands out.
func FromTask(t record.Task) (Item, error) {
	title := t.Title
	if !t.CanStart {
		title = "[NEXT] " + title
	}

	scheduled, err := dateTimeValue(t.Scheduled)
	if err != nil {
		return Item{}, err
	}
	deadline, err := dateTimeValue(t.Deadline)
	if err != nil {
		return Item{}, err
	}

	var contexts Value
	if len(t.Contexts) > 0 {
		contexts = TextValue(strings.Join(t.Contexts, ", "))
	}

	return Item{
		Title: title,
		Body:  t.Body,
		Additionals: []Additional{
			{Name: "Scheduled", Value: scheduled, Color: ColorOrange},
			{Name: "Deadline", Value: deadline, Color: ColorRed},
			{Name: "Priority", Value: textValue(t.Priority), Color: ColorGreen},
			{Name: "Context", Value: contexts, Color: ColorBlue},
			{Name: "Effort", Value: textValue(t.Effort), Color: ColorBlue},
		},
		People: t.People,
	}, nil
}

// FromProject maps a project: like a task but without context, effort or
// people.
func FromProject(p record.Project) (Item, error) {
	scheduled, err := dateTimeValue(p.Scheduled)
	if err != nil {
		return Item{}, err
	}
	deadline, err := dateTimeValue(p.Deadline)
	if err != nil {
		return Item{}, err
	}
	return Item{
		Title: p.Title,
		Body:  p.Body,
		Additionals: []Additional{
			{Name: "Scheduled", Value: scheduled, Color: ColorOrange},
			{Name: "Deadline", Value: deadline, Color: ColorRed},
			{Name: "Priority", Value: textValue(p.Priority), Color: ColorGreen},
		},
	}, nil
}

// FromWaiting maps a delegated item.
func FromWaiting(w record.Waiting) (Item, error) {
	scheduled, err := dateTimeValue(w.Scheduled)
	if err != nil {
		return Item{}, err
	}
	deadline, err := dateTimeValue(w.Deadline)
	if err != nil {
		return Item{}, err
	}
	sent, err := dateValue(w.Sent)
	if err != nil {
		return Item{}, err
	}
	return Item{
		Title: w.Title,
		Body:  w.Body,
		Additionals: []Additional{
			{Name: "Scheduled", Value: scheduled, Color: ColorOrange},
			{Name: "Deadline", Value: deadline, Color: ColorRed},
			{Name: "Sent", Value: sent, Color: ColorBlue},
		},
	}, nil
}

// FromContextLabel turns a bare context key into a section-header item:
// underscores become spaces and the first letter is capitalized. Context
// sections have no body, additionals or people.
func FromContextLabel(label string) Item {
	return Item{
		Title:       Capitalize(strings.ReplaceAll(label, "_", " ")),
		Additionals: []Additional{},
	}
}

// Capitalize upper-cases the first rune and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	r := []rune(lower)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// TransformAll decodes a raw record list of the given kind and maps every
// record onto an Item, preserving input order. Target contexts do not pass
// through here; their payload is an object, not a list, and the dashboard
// layer fans them out itself.
func TransformAll(kind record.Kind, raw json.RawMessage) ([]Item, error) {
	switch kind {
	case record.KindEvents:
		var evs []record.Event
		if err := json.Unmarshal(raw, &evs); err != nil {
			return nil, fmt.Errorf("display: decode %s: %w", kind, err)
		}
		items := make([]Item, 0, len(evs))
		for _, ev := range evs {
			items = append(items, FromEvent(ev))
		}
		return items, nil

	case record.KindDailyNotes:
		var notes []record.Note
		if err := json.Unmarshal(raw, &notes); err != nil {
			return nil, fmt.Errorf("display: decode %s: %w", kind, err)
		}
		items := make([]Item, 0, len(notes))
		for _, n := range notes {
			items = append(items, FromNote(n))
		}
		return items, nil

	case record.KindTickles:
		var ticks []record.Tickle
		if err := json.Unmarshal(raw, &ticks); err != nil {
			return nil, fmt.Errorf("display: decode %s: %w", kind, err)
		}
		items := make([]Item, 0, len(ticks))
		for _, t := range ticks {
			it, err := FromTickle(t)
			if err != nil {
				return nil, err
			}
			items = append(items, it)
		}
		return items, nil

	case record.KindPersonDates:
		var pds []record.PersonDate
		if err := json.Unmarshal(raw, &pds); err != nil {
			return nil, fmt.Errorf("display: decode %s: %w", kind, err)
		}
		items := make([]Item, 0, len(pds))
		for _, pd := range pds {
			it, err := FromPersonDate(pd)
			if err != nil {
				return nil, err
			}
			items = append(items, it)
		}
		return items, nil

	case record.KindTasks:
		var tasks []record.Task
		if err := json.Unmarshal(raw, &tasks); err != nil {
			return nil, fmt.Errorf("display: decode %s: %w", kind, err)
		}
		return TransformTasks(tasks)

	case record.KindProjects:
		var projects []record.Project
		if err := json.Unmarshal(raw, &projects); err != nil {
			return nil, fmt.Errorf("display: decode %s: %w", kind, err)
		}
		items := make([]Item, 0, len(projects))
		for _, p := range projects {
			it, err := FromProject(p)
			if err != nil {
				return nil, err
			}
			items = append(items, it)
		}
		return items, nil

	case record.KindWaitings:
		var waits []record.Waiting
		if err := json.Unmarshal(raw, &waits); err != nil {
			return nil, fmt.Errorf("display: decode %s: %w", kind, err)
		}
		items := make([]Item, 0, len(waits))
		for _, w := range waits {
			it, err := FromWaiting(w)
			if err != nil {
				return nil, err
			}
			items = append(items, it)
		}
		return items, nil
	}

	return nil, &record.UnknownKindError{Kind: kind}
}

// TransformTasks maps an already-decoded task list, preserving order.
func TransformTasks(tasks []record.Task) ([]Item, error) {
	items := make([]Item, 0, len(tasks))
	for _, t := range tasks {
		it, err := FromTask(t)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// textValue wraps an optional wire string; empty means absent.
func textValue(s string) Value {
	if s == "" {
		return nil
	}
	return TextValue(s)
}

// dateValue parses an optional YYYY-MM-DD wire field.
func dateValue(s string) (Value, error) {
	if s == "" {
		return nil, nil
	}
	t, err := record.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return TimeValue(t), nil
}

// dateTimeValue parses an optional YYYY-MM-DDTHH:MM:SS wire field.
func dateTimeValue(s string) (Value, error) {
	if s == "" {
		return nil, nil
	}
	t, err := record.ParseDateTime(s)
	if err != nil {
		return nil, err
	}
	return TimeValue(t), nil
}
