package display

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plandash/internal/record"
)

func TestFromEvent(t *testing.T) {
	ev := record.Event{
		Title:    "Standup",
		Body:     "Agenda",
		Location: "Room 2",
		Timestamp: record.Timestamp{
			Start: record.TimePoint{Date: "2026-03-11", Time: "09:00:00"},
			End:   &record.TimePoint{Date: "2026-03-11", Time: "09:15:00"},
		},
		People: []record.Person{{ID: "p1", Name: "Sam"}},
	}

	it := FromEvent(ev)
	assert.Equal(t, "Standup", it.Title)
	assert.Equal(t, "Agenda", it.Body)
	require.Len(t, it.Additionals, 1)
	assert.Equal(t, "Location", it.Additionals[0].Name)
	assert.Equal(t, TextValue("Room 2"), it.Additionals[0].Value)
	require.NotNil(t, it.Time)
	assert.Equal(t, "from 09:00 to 09:15", it.Time.Phrase())
	require.Len(t, it.People, 1)
	assert.Equal(t, "Sam", it.People[0].Name)
}

func TestFromEventAbsentLocation(t *testing.T) {
	it := FromEvent(record.Event{Title: "Walk"})
	require.Len(t, it.Additionals, 1)
	assert.Nil(t, it.Additionals[0].Value, "empty location must be absent, not empty-string")
}

func TestFromNote(t *testing.T) {
	it := FromNote(record.Note{Title: "Note", Body: "text", Date: "2026-03-11"})
	assert.Equal(t, "Note", it.Title)
	assert.Empty(t, it.Additionals)
	assert.Nil(t, it.Time)
	assert.Empty(t, it.People)
}

func TestFromTaskNextPrefix(t *testing.T) {
	blocked, err := FromTask(record.Task{Title: "Ship it", CanStart: false})
	require.NoError(t, err)
	assert.Equal(t, "[NEXT] Ship it", blocked.Title)

	ready, err := FromTask(record.Task{Title: "Ship it", CanStart: true})
	require.NoError(t, err)
	assert.Equal(t, "Ship it", ready.Title)
}

func TestFromTaskAdditionals(t *testing.T) {
	task := record.Task{
		Title:     "Plan",
		CanStart:  true,
		Scheduled: "2026-03-12T09:00:00",
		Priority:  "A",
		Contexts:  []string{"home", "errands"},
		People:    []record.Person{{ID: "p2", Name: "Alex"}},
	}
	it, err := FromTask(task)
	require.NoError(t, err)

	byName := map[string]Additional{}
	for _, a := range it.Additionals {
		byName[a.Name] = a
	}

	now := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	v, ok := byName["Scheduled"].ValueText(now)
	require.True(t, ok)
	assert.Equal(t, "tomorrow at 09:00", v)

	_, ok = byName["Deadline"].ValueText(now)
	assert.False(t, ok, "absent deadline must not render")

	v, ok = byName["Context"].ValueText(now)
	require.True(t, ok)
	assert.Equal(t, "home, errands", v)

	_, ok = byName["Effort"].ValueText(now)
	assert.False(t, ok)

	require.Len(t, it.People, 1)
}

func TestFromTaskEmptyContextsAbsent(t *testing.T) {
	it, err := FromTask(record.Task{Title: "x", CanStart: true})
	require.NoError(t, err)
	for _, a := range it.Additionals {
		if a.Name == "Context" {
			assert.Nil(t, a.Value)
		}
	}
}

func TestFromPersonDate(t *testing.T) {
	it, err := FromPersonDate(record.PersonDate{
		Title:  "Birthday",
		Date:   "2026-03-12",
		Person: record.Person{ID: "p3", Name: "Robin"},
	})
	require.NoError(t, err)
	require.Len(t, it.Additionals, 2)
	assert.Equal(t, "Date", it.Additionals[0].Name)
	assert.Equal(t, "Person", it.Additionals[1].Name)
	assert.Equal(t, TextValue("Robin"), it.Additionals[1].Value)
	assert.Equal(t, ColorNone, it.Additionals[1].Color)
	assert.Empty(t, it.People, "person dates carry the person as an additional, not a people list")
}

func TestFromWaiting(t *testing.T) {
	it, err := FromWaiting(record.Waiting{Title: "Reply", Sent: "2026-03-01"})
	require.NoError(t, err)
	names := []string{}
	for _, a := range it.Additionals {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"Scheduled", "Deadline", "Sent"}, names)
	assert.Empty(t, it.People)
}

func TestFromContextLabel(t *testing.T) {
	it := FromContextLabel("deep_work")
	assert.Equal(t, "Deep work", it.Title)
	assert.Empty(t, it.Body)
	assert.Empty(t, it.Additionals)
}

func TestTransformAllUnknownKind(t *testing.T) {
	_, err := TransformAll(record.Kind("crunch_points"), json.RawMessage(`[]`))
	var unknown *record.UnknownKindError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, record.Kind("crunch_points"), unknown.Kind)
}

func TestTransformAllPreservesOrder(t *testing.T) {
	raw := json.RawMessage(`[
		{"title": "first", "body": "", "date": "2026-03-01"},
		{"title": "second", "body": "", "date": "2026-03-02"}
	]`)
	items, err := TransformAll(record.KindTickles, raw)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].Title)
	assert.Equal(t, "second", items[1].Title)
}
