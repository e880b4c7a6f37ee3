package display

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plandash/internal/record"
)

func TestTimestampPhrase(t *testing.T) {
	cases := []struct {
		ts   Timestamp
		want string
	}{
		{Timestamp{Start: "09:00", End: "10:00"}, "from 09:00 to 10:00"},
		{Timestamp{Start: "09:00"}, "from 09:00"},
		{Timestamp{End: "17:30"}, "until 17:30"},
		{Timestamp{}, "all day"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.ts.Phrase())
	}
}

func TestNewTimestampStripsSeconds(t *testing.T) {
	ts := NewTimestamp(record.Timestamp{
		Start: record.TimePoint{Date: "2026-03-11", Time: "09:00:00"},
		End:   &record.TimePoint{Date: "2026-03-11", Time: "10:30:00"},
	})
	assert.Equal(t, "09:00", ts.Start)
	assert.Equal(t, "10:30", ts.End)

	// All-day events carry no time at all.
	allDay := NewTimestamp(record.Timestamp{
		Start: record.TimePoint{Date: "2026-03-11"},
	})
	assert.Equal(t, "", allDay.Start)
	assert.Equal(t, "", allDay.End)
	assert.Equal(t, "all day", allDay.Phrase())
}

func TestAdditionalValueText(t *testing.T) {
	now := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	absent := Additional{Name: "Location"}
	_, ok := absent.ValueText(now)
	assert.False(t, ok, "absent value must not render")

	text := Additional{Name: "Location", Value: TextValue("office")}
	v, ok := text.ValueText(now)
	require.True(t, ok)
	assert.Equal(t, "office", v)

	// A bare date parses to midnight; the all-day sentinel suppresses the
	// time suffix.
	date, err := record.ParseDate("2026-03-12")
	require.NoError(t, err)
	timed := Additional{Name: "Date", Value: TimeValue(date)}
	v, ok = timed.ValueText(now)
	require.True(t, ok)
	assert.Equal(t, "tomorrow", v)

	// A datetime keeps its clock.
	dt, err := record.ParseDateTime("2026-03-12T15:00:00")
	require.NoError(t, err)
	timed = Additional{Name: "Deadline", Value: TimeValue(dt)}
	v, ok = timed.ValueText(now)
	require.True(t, ok)
	assert.Equal(t, "tomorrow at 15:00", v)
}
