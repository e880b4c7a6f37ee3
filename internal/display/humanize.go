package display

import (
	"fmt"
	"time"
)

// RelativeDate formats target for human readability relative to current,
// e.g. "today", "next Thursday" or "Monday 02/03/2026". If clock is
// non-empty and is a real time of day (the planner uses "00:00" and
// "23:59" as all-day sentinels), " at <clock>" is appended.
//
// Day buckets, in order of precedence over the signed day difference:
//
//	 0             -> "today"
//	 1             -> "tomorrow"
//	-1             -> "yesterday"
//	 2 <= d < 7    -> bare weekday name
//	-7 < d < 0     -> "last <weekday>"
//	 0 < d < 14    -> "next <weekday>"
//	 otherwise     -> "<weekday> DD/MM/YYYY"
func RelativeDate(target time.Time, clock string, current time.Time) string {
	diff := daysBetween(target, current)
	weekday := target.Weekday().String()

	var day string
	switch {
	case diff == 0:
		day = "today"
	case diff == 1:
		day = "tomorrow"
	case diff == -1:
		day = "yesterday"
	case diff >= 2 && diff < 7:
		day = weekday
	case diff > -7 && diff < 0:
		day = "last " + weekday
	case diff > 0 && diff < 14:
		day = "next " + weekday
	default:
		day = fmt.Sprintf("%s %s", weekday, target.Format("02/01/2006"))
	}

	if clock != "" && clock != "23:59" && clock != "00:00" {
		day += " at " + clock
	}

	return day
}

// daysBetween returns the whole-day calendar difference a - b, ignoring
// any time-of-day component on either side.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	au := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bu := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(au.Sub(bu).Hours() / 24)
}
