// Package scheduling computes bookable appointment slots from the shop's
// fixed weekly opening hours.
package scheduling

import (
	"fmt"
	"time"
)

// SlotStepMinutes is the appointment granularity.
const SlotStepMinutes = 30

const dateLayout = "2006-01-02"

// workingHours is an opening window in minutes from midnight, half-open.
type workingHours struct {
	Start int
	End   int
}

// interval is a blocked span in minutes from midnight, half-open.
type interval struct {
	Start int
	End   int
}

// Weekly opening hours. Sunday has no entry: closed all day.
var weeklyHours = map[time.Weekday]workingHours{
	time.Monday:    {Start: 13 * 60, End: 18 * 60},
	time.Tuesday:   {Start: 10 * 60, End: 18 * 60},
	time.Wednesday: {Start: 10 * 60, End: 18 * 60},
	time.Thursday:  {Start: 10 * 60, End: 18 * 60},
	time.Friday:    {Start: 10 * 60, End: 18 * 60},
	time.Saturday:  {Start: 10 * 60, End: 17 * 60},
}

// Recurring closures within opening hours. Friday closes 13:00-14:00 for
// lunch, which removes both the 13:00 and 13:30 slots.
var weeklyBreaks = map[time.Weekday][]interval{
	time.Friday: {{Start: 13 * 60, End: 14 * 60}},
}

// Slots returns the bookable start times ("HH:MM", ascending) for a
// calendar date in YYYY-MM-DD form. A malformed date or a closed day
// yields an empty list, never an error; the caller renders that as
// "no availability".
func Slots(date string) []string {
	day, ok := weekdayOf(date)
	if !ok {
		return nil
	}
	wh, open := weeklyHours[day]
	if !open {
		return nil
	}

	intervals := subtractBreaks(wh, weeklyBreaks[day])

	var slots []string
	for _, iv := range intervals {
		for m := iv.Start; m < iv.End; m += SlotStepMinutes {
			slots = append(slots, formatTime(m))
		}
	}
	return slots
}

// HasSlot reports whether the given "HH:MM" start time is bookable on date.
func HasSlot(date, slot string) bool {
	for _, s := range Slots(date) {
		if s == slot {
			return true
		}
	}
	return false
}

// DayBookable implements the calendar display rule: days strictly before
// today and all Sundays are rendered but not selectable. This layers on
// top of Slots, it does not change its contract.
func DayBookable(date string, today time.Time) bool {
	d, err := time.ParseInLocation(dateLayout, date, today.Location())
	if err != nil {
		return false
	}
	if d.Weekday() == time.Sunday {
		return false
	}
	y, m, day := today.Date()
	return !d.Before(time.Date(y, m, day, 0, 0, 0, 0, today.Location()))
}

// weekdayOf parses a YYYY-MM-DD date and returns its weekday. The parsed
// day is re-anchored at noon so timezone offsets can never shift it onto
// a neighboring day.
func weekdayOf(date string) (time.Weekday, bool) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0, false
	}
	noon := time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.Local)
	return noon.Weekday(), true
}

// subtractBreaks removes blocked intervals from the opening window.
func subtractBreaks(working workingHours, blocked []interval) []interval {
	available := []interval{{Start: working.Start, End: working.End}}
	for _, block := range blocked {
		var updated []interval
		for _, iv := range available {
			if block.End <= iv.Start || block.Start >= iv.End {
				updated = append(updated, iv)
				continue
			}
			if block.Start > iv.Start {
				updated = append(updated, interval{Start: iv.Start, End: block.Start})
			}
			if block.End < iv.End {
				updated = append(updated, interval{Start: block.End, End: iv.End})
			}
		}
		available = updated
	}
	return available
}

// formatTime renders minutes from midnight as "HH:MM".
func formatTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
