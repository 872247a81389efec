package calendar

import (
	"time"

	"github.com/spec-kit/crewcal/internal/catalog"
)

// RemindersOn returns the region reminders firing on date, in configuration
// order. A reminder fires when date is on/after its start date and the
// whole-day difference is an exact multiple of the interval (zero included).
func RemindersOn(region catalog.RegionConfig, date time.Time) []catalog.Reminder {
	var fired []catalog.Reminder
	for _, r := range region.Reminders {
		if r.IntervalDays <= 0 {
			continue
		}
		start, err := ParseDate(r.StartDate)
		if err != nil {
			continue
		}
		diff := DaysBetween(start, date)
		if diff >= 0 && diff%r.IntervalDays == 0 {
			fired = append(fired, r)
		}
	}
	return fired
}

// HolidayOn returns the holiday annotation for date, matching by month and
// day only so entries recur annually. The first configured match wins.
func HolidayOn(region catalog.RegionConfig, date time.Time) (catalog.Holiday, bool) {
	for _, h := range region.Holidays {
		if h.Month == int(date.Month()) && h.Day == date.Day() {
			return h, true
		}
	}
	return catalog.Holiday{}, false
}
