package calendar

import (
	"fmt"
	"time"

	"github.com/spec-kit/crewcal/internal/domain"
)

// DateLayout is the canonical wire format for calendar dates. All views and
// stored documents use this single representation; lexicographic comparison
// of two canonical strings matches chronological order.
const DateLayout = "2006-01-02"

// FormatDate renders a date as canonical YYYY-MM-DD using local calendar
// fields, never UTC-shifted.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// ParseDate parses a canonical YYYY-MM-DD string. Round-trips exactly with
// FormatDate.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// ValidDate reports whether s is a well-formed canonical date.
func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// DaysBetween returns the whole-day difference b - a. Both are truncated to
// midnight before subtraction so DST transitions cannot skew the count.
func DaysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// mondayOnOrBefore steps back to the Monday of the week containing t. A
// Sunday anchor steps back six days, never forward.
func mondayOnOrBefore(t time.Time) time.Time {
	diff := int(t.Weekday()) - int(time.Monday)
	if t.Weekday() == time.Sunday {
		diff = 6
	}
	return t.AddDate(0, 0, -diff)
}

func consecutive(start time.Time, n int) []time.Time {
	out := make([]time.Time, n)
	for i := 0; i < n; i++ {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

// WeekDates returns the 7 days of the Monday-starting week containing anchor.
func WeekDates(anchor time.Time) []time.Time {
	return consecutive(mondayOnOrBefore(anchor), 7)
}

// BiweeklyDates returns 14 consecutive days from the same Monday anchor.
func BiweeklyDates(anchor time.Time) []time.Time {
	return consecutive(mondayOnOrBefore(anchor), 14)
}

// MonthDates returns the visible month grid for anchor's month: from the
// Monday on/before the 1st through the Sunday on/after the last day, always
// a whole number of 7-day weeks.
func MonthDates(anchor time.Time) []time.Time {
	firstDay := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	lastDay := firstDay.AddDate(0, 1, -1)

	start := mondayOnOrBefore(firstDay)
	end := lastDay
	if end.Weekday() != time.Sunday {
		end = end.AddDate(0, 0, 7-int(end.Weekday()))
	}

	return consecutive(start, DaysBetween(start, end)+1)
}

// TwoMonthDates returns 8 full weeks (56 days) starting from the Monday
// on/before anchor.
func TwoMonthDates(anchor time.Time) []time.Time {
	return consecutive(mondayOnOrBefore(anchor), 56)
}

// DatesFor returns the visible date sequence for the given view mode.
func DatesFor(mode domain.ViewMode, anchor time.Time) []time.Time {
	switch mode {
	case domain.ViewBiweekly:
		return BiweeklyDates(anchor)
	case domain.ViewMonth:
		return MonthDates(anchor)
	case domain.ViewTwoMonth:
		return TwoMonthDates(anchor)
	default:
		return WeekDates(anchor)
	}
}

// FormatDates maps a date sequence to canonical strings.
func FormatDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = FormatDate(d)
	}
	return out
}
