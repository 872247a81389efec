package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/crewcal/internal/calendar"
	"github.com/spec-kit/crewcal/internal/domain"
)

func TestFormatParseRoundTrip(t *testing.T) {
	for _, s := range []string{"2026-01-05", "2026-02-28", "2026-12-31", "2024-02-29"} {
		parsed, err := calendar.ParseDate(s)
		require.NoError(t, err)
		require.Equal(t, s, calendar.FormatDate(parsed))
	}
}

func TestParseDateRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "2026-1-5", "01/05/2026", "2026-13-01", "not-a-date"} {
		require.False(t, calendar.ValidDate(s), "expected %q to be invalid", s)
	}
}

func TestWeekDatesStartOnMonday(t *testing.T) {
	// 2026-01-07 is a Wednesday; its week starts Monday 2026-01-05.
	anchor, err := calendar.ParseDate("2026-01-07")
	require.NoError(t, err)

	dates := calendar.FormatDates(calendar.WeekDates(anchor))
	require.Len(t, dates, 7)
	require.Equal(t, "2026-01-05", dates[0])
	require.Equal(t, "2026-01-11", dates[6])
}

func TestWeekDatesSundayAnchorStepsBack(t *testing.T) {
	// A Sunday anchor belongs to the week that started six days earlier,
	// never to the following week.
	anchor, err := calendar.ParseDate("2026-01-11")
	require.NoError(t, err)

	dates := calendar.FormatDates(calendar.WeekDates(anchor))
	require.Equal(t, "2026-01-05", dates[0])
	require.Equal(t, "2026-01-11", dates[6])
}

func TestBiweeklyDates(t *testing.T) {
	anchor, err := calendar.ParseDate("2026-01-07")
	require.NoError(t, err)

	dates := calendar.FormatDates(calendar.BiweeklyDates(anchor))
	require.Len(t, dates, 14)
	require.Equal(t, "2026-01-05", dates[0])
	require.Equal(t, "2026-01-18", dates[13])
}

func TestMonthDatesCoverWholeWeeks(t *testing.T) {
	// February 2026 starts on a Sunday and ends on a Saturday, so the grid
	// runs from Monday Jan 26 through Sunday Mar 1: five full weeks.
	anchor, err := calendar.ParseDate("2026-02-10")
	require.NoError(t, err)

	dates := calendar.FormatDates(calendar.MonthDates(anchor))
	require.Len(t, dates, 35)
	require.Equal(t, "2026-01-26", dates[0])
	require.Equal(t, "2026-03-01", dates[34])
}

func TestTwoMonthDates(t *testing.T) {
	anchor, err := calendar.ParseDate("2026-01-07")
	require.NoError(t, err)

	dates := calendar.FormatDates(calendar.TwoMonthDates(anchor))
	require.Len(t, dates, 56)
	require.Equal(t, "2026-01-05", dates[0])
	require.Equal(t, "2026-03-01", dates[55])
}

func TestDatesForDefaultsToWeek(t *testing.T) {
	anchor, err := calendar.ParseDate("2026-01-07")
	require.NoError(t, err)
	require.Len(t, calendar.DatesFor(domain.ViewWeek, anchor), 7)
	require.Len(t, calendar.DatesFor(domain.ViewBiweekly, anchor), 14)
	require.Len(t, calendar.DatesFor(domain.ViewTwoMonth, anchor), 56)
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local)
	b := time.Date(2026, 1, 19, 23, 0, 0, 0, time.Local)
	require.Equal(t, 14, calendar.DaysBetween(a, b))
	require.Equal(t, -14, calendar.DaysBetween(b, a))
	require.Equal(t, 0, calendar.DaysBetween(a, a))
}
