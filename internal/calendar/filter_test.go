package calendar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/crewcal/internal/calendar"
	"github.com/spec-kit/crewcal/internal/domain"
)

func filterEvents() []domain.Event {
	return []domain.Event{
		{ID: "1", Employee: "ana", EventTypes: []string{"Install"}, StartDate: "2026-01-05", EndDate: "2026-01-07"},
		{ID: "2", Employee: "ben", EventTypes: []string{"PM"}, StartDate: "2026-01-06", EndDate: "2026-01-06"},
		{ID: "3", Employee: "ana", EventTypes: []string{"Training"}, StartDate: "2026-01-20", EndDate: "2026-01-22"},
	}
}

func ids(events []domain.Event) []string {
	var out []string
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

func TestEventsOnDateAppliesBothFilters(t *testing.T) {
	events := filterEvents()

	all := calendar.EventsOnDate(events, calendar.ViewState{}, "2026-01-06")
	require.Equal(t, []string{"1", "2"}, ids(all))

	anaOnly := calendar.EventsOnDate(events, calendar.ViewState{
		EmployeeIDs: map[string]struct{}{"ana": {}},
	}, "2026-01-06")
	require.Equal(t, []string{"1"}, ids(anaOnly))

	pmOnly := calendar.EventsOnDate(events, calendar.ViewState{EventType: "PM"}, "2026-01-06")
	require.Equal(t, []string{"2"}, ids(pmOnly))
}

func TestFilterAllIsWildcard(t *testing.T) {
	events := filterEvents()
	out := calendar.EventsOnDate(events, calendar.ViewState{EventType: calendar.FilterAll}, "2026-01-06")
	require.Equal(t, []string{"1", "2"}, ids(out))
}

func TestEventsForEmployeeInRangeIgnoresEmployeeFilter(t *testing.T) {
	events := filterEvents()

	// Once a lane is being rendered, the employee selection no longer
	// matters; only the type filter narrows the lane's events.
	state := calendar.ViewState{EmployeeIDs: map[string]struct{}{"ben": {}}}
	out := calendar.EventsForEmployeeInRange(events, state, "ana", "2026-01-05", "2026-01-11")
	require.Equal(t, []string{"1"}, ids(out))
}

func TestEventsInRangeOverlapSemantics(t *testing.T) {
	events := filterEvents()

	out := calendar.EventsInRange(events, calendar.ViewState{}, "2026-01-07", "2026-01-20")
	require.Equal(t, []string{"1", "3"}, ids(out))
}

func TestVisibleEmployees(t *testing.T) {
	roster := []domain.Employee{{ID: "ana"}, {ID: "ben"}, {ID: "cam"}}

	require.Len(t, calendar.VisibleEmployees(roster, calendar.ViewState{}), 3)

	state := calendar.ViewState{EmployeeIDs: map[string]struct{}{"ben": {}, "cam": {}}}
	visible := calendar.VisibleEmployees(roster, state)
	require.Len(t, visible, 2)
	require.Equal(t, "ben", visible[0].ID)
	require.Equal(t, "cam", visible[1].ID)
}
