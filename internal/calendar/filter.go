package calendar

import "github.com/spec-kit/crewcal/internal/domain"

// FilterAll is the wildcard value for the employee and event-type filters.
const FilterAll = "all"

// ViewState carries the active filter selections. It is passed explicitly
// through the layout pipeline so every computation stays a pure function of
// its inputs.
type ViewState struct {
	// EmployeeIDs is the employee selection set; nil or empty means all.
	EmployeeIDs map[string]struct{}
	// EventType is a single type filter, or FilterAll / "".
	EventType string
}

// AllEmployees reports whether the employee filter is inactive.
func (s ViewState) AllEmployees() bool {
	return len(s.EmployeeIDs) == 0
}

func (s ViewState) employeeMatches(id string) bool {
	if s.AllEmployees() {
		return true
	}
	_, ok := s.EmployeeIDs[id]
	return ok
}

func (s ViewState) typeMatches(e *domain.Event) bool {
	if s.EventType == "" || s.EventType == FilterAll {
		return true
	}
	return e.HasType(s.EventType)
}

// EventsOnDate returns the events covering the given canonical date that pass
// both the employee and type filters.
func EventsOnDate(events []domain.Event, state ViewState, date string) []domain.Event {
	var out []domain.Event
	for i := range events {
		e := &events[i]
		if e.SpansDate(date) && state.employeeMatches(e.Employee) && state.typeMatches(e) {
			out = append(out, *e)
		}
	}
	return out
}

// EventsForEmployeeInRange returns the employee's events overlapping
// [rangeStart, rangeEnd]. The employee-id filter is intentionally ignored:
// once an employee row is selected for display, all their events in range are
// shown. The type filter still applies.
func EventsForEmployeeInRange(events []domain.Event, state ViewState, employeeID, rangeStart, rangeEnd string) []domain.Event {
	var out []domain.Event
	for i := range events {
		e := &events[i]
		if e.Employee == employeeID && e.Overlaps(rangeStart, rangeEnd) && state.typeMatches(e) {
			out = append(out, *e)
		}
	}
	return out
}

// EventsInRange returns every event overlapping [rangeStart, rangeEnd] that
// passes both filters, used by the monthly week-lane packing.
func EventsInRange(events []domain.Event, state ViewState, rangeStart, rangeEnd string) []domain.Event {
	var out []domain.Event
	for i := range events {
		e := &events[i]
		if e.Overlaps(rangeStart, rangeEnd) && state.employeeMatches(e.Employee) && state.typeMatches(e) {
			out = append(out, *e)
		}
	}
	return out
}

// VisibleEmployees filters a sorted roster down to the employee selection.
func VisibleEmployees(employees []domain.Employee, state ViewState) []domain.Employee {
	if state.AllEmployees() {
		return employees
	}
	var out []domain.Employee
	for _, emp := range employees {
		if state.employeeMatches(emp.ID) {
			out = append(out, emp)
		}
	}
	return out
}
