package calendar

import (
	"sort"

	"github.com/spec-kit/crewcal/internal/domain"
)

// TieBreak selects the secondary ordering applied to events sharing a start
// column before row assignment.
type TieBreak int

const (
	// TieBreakStable keeps the original relative order on start-column ties.
	TieBreakStable TieBreak = iota
	// TieBreakLongerFirst prefers longer spans on ties; the monthly view
	// uses it to reduce fragmentation of long events.
	TieBreakLongerFirst
)

// PlacedEvent is one span-projected event flowing through the packer.
type PlacedEvent struct {
	Event     domain.Event `json:"event"`
	Span      Span         `json:"span"`
	RowIndex  int          `json:"rowIndex"`
	CrossView bool         `json:"crossView,omitempty"`
}

// PackRows assigns each event a row index such that no two events sharing a
// column share a row, using deterministic greedy first-fit: events are stably
// sorted by start column (ties per tieBreak, then original order) and each is
// placed in the lowest-indexed row whose occupied columns do not intersect
// its span. The result is not guaranteed minimal in pathological orderings
// but is always the same for the same input. Returns the packed events and
// the total number of rows used.
func PackRows(events []PlacedEvent, tieBreak TieBreak) ([]PlacedEvent, int) {
	packed := make([]PlacedEvent, len(events))
	copy(packed, events)

	sort.SliceStable(packed, func(i, j int) bool {
		if packed[i].Span.StartCol != packed[j].Span.StartCol {
			return packed[i].Span.StartCol < packed[j].Span.StartCol
		}
		if tieBreak == TieBreakLongerFirst {
			return packed[i].Span.SpanLength > packed[j].Span.SpanLength
		}
		return false
	})

	var rows []map[int]struct{}
	for i := range packed {
		span := packed[i].Span
		assigned := -1
		for row := range rows {
			if fits(rows[row], span) {
				assigned = row
				break
			}
		}
		if assigned == -1 {
			rows = append(rows, make(map[int]struct{}))
			assigned = len(rows) - 1
		}
		for col := span.StartCol; col <= span.EndCol(); col++ {
			rows[assigned][col] = struct{}{}
		}
		packed[i].RowIndex = assigned
	}

	return packed, len(rows)
}

func fits(occupied map[int]struct{}, span Span) bool {
	for col := span.StartCol; col <= span.EndCol(); col++ {
		if _, taken := occupied[col]; taken {
			return false
		}
	}
	return true
}
