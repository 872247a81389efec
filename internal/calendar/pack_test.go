package calendar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/crewcal/internal/calendar"
	"github.com/spec-kit/crewcal/internal/domain"
)

func placed(id string, startCol, length int) calendar.PlacedEvent {
	return calendar.PlacedEvent{
		Event: domain.Event{ID: id},
		Span:  calendar.Span{StartCol: startCol, SpanLength: length},
	}
}

func rowOf(t *testing.T, packed []calendar.PlacedEvent, id string) int {
	t.Helper()
	for _, p := range packed {
		if p.Event.ID == id {
			return p.RowIndex
		}
	}
	t.Fatalf("event %s not in packed result", id)
	return -1
}

func TestPackRowsNonOverlappingShareRow(t *testing.T) {
	packed, rows := calendar.PackRows([]calendar.PlacedEvent{
		placed("a", 0, 3),
		placed("b", 3, 2),
	}, calendar.TieBreakStable)

	require.Equal(t, 1, rows)
	require.Equal(t, 0, rowOf(t, packed, "a"))
	require.Equal(t, 0, rowOf(t, packed, "b"))
}

func TestPackRowsOverlappingStack(t *testing.T) {
	packed, rows := calendar.PackRows([]calendar.PlacedEvent{
		placed("a", 0, 4),
		placed("b", 1, 2),
		placed("c", 2, 3),
	}, calendar.TieBreakStable)

	require.Equal(t, 3, rows)
	require.Equal(t, 0, rowOf(t, packed, "a"))
	require.Equal(t, 1, rowOf(t, packed, "b"))
	require.Equal(t, 2, rowOf(t, packed, "c"))
}

func TestPackRowsReusesFreedRows(t *testing.T) {
	// d starts after a ends, so it drops back into row 0 even though b and c
	// are still occupying later rows.
	packed, rows := calendar.PackRows([]calendar.PlacedEvent{
		placed("a", 0, 2),
		placed("b", 0, 5),
		placed("c", 1, 4),
		placed("d", 2, 2),
	}, calendar.TieBreakStable)

	require.Equal(t, 3, rows)
	require.Equal(t, 0, rowOf(t, packed, "d"))
}

func TestPackRowsStableTieBreakKeepsInputOrder(t *testing.T) {
	packed, _ := calendar.PackRows([]calendar.PlacedEvent{
		placed("short", 0, 1),
		placed("long", 0, 4),
	}, calendar.TieBreakStable)

	require.Equal(t, 0, rowOf(t, packed, "short"))
	require.Equal(t, 1, rowOf(t, packed, "long"))
}

func TestPackRowsLongerFirstTieBreak(t *testing.T) {
	packed, _ := calendar.PackRows([]calendar.PlacedEvent{
		placed("short", 0, 1),
		placed("long", 0, 4),
	}, calendar.TieBreakLongerFirst)

	require.Equal(t, 0, rowOf(t, packed, "long"))
	require.Equal(t, 1, rowOf(t, packed, "short"))
}

func TestPackRowsLowestFreeRow(t *testing.T) {
	// [0,2] and [1,3] overlap and split across rows; [4,5] clears both and
	// takes the lowest free row.
	packed, rows := calendar.PackRows([]calendar.PlacedEvent{
		placed("a", 0, 3),
		placed("b", 1, 3),
		placed("c", 4, 2),
	}, calendar.TieBreakStable)

	require.Equal(t, 2, rows)
	require.NotEqual(t, rowOf(t, packed, "a"), rowOf(t, packed, "b"))
	require.Equal(t, 0, rowOf(t, packed, "c"))
}

func TestPackRowsDeterministic(t *testing.T) {
	input := []calendar.PlacedEvent{
		placed("a", 2, 3),
		placed("b", 0, 2),
		placed("c", 1, 4),
		placed("d", 4, 1),
	}
	first, rows1 := calendar.PackRows(input, calendar.TieBreakStable)
	second, rows2 := calendar.PackRows(input, calendar.TieBreakStable)
	require.Equal(t, rows1, rows2)
	require.Equal(t, first, second)
}

func TestPackRowsEmpty(t *testing.T) {
	packed, rows := calendar.PackRows(nil, calendar.TieBreakStable)
	require.Empty(t, packed)
	require.Zero(t, rows)
}
