package calendar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/crewcal/internal/calendar"
	"github.com/spec-kit/crewcal/internal/domain"
)

var weekWindow = []string{
	"2026-01-05", "2026-01-06", "2026-01-07", "2026-01-08",
	"2026-01-09", "2026-01-10", "2026-01-11",
}

func spanFor(t *testing.T, start, end string) (calendar.Span, bool) {
	t.Helper()
	return calendar.ProjectSpan(&domain.Event{StartDate: start, EndDate: end}, weekWindow)
}

func TestProjectSpanInsideWindow(t *testing.T) {
	span, ok := spanFor(t, "2026-01-06", "2026-01-08")
	require.True(t, ok)
	require.Equal(t, 1, span.StartCol)
	require.Equal(t, 3, span.SpanLength)
	require.True(t, span.IsStart)
	require.True(t, span.IsEnd)
	require.Equal(t, 3, span.EndCol())
}

func TestProjectSpanClippedAtStart(t *testing.T) {
	span, ok := spanFor(t, "2025-12-30", "2026-01-06")
	require.True(t, ok)
	require.Equal(t, 0, span.StartCol)
	require.Equal(t, 2, span.SpanLength)
	require.False(t, span.IsStart)
	require.True(t, span.IsEnd)
}

func TestProjectSpanClippedAtEnd(t *testing.T) {
	span, ok := spanFor(t, "2026-01-10", "2026-01-20")
	require.True(t, ok)
	require.Equal(t, 5, span.StartCol)
	require.Equal(t, 2, span.SpanLength)
	require.True(t, span.IsStart)
	require.False(t, span.IsEnd)
}

func TestProjectSpanSingleDay(t *testing.T) {
	span, ok := spanFor(t, "2026-01-05", "2026-01-05")
	require.True(t, ok)
	require.Equal(t, 0, span.StartCol)
	require.Equal(t, 1, span.SpanLength)

	span, ok = spanFor(t, "2026-01-10", "2026-01-10")
	require.True(t, ok)
	require.Equal(t, 5, span.StartCol)
	require.Equal(t, 1, span.SpanLength)
	require.True(t, span.IsStart)
	require.True(t, span.IsEnd)
}

func TestProjectSpanOutsideWindow(t *testing.T) {
	_, ok := spanFor(t, "2026-01-20", "2026-01-25")
	require.False(t, ok)

	_, ok = spanFor(t, "2025-12-01", "2025-12-31")
	require.False(t, ok)
}
