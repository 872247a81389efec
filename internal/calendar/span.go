package calendar

import "github.com/spec-kit/crewcal/internal/domain"

// Span is the clipped column placement of one event within a visible window.
type Span struct {
	// StartCol is the index of the first visible column the event occupies.
	StartCol int `json:"startCol"`
	// SpanLength is the number of columns covered, always >= 1.
	SpanLength int `json:"spanLength"`
	// IsStart is true when the window does not clip the event's true start,
	// IsEnd likewise for the end. Presentation uses them to round or open
	// the corresponding bar edge.
	IsStart bool `json:"isStart"`
	IsEnd   bool `json:"isEnd"`
}

// EndCol returns the inclusive last column of the span.
func (s Span) EndCol() int {
	return s.StartCol + s.SpanLength - 1
}

// ProjectSpan maps an event's date range onto an ordered sequence of visible
// canonical dates. Returns false when the event does not intersect the window.
func ProjectSpan(event *domain.Event, visibleDates []string) (Span, bool) {
	if len(visibleDates) == 0 {
		return Span{}, false
	}

	startIdx := -1
	for i, d := range visibleDates {
		if d >= event.StartDate {
			startIdx = i
			break
		}
	}
	endIdx := -1
	for i := len(visibleDates) - 1; i >= 0; i-- {
		if visibleDates[i] <= event.EndDate {
			endIdx = i
			break
		}
	}

	isStart := event.StartDate >= visibleDates[0]
	isEnd := event.EndDate <= visibleDates[len(visibleDates)-1]

	if startIdx == -1 || endIdx == -1 || endIdx < startIdx {
		// Boundary case: the directional scans disagree (e.g. a single-day
		// event right at the window edge). Fall back to a direct membership
		// scan over the intersection of [startDate, endDate] and the window.
		first, last := -1, -1
		for i, d := range visibleDates {
			if d >= event.StartDate && d <= event.EndDate {
				if first == -1 {
					first = i
				}
				last = i
			}
		}
		if first == -1 {
			return Span{}, false
		}
		return Span{
			StartCol:   first,
			SpanLength: last - first + 1,
			IsStart:    isStart,
			IsEnd:      isEnd,
		}, true
	}

	return Span{
		StartCol:   startIdx,
		SpanLength: endIdx - startIdx + 1,
		IsStart:    isStart,
		IsEnd:      isEnd,
	}, true
}
