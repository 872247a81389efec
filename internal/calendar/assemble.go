package calendar

import (
	"time"

	"github.com/spec-kit/crewcal/internal/catalog"
	"github.com/spec-kit/crewcal/internal/domain"
)

// Grid geometry constants, in pixels. Presentation treats these as the
// agreed rendering contract.
const (
	laneHeight  = 140
	lanePadding = 8
	eventGap    = 4

	monthRowHeight         = 32
	monthCollapsedHeight   = 90
	monthMinExpandedHeight = 120
	monthVisibleRows       = 2
)

// neutralColor is the fallback style token and the tentative override color.
const neutralColor = "neutral"

// Style is the resolved display style for one event.
type Style struct {
	Color string `json:"color"`
	// Dashed marks the fixed unconfirmed rendering of tentative events.
	Dashed bool `json:"dashed,omitempty"`
}

// ResolveStyle applies the color precedence: tentative overrides everything
// with the dashed neutral style; otherwise a combo color keyed by the
// canonical sorted-joined type combination; otherwise the color of the first
// listed type; otherwise neutral.
func ResolveStyle(dept catalog.DepartmentConfig, event *domain.Event) Style {
	if event.Tentative {
		return Style{Color: neutralColor, Dashed: true}
	}
	if len(event.EventTypes) > 1 {
		if combo, ok := dept.ComboColors[catalog.ComboKey(event.EventTypes)]; ok {
			return Style{Color: combo}
		}
	}
	if len(event.EventTypes) > 0 {
		if color, ok := dept.EventTypeColors[event.EventTypes[0]]; ok {
			return Style{Color: color}
		}
	}
	return Style{Color: neutralColor}
}

// DayAnnotation carries the reminder and holiday markers for one grid column.
type DayAnnotation struct {
	Date      string             `json:"date"`
	Reminders []catalog.Reminder `json:"reminders,omitempty"`
	Holiday   *catalog.Holiday   `json:"holiday,omitempty"`
}

// EventBox is one event with its final geometry inside a lane.
type EventBox struct {
	PlacedEvent
	LeftPct    float64 `json:"leftPct"`
	WidthPct   float64 `json:"widthPct"`
	TopPx      int     `json:"topPx"`
	HeightPx   int     `json:"heightPx"`
	Style      Style   `json:"style"`
	Label      string  `json:"label"`
	ShortLabel string  `json:"shortLabel"`
}

// Lane is one employee row in the week, biweekly and two-month views.
type Lane struct {
	EmployeeID string     `json:"employeeId"`
	CrossView  bool       `json:"crossView,omitempty"`
	RowsUsed   int        `json:"rowsUsed"`
	Events     []EventBox `json:"events"`
}

// WeekLane is one calendar-week row of the monthly view, with its collapse
// behavior: only the first monthVisibleRows rows show by default, the rest
// are revealed by expanding the cell.
type WeekLane struct {
	WeekStart         string     `json:"weekStart"`
	Dates             []string   `json:"dates"`
	RowsUsed          int        `json:"rowsUsed"`
	VisibleRows       int        `json:"visibleRows"`
	HiddenCount       int        `json:"hiddenCount"`
	CollapsedHeightPx int        `json:"collapsedHeightPx"`
	ExpandedHeightPx  int        `json:"expandedHeightPx"`
	Events            []EventBox `json:"events"`
}

// Layout is the final renderable result of the pipeline.
type Layout struct {
	Mode  domain.ViewMode `json:"mode"`
	Dates []string        `json:"dates"`
	Days  []DayAnnotation `json:"days"`
	Lanes []Lane          `json:"lanes,omitempty"`
	Weeks []WeekLane      `json:"weeks,omitempty"`
}

// AssembleInput bundles everything the assembler consumes. Cross-view data is
// optional; when present its events are tagged and filtered against their own
// partition, never merged into primary totals.
type AssembleInput struct {
	Mode            domain.ViewMode
	Anchor          time.Time
	State           ViewState
	Events          []domain.Event
	Employees       []domain.Employee
	CrossEvents     []domain.Event
	CrossEmployees  []domain.Employee
	Department      catalog.DepartmentConfig
	CrossDepartment *catalog.DepartmentConfig
	Region          catalog.RegionConfig
}

// AssembleView runs projection, packing and geometry for one view mode. Pure:
// the same input always yields the same layout.
func AssembleView(in AssembleInput) Layout {
	dates := FormatDates(DatesFor(in.Mode, in.Anchor))
	layout := Layout{
		Mode:  in.Mode,
		Dates: dates,
		Days:  annotateDays(in.Region, dates),
	}

	if in.Mode == domain.ViewMonth {
		layout.Weeks = assembleWeeks(in, dates)
		return layout
	}
	layout.Lanes = assembleLanes(in, dates)
	return layout
}

func annotateDays(region catalog.RegionConfig, dates []string) []DayAnnotation {
	days := make([]DayAnnotation, len(dates))
	for i, d := range dates {
		days[i] = DayAnnotation{Date: d}
		t, err := ParseDate(d)
		if err != nil {
			continue
		}
		days[i].Reminders = RemindersOn(region, t)
		if h, ok := HolidayOn(region, t); ok {
			holiday := h
			days[i].Holiday = &holiday
		}
	}
	return days
}

// assembleLanes builds one lane per visible employee: primary roster first,
// then the cross-view roster tagged for de-emphasis.
func assembleLanes(in AssembleInput, dates []string) []Lane {
	rangeStart, rangeEnd := dates[0], dates[len(dates)-1]
	var lanes []Lane

	for _, emp := range VisibleEmployees(in.Employees, in.State) {
		events := EventsForEmployeeInRange(in.Events, in.State, emp.ID, rangeStart, rangeEnd)
		lanes = append(lanes, buildLane(emp.ID, false, events, in.Department, dates))
	}

	if in.CrossDepartment != nil {
		crossState := ViewState{EventType: in.State.EventType}
		for _, emp := range in.CrossEmployees {
			events := EventsForEmployeeInRange(in.CrossEvents, crossState, emp.ID, rangeStart, rangeEnd)
			lanes = append(lanes, buildLane(emp.ID, true, events, *in.CrossDepartment, dates))
		}
	}
	return lanes
}

func buildLane(employeeID string, crossView bool, events []domain.Event, dept catalog.DepartmentConfig, dates []string) Lane {
	var placed []PlacedEvent
	for i := range events {
		if span, ok := ProjectSpan(&events[i], dates); ok {
			placed = append(placed, PlacedEvent{Event: events[i], Span: span, CrossView: crossView})
		}
	}
	packed, rowsUsed := PackRows(placed, TieBreakStable)

	// A floor of two rows keeps single events at half lane height.
	maxRows := rowsUsed
	if maxRows < 2 {
		maxRows = 2
	}
	available := laneHeight - lanePadding
	totalGaps := (maxRows - 1) * eventGap
	eventHeight := (available - totalGaps) / maxRows

	boxes := make([]EventBox, 0, len(packed))
	colCount := len(dates)
	for _, p := range packed {
		boxes = append(boxes, EventBox{
			PlacedEvent: p,
			LeftPct:     float64(p.Span.StartCol) / float64(colCount) * 100,
			WidthPct:    float64(p.Span.SpanLength) / float64(colCount) * 100,
			TopPx:       p.RowIndex*(eventHeight+eventGap) + eventGap,
			HeightPx:    eventHeight,
			Style:       ResolveStyle(dept, &p.Event),
			Label:       p.Event.Label(),
			ShortLabel:  p.Event.ShortLabel(),
		})
	}

	return Lane{EmployeeID: employeeID, CrossView: crossView, RowsUsed: rowsUsed, Events: boxes}
}

// assembleWeeks builds the monthly view: one lane per calendar week, packed
// with the longer-span-first tie-break and collapsed to two visible rows.
func assembleWeeks(in AssembleInput, dates []string) []WeekLane {
	var weeks []WeekLane
	for start := 0; start+7 <= len(dates); start += 7 {
		week := dates[start : start+7]
		weekStart, weekEnd := week[0], week[6]

		var placed []PlacedEvent
		for _, e := range EventsInRange(in.Events, in.State, weekStart, weekEnd) {
			if span, ok := ProjectSpan(&e, week); ok {
				placed = append(placed, PlacedEvent{Event: e, Span: span})
			}
		}
		if in.CrossDepartment != nil {
			crossState := ViewState{EventType: in.State.EventType}
			for _, e := range EventsInRange(in.CrossEvents, crossState, weekStart, weekEnd) {
				if span, ok := ProjectSpan(&e, week); ok {
					placed = append(placed, PlacedEvent{Event: e, Span: span, CrossView: true})
				}
			}
		}

		packed, rowsUsed := PackRows(placed, TieBreakLongerFirst)

		hidden := rowsUsed - monthVisibleRows
		if hidden < 0 {
			hidden = 0
		}
		expanded := rowsUsed*monthRowHeight + 12
		if expanded < monthMinExpandedHeight {
			expanded = monthMinExpandedHeight
		}

		boxes := make([]EventBox, 0, len(packed))
		for _, p := range packed {
			dept := in.Department
			if p.CrossView && in.CrossDepartment != nil {
				dept = *in.CrossDepartment
			}
			boxes = append(boxes, EventBox{
				PlacedEvent: p,
				LeftPct:     float64(p.Span.StartCol) / 7 * 100,
				WidthPct:    float64(p.Span.SpanLength) / 7 * 100,
				TopPx:       p.RowIndex*monthRowHeight + eventGap,
				HeightPx:    monthRowHeight - eventGap,
				Style:       ResolveStyle(dept, &p.Event),
				Label:       p.Event.Label(),
				ShortLabel:  p.Event.ShortLabel(),
			})
		}

		weeks = append(weeks, WeekLane{
			WeekStart:         weekStart,
			Dates:             week,
			RowsUsed:          rowsUsed,
			VisibleRows:       monthVisibleRows,
			HiddenCount:       hidden,
			CollapsedHeightPx: monthCollapsedHeight,
			ExpandedHeightPx:  expanded,
			Events:            boxes,
		})
	}
	return weeks
}
