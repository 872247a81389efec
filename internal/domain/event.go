package domain

import "strings"

// EventTypeCustom is the sentinel type whose label comes from CustomEventType.
const EventTypeCustom = "Custom"

// Event is a date-ranged assignment for one employee. StartDate and EndDate
// are canonical YYYY-MM-DD strings; lexicographic comparison matches
// chronological order, so the string form is the sole representation used for
// range checks and storage.
type Event struct {
	ID              string   `json:"id"`
	Employee        string   `json:"employee"`
	EventTypes      []string `json:"eventTypes"`
	CustomEventType string   `json:"customEventType,omitempty"`
	Products        []string `json:"products,omitempty"`
	Customer        string   `json:"customer,omitempty"`
	Location        string   `json:"location,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	StartDate       string   `json:"startDate"`
	EndDate         string   `json:"endDate"`
	Tentative       bool     `json:"tentative,omitempty"`
	Region          string   `json:"region"`
	Department      string   `json:"department"`

	// LegacyDate and LegacyEventType capture documents written by old
	// clients that stored a single date / a single event type. They are
	// folded into the canonical fields by Normalize and never written back.
	LegacyDate      string `json:"date,omitempty"`
	LegacyEventType string `json:"eventType,omitempty"`
}

// Normalize folds legacy single-field documents into the canonical shape.
// A stored {date: D} becomes {startDate: D, endDate: D}; {eventType: T}
// becomes {eventTypes: [T]}. Canonical fields always win when present.
func (e *Event) Normalize() {
	if e.LegacyDate != "" && e.StartDate == "" {
		e.StartDate = e.LegacyDate
		e.EndDate = e.LegacyDate
	}
	if e.LegacyEventType != "" && len(e.EventTypes) == 0 {
		e.EventTypes = []string{e.LegacyEventType}
	}
	e.LegacyDate = ""
	e.LegacyEventType = ""
}

// Partition returns the partition tags of the event.
func (e *Event) Partition() Partition {
	return Partition{Region: e.Region, Department: e.Department}
}

// SpansDate reports whether the event covers the given canonical date.
func (e *Event) SpansDate(date string) bool {
	return e.StartDate <= date && e.EndDate >= date
}

// Overlaps reports whether the event intersects [rangeStart, rangeEnd].
func (e *Event) Overlaps(rangeStart, rangeEnd string) bool {
	return e.StartDate <= rangeEnd && e.EndDate >= rangeStart
}

// HasType reports whether the event carries the given type label.
func (e *Event) HasType(eventType string) bool {
	for _, t := range e.EventTypes {
		if t == eventType {
			return true
		}
	}
	return false
}

// displayTypes substitutes the custom text for the Custom sentinel.
func (e *Event) displayTypes() []string {
	out := make([]string, 0, len(e.EventTypes))
	for _, t := range e.EventTypes {
		if t == EventTypeCustom && e.CustomEventType != "" {
			out = append(out, e.CustomEventType)
			continue
		}
		out = append(out, t)
	}
	return out
}

// Label returns the full display label: types joined with ", ", customer
// appended when present.
func (e *Event) Label() string {
	label := strings.Join(e.displayTypes(), ", ")
	if e.Customer != "" {
		return label + " " + e.Customer
	}
	return label
}

// ShortLabel returns the compact label used inside grid cells.
func (e *Event) ShortLabel() string {
	label := strings.Join(e.displayTypes(), "/")
	if e.Customer != "" {
		return label + " - " + e.Customer
	}
	return label
}
