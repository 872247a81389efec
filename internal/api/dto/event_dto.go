package dto

import (
	"github.com/spec-kit/crewcal/internal/domain"
	"github.com/spec-kit/crewcal/internal/service"
)

// EventRequest is the create/update payload for schedule events.
type EventRequest struct {
	Employee        string   `json:"employee" validate:"required"`
	EventTypes      []string `json:"eventTypes" validate:"required,min=1,dive,required"`
	CustomEventType string   `json:"customEventType"`
	Products        []string `json:"products"`
	Customer        string   `json:"customer"`
	Location        string   `json:"location"`
	Notes           string   `json:"notes"`
	StartDate       string   `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate         string   `json:"endDate" validate:"required,datetime=2006-01-02"`
	Tentative       bool     `json:"tentative"`
}

// ToInput converts the payload to the service input.
func (r EventRequest) ToInput() service.EventInput {
	return service.EventInput{
		Employee:        r.Employee,
		EventTypes:      r.EventTypes,
		CustomEventType: r.CustomEventType,
		Products:        r.Products,
		Customer:        r.Customer,
		Location:        r.Location,
		Notes:           r.Notes,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		Tentative:       r.Tentative,
	}
}

// EventResponse wraps a stored event for transport. The domain type already
// carries the canonical JSON shape.
type EventResponse struct {
	Event *domain.Event `json:"event"`
}
