package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/crewcal/internal/calendar"
	"github.com/spec-kit/crewcal/internal/catalog"
	"github.com/spec-kit/crewcal/internal/domain"
	"github.com/spec-kit/crewcal/pkg/util/errorutil"
)

// DocumentStore is the store surface the schedule service writes through.
type DocumentStore interface {
	UpsertEvent(ctx context.Context, event *domain.Event) error
	DeleteEvent(ctx context.Context, partition domain.Partition, id string) error
	GetEvent(ctx context.Context, partition domain.Partition, id string) (*domain.Event, error)
	ListEvents(ctx context.Context, partition domain.Partition) ([]domain.Event, error)
	CreateEmployee(ctx context.Context, employee *domain.Employee) (bool, error)
	UpsertEmployee(ctx context.Context, employee *domain.Employee) error
	DeleteEmployee(ctx context.Context, partition domain.Partition, id string) error
	GetEmployee(ctx context.Context, partition domain.Partition, id string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, partition domain.Partition) ([]domain.Employee, error)
}

// ScheduleService coordinates event and roster workflows for the active
// partition. Every invariant is checked before the store is touched; a
// rejected operation persists nothing.
type ScheduleService struct {
	store      DocumentStore
	partition  domain.Partition
	department catalog.DepartmentConfig
}

// Dependencies bundles the service inputs.
type Dependencies struct {
	Store      DocumentStore
	Partition  domain.Partition
	Department catalog.DepartmentConfig
}

// NewScheduleService constructs the service.
func NewScheduleService(deps Dependencies) *ScheduleService {
	return &ScheduleService{
		store:      deps.Store,
		partition:  deps.Partition,
		department: deps.Department,
	}
}

// EventInput describes event creation/update payloads. Region and department
// are never part of the input: they come from the active partition on create
// and are immutable afterwards.
type EventInput struct {
	Employee        string
	EventTypes      []string
	CustomEventType string
	Products        []string
	Customer        string
	Location        string
	Notes           string
	StartDate       string
	EndDate         string
	Tentative       bool
}

func (s *ScheduleService) validateEvent(input EventInput) error {
	details := map[string]any{}

	if strings.TrimSpace(input.Employee) == "" {
		details["employee"] = "required"
	}
	if len(input.EventTypes) == 0 {
		details["eventTypes"] = "at least one event type required"
	}
	for _, t := range input.EventTypes {
		if t != domain.EventTypeCustom && !s.department.HasEventType(t) {
			details["eventTypes"] = "unknown event type: " + t
			break
		}
	}
	if hasCustom(input.EventTypes) && strings.TrimSpace(input.CustomEventType) == "" {
		details["customEventType"] = "required when Custom is selected"
	}
	for _, p := range input.Products {
		if !s.department.HasProduct(p) {
			details["products"] = "unknown product: " + p
			break
		}
	}
	if !calendar.ValidDate(input.StartDate) {
		details["startDate"] = "must be YYYY-MM-DD"
	}
	if !calendar.ValidDate(input.EndDate) {
		details["endDate"] = "must be YYYY-MM-DD"
	}
	if details["startDate"] == nil && details["endDate"] == nil && input.EndDate < input.StartDate {
		details["endDate"] = "must be on or after startDate"
	}

	if len(details) > 0 {
		return errorutil.NewValidationError("invalid event", details)
	}
	return nil
}

func hasCustom(types []string) bool {
	for _, t := range types {
		if t == domain.EventTypeCustom {
			return true
		}
	}
	return false
}

func (s *ScheduleService) buildEvent(id string, input EventInput) *domain.Event {
	return &domain.Event{
		ID:              id,
		Employee:        input.Employee,
		EventTypes:      input.EventTypes,
		CustomEventType: strings.TrimSpace(input.CustomEventType),
		Products:        input.Products,
		Customer:        strings.TrimSpace(input.Customer),
		Location:        strings.TrimSpace(input.Location),
		Notes:           strings.TrimSpace(input.Notes),
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		Tentative:       input.Tentative,
		Region:          s.partition.Region,
		Department:      s.partition.Department,
	}
}

// CreateEvent validates and persists a new event in the active partition.
func (s *ScheduleService) CreateEvent(ctx context.Context, input EventInput) (*domain.Event, error) {
	if err := s.validateEvent(input); err != nil {
		return nil, err
	}
	event := s.buildEvent(uuid.NewString(), input)
	if err := s.store.UpsertEvent(ctx, event); err != nil {
		return nil, errorutil.NewStoreUnavailable(err)
	}
	return event, nil
}

// UpdateEvent replaces an existing event in place (same id, same partition).
func (s *ScheduleService) UpdateEvent(ctx context.Context, id string, input EventInput) (*domain.Event, error) {
	if err := s.validateEvent(input); err != nil {
		return nil, err
	}
	if _, err := s.store.GetEvent(ctx, s.partition, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorutil.NewNotFound("event", map[string]any{"id": id})
		}
		return nil, errorutil.NewStoreUnavailable(err)
	}
	event := s.buildEvent(id, input)
	if err := s.store.UpsertEvent(ctx, event); err != nil {
		return nil, errorutil.NewStoreUnavailable(err)
	}
	return event, nil
}

// DeleteEvent removes an event; deleting an unknown id is a no-op.
func (s *ScheduleService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.store.DeleteEvent(ctx, s.partition, id); err != nil {
		return errorutil.NewStoreUnavailable(err)
	}
	return nil
}

// EventsInRange lists active-partition events overlapping [start, end].
func (s *ScheduleService) EventsInRange(ctx context.Context, start, end string) ([]domain.Event, error) {
	if !calendar.ValidDate(start) || !calendar.ValidDate(end) || end < start {
		return nil, errorutil.NewValidationError("invalid range", map[string]any{
			"start": start, "end": end,
		})
	}
	events, err := s.store.ListEvents(ctx, s.partition)
	if err != nil {
		return nil, errorutil.NewStoreUnavailable(err)
	}
	out := make([]domain.Event, 0, len(events))
	for i := range events {
		if events[i].Overlaps(start, end) {
			out = append(out, events[i])
		}
	}
	return out, nil
}
