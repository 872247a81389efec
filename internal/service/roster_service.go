package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/crewcal/internal/domain"
	"github.com/spec-kit/crewcal/pkg/util/errorutil"
)

// RosterService manages the employee roster of the active partition.
// Roster writes sit behind the admin gate at the transport layer; the
// service itself only enforces data invariants.
type RosterService struct {
	store     DocumentStore
	partition domain.Partition
}

// NewRosterService constructs the service.
func NewRosterService(store DocumentStore, partition domain.Partition) *RosterService {
	return &RosterService{store: store, partition: partition}
}

// EmployeeInput describes roster creation/update payloads.
type EmployeeInput struct {
	Name      string
	Title     string
	Color     string
	SortOrder *int
}

func (s *RosterService) validateEmployee(input EmployeeInput) error {
	details := map[string]any{}
	if strings.TrimSpace(input.Name) == "" {
		details["name"] = "required"
	}
	if input.Color != "" && !domain.ValidColorToken(domain.ColorToken(input.Color)) {
		details["color"] = "unknown color token: " + input.Color
	}
	if len(details) > 0 {
		return errorutil.NewValidationError("invalid employee", details)
	}
	return nil
}

func (s *RosterService) buildEmployee(id string, input EmployeeInput) *domain.Employee {
	return &domain.Employee{
		ID:         id,
		Name:       strings.TrimSpace(input.Name),
		Title:      strings.TrimSpace(input.Title),
		Color:      domain.ColorToken(input.Color),
		SortOrder:  input.SortOrder,
		Region:     s.partition.Region,
		Department: s.partition.Department,
	}
}

// CreateEmployee adds a roster entry. The id is derived from the name; a
// second employee slugging to the same id is rejected rather than silently
// overwritten.
func (s *RosterService) CreateEmployee(ctx context.Context, input EmployeeInput) (*domain.Employee, error) {
	if err := s.validateEmployee(input); err != nil {
		return nil, err
	}
	id := domain.SlugID(input.Name)
	if id == "" {
		return nil, errorutil.NewValidationError("invalid employee", map[string]any{"name": "required"})
	}
	employee := s.buildEmployee(id, input)
	created, err := s.store.CreateEmployee(ctx, employee)
	if err != nil {
		return nil, errorutil.NewStoreUnavailable(err)
	}
	if !created {
		return nil, errorutil.NewConflict("employee id already exists", map[string]any{"id": id})
	}
	return employee, nil
}

// UpdateEmployee replaces an existing roster entry. The id is stable across
// renames so existing events keep pointing at the same person.
func (s *RosterService) UpdateEmployee(ctx context.Context, id string, input EmployeeInput) (*domain.Employee, error) {
	if err := s.validateEmployee(input); err != nil {
		return nil, err
	}
	if _, err := s.store.GetEmployee(ctx, s.partition, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorutil.NewNotFound("employee", map[string]any{"id": id})
		}
		return nil, errorutil.NewStoreUnavailable(err)
	}
	employee := s.buildEmployee(id, input)
	if err := s.store.UpsertEmployee(ctx, employee); err != nil {
		return nil, errorutil.NewStoreUnavailable(err)
	}
	return employee, nil
}

// DeleteEmployee removes a roster entry. Events referencing the employee are
// left untouched and render as unassigned.
func (s *RosterService) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.store.DeleteEmployee(ctx, s.partition, id); err != nil {
		return errorutil.NewStoreUnavailable(err)
	}
	return nil
}

// Employees lists the roster in display order.
func (s *RosterService) Employees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.store.ListEmployees(ctx, s.partition)
	if err != nil {
		return nil, errorutil.NewStoreUnavailable(err)
	}
	domain.SortEmployees(employees)
	return employees, nil
}

// Reorder rewrites SortOrder as 1..n following the given id sequence. Every
// id must name an existing roster entry; entries omitted from the sequence
// keep their stored order value.
func (s *RosterService) Reorder(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return errorutil.NewValidationError("invalid order", map[string]any{"ids": "required"})
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return errorutil.NewValidationError("invalid order", map[string]any{"ids": "duplicate id: " + id})
		}
		seen[id] = struct{}{}
	}

	employees, err := s.store.ListEmployees(ctx, s.partition)
	if err != nil {
		return errorutil.NewStoreUnavailable(err)
	}
	byID := make(map[string]*domain.Employee, len(employees))
	for i := range employees {
		byID[employees[i].ID] = &employees[i]
	}

	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return errorutil.NewNotFound("employee", map[string]any{"id": id})
		}
	}

	for pos, id := range ids {
		employee := byID[id]
		order := pos + 1
		employee.SortOrder = &order
		if err := s.store.UpsertEmployee(ctx, employee); err != nil {
			return errorutil.NewStoreUnavailable(err)
		}
	}
	return nil
}
