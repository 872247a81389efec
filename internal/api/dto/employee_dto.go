package dto

import (
	"github.com/spec-kit/crewcal/internal/domain"
	"github.com/spec-kit/crewcal/internal/service"
)

// EmployeeRequest is the create/update payload for roster entries.
type EmployeeRequest struct {
	Name      string `json:"name" validate:"required"`
	Title     string `json:"title"`
	Color     string `json:"color"`
	SortOrder *int   `json:"sortOrder"`
}

// ToInput converts the payload to the service input.
func (r EmployeeRequest) ToInput() service.EmployeeInput {
	return service.EmployeeInput{
		Name:      r.Name,
		Title:     r.Title,
		Color:     r.Color,
		SortOrder: r.SortOrder,
	}
}

// ReorderRequest carries the full desired roster ordering.
type ReorderRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

// EmployeeResponse wraps a stored roster entry for transport.
type EmployeeResponse struct {
	Employee *domain.Employee `json:"employee"`
}
