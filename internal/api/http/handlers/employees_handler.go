package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/crewcal/internal/api/dto"
	"github.com/spec-kit/crewcal/internal/service"
)

// EmployeesHandler exposes roster management endpoints.
type EmployeesHandler struct {
	roster *service.RosterService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(roster *service.RosterService) *EmployeesHandler {
	return &EmployeesHandler{roster: roster}
}

// List handles GET /api/employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	employees, err := h.roster.Employees(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"employees": employees}})
}

// Create handles POST /api/employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	employee, err := h.roster.CreateEmployee(c.UserContext(), req.ToInput())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.EmployeeResponse{Employee: employee}})
}

// Update handles PUT /api/employees/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	employee, err := h.roster.UpdateEmployee(c.UserContext(), id, req.ToInput())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.EmployeeResponse{Employee: employee}})
}

// Delete handles DELETE /api/employees/:id.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	if err := h.roster.DeleteEmployee(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.Status(http.StatusNoContent).Send(nil)
}

// Reorder handles PUT /api/employees/order.
func (h *EmployeesHandler) Reorder(c *fiber.Ctx) error {
	var req dto.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	if err := h.roster.Reorder(c.UserContext(), req.IDs); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "reordered"}})
}
