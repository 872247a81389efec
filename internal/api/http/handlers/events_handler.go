package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/crewcal/internal/api/dto"
	"github.com/spec-kit/crewcal/internal/service"
)

// EventsHandler exposes schedule event CRUD. Event writes are open to every
// team member; only roster management sits behind the admin gate.
type EventsHandler struct {
	schedule *service.ScheduleService
}

// NewEventsHandler constructs handler.
func NewEventsHandler(schedule *service.ScheduleService) *EventsHandler {
	return &EventsHandler{schedule: schedule}
}

// List handles GET /api/events?start=...&end=... .
func (h *EventsHandler) List(c *fiber.Ctx) error {
	start := c.Query("start")
	end := c.Query("end")

	events, err := h.schedule.EventsInRange(c.UserContext(), start, end)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"events": events}})
}

// Create handles POST /api/events.
func (h *EventsHandler) Create(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	event, err := h.schedule.CreateEvent(c.UserContext(), req.ToInput())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.EventResponse{Event: event}})
}

// Update handles PUT /api/events/:id.
func (h *EventsHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	event, err := h.schedule.UpdateEvent(c.UserContext(), id, req.ToInput())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.EventResponse{Event: event}})
}

// Delete handles DELETE /api/events/:id.
func (h *EventsHandler) Delete(c *fiber.Ctx) error {
	if err := h.schedule.DeleteEvent(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.Status(http.StatusNoContent).Send(nil)
}
