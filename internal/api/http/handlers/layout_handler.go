package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/crewcal/internal/service"
)

// LayoutHandler exposes the computed calendar layout.
type LayoutHandler struct {
	layout *service.LayoutService
}

// NewLayoutHandler constructs handler.
func NewLayoutHandler(layout *service.LayoutService) *LayoutHandler {
	return &LayoutHandler{layout: layout}
}

// Get handles GET /api/layout.
//
// Query parameters:
//
//	view       week | biweekly | month | twomonth (default week)
//	anchor     canonical date, default today
//	employees  comma-separated employee ids, or "all"
//	type       single event-type filter, or "all"
//	crossView  "true" overlays the sibling department
func (h *LayoutHandler) Get(c *fiber.Ctx) error {
	req := service.LayoutRequest{
		View:      c.Query("view"),
		Anchor:    c.Query("anchor"),
		EventType: c.Query("type"),
		CrossView: c.QueryBool("crossView"),
	}
	if employees := c.Query("employees"); employees != "" {
		for _, id := range strings.Split(employees, ",") {
			if id = strings.TrimSpace(id); id != "" {
				req.EmployeeIDs = append(req.EmployeeIDs, id)
			}
		}
	}

	layout, err := h.layout.ComputeLayout(req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": layout})
}
