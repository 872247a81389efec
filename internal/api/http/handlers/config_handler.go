package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/crewcal/internal/catalog"
	"github.com/spec-kit/crewcal/internal/domain"
)

// ConfigHandler exposes the static catalog for the active partition so
// clients can build their pickers from the same vocabulary the server
// validates against.
type ConfigHandler struct {
	catalog   *catalog.Catalog
	partition domain.Partition
}

// NewConfigHandler constructs handler.
func NewConfigHandler(cat *catalog.Catalog, partition domain.Partition) *ConfigHandler {
	return &ConfigHandler{catalog: cat, partition: partition}
}

// Get handles GET /api/config.
func (h *ConfigHandler) Get(c *fiber.Ctx) error {
	dept, err := h.catalog.Department(h.partition.Department)
	if err != nil {
		return err
	}
	region, err := h.catalog.Region(h.partition.Region)
	if err != nil {
		return err
	}

	data := fiber.Map{
		"region":     region,
		"department": dept,
		"palette":    domain.Palette,
	}
	if cross, ok := h.catalog.CrossDepartment(h.partition.Department); ok {
		data["crossDepartment"] = fiber.Map{"id": cross.ID, "label": cross.Label}
	}
	return c.JSON(fiber.Map{"data": data})
}
