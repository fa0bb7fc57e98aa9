package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vanstock/vanstock-api/internal/application/dto"
	"github.com/vanstock/vanstock-api/internal/application/inventory"
	"github.com/vanstock/vanstock-api/internal/domain/entity"
)

// DashboardHandler serves the summary stats and the form catalogs.
type DashboardHandler struct {
	uc *inventory.Service
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *inventory.Service) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Dashboard summary for the scope
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext(), ScopeOf(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Catalog godoc
// @Summary      Fixed catalogs for form pickers
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.CatalogResponse
// @Router       /api/catalog [get]
func (h *DashboardHandler) Catalog(c *fiber.Ctx) error {
	return c.JSON(dto.CatalogResponse{
		Categories: entity.ItemCategories,
		Units:      entity.Units,
		VanSides:   entity.VanSides,
		VanBays:    entity.VanBays,
	})
}
