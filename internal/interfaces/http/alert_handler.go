package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vanstock/vanstock-api/internal/application/dto"
	"github.com/vanstock/vanstock-api/internal/application/inventory"
)

// AlertHandler exposes the derived alert cache.
type AlertHandler struct {
	uc *inventory.Service
}

// NewAlertHandler builds the handler.
func NewAlertHandler(uc *inventory.Service) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// List godoc
// @Summary      Current stock alerts, in derivation order
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AlertResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Alerts(c.UserContext(), ScopeOf(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Empty the alert cache and its persisted snapshot
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      204
// @Router       /api/alerts [delete]
func (h *AlertHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.ClearAlerts(c.UserContext(), ScopeOf(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
