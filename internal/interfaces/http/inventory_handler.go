package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/vanstock/vanstock-api/internal/application/dto"
	"github.com/vanstock/vanstock-api/internal/application/inventory"
	"github.com/vanstock/vanstock-api/internal/domain"
	"github.com/vanstock/vanstock-api/internal/domain/entity"
)

// InventoryHandler handles the item CRUD and stock adjustments.
type InventoryHandler struct {
	uc *inventory.Service
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(uc *inventory.Service) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Create godoc
// @Summary      Add an inventory item
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Item draft"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Name == "" || in.PartNumber == "" || in.Supplier == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, partNumber and supplier are required"})
	}
	if in.CurrentStock < 0 || in.MinStock < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "stock levels cannot be negative"})
	}
	if in.Category != "" && !entity.IsValidCategory(in.Category) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "unknown category"})
	}
	if in.MaxStock != nil && in.MinStock > *in.MaxStock {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "minimum stock cannot be greater than maximum stock"})
	}
	if in.Unit == "" {
		in.Unit = "pieces"
	}
	out, err := h.uc.Add(c.UserContext(), ScopeOf(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List items (optional search and category filter)
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Substring match on name, category, location"
// @Param        category  query  string  false  "Category id, or 'all'"
// @Success      200       {object}  dto.ItemListResponse
// @Router       /api/items [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), ScopeOf(c), c.Query("search"), c.Query("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get an item by id
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Item id"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), ScopeOf(c), c.Params("id"))
	if err != nil {
		return itemError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Patch an item (partial update)
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Item id"
// @Param        body  body  dto.UpdateItemRequest  true  "Fields to update"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Category != nil && !entity.IsValidCategory(*in.Category) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "unknown category"})
	}
	out, err := h.uc.Update(c.UserContext(), ScopeOf(c), c.Params("id"), in)
	if err != nil {
		return itemError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete an item
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Item id"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), ScopeOf(c), c.Params("id")); err != nil {
		return itemError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Adjust godoc
// @Summary      Adjust stock by a signed delta (clamped at zero)
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Item id"
// @Param        body  body  dto.AdjustStockRequest  true  "Delta"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.AdjustStock(c.UserContext(), ScopeOf(c), c.Params("id"), in.Delta)
	if err != nil {
		return itemError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Items at or below their minimum stock
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/items/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.UserContext(), ScopeOf(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// OutOfStock godoc
// @Summary      Items with zero stock
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/items/out-of-stock [get]
func (h *InventoryHandler) OutOfStock(c *fiber.Ctx) error {
	out, err := h.uc.OutOfStock(c.UserContext(), ScopeOf(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Reset godoc
// @Summary      Wipe the scope's items and alerts
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Success      204
// @Router       /api/inventory [delete]
func (h *InventoryHandler) Reset(c *fiber.Ctx) error {
	if err := h.uc.Reset(c.UserContext(), ScopeOf(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func itemError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item not found"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
