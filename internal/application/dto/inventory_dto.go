package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vanstock/vanstock-api/internal/domain/entity"
)

// CreateItemRequest is a draft item: everything but the server-assigned
// id and lastRestocked. Category defaults to "other" when omitted.
type CreateItemRequest struct {
	Name         string           `json:"name"`
	PartNumber   string           `json:"partNumber"`
	Category     string           `json:"category"`
	CurrentStock int              `json:"currentStock"`
	MinStock     int              `json:"minStock"`
	MaxStock     *int             `json:"maxStock"`
	Unit         string           `json:"unit"`
	Location     string           `json:"location"`
	Price        *decimal.Decimal `json:"price"`
	Supplier     string           `json:"supplier"`
	Description  string           `json:"description"`
	Barcode      string           `json:"barcode"`
}

// UpdateItemRequest is a partial patch; nil fields are left untouched.
// An empty patch is valid and still triggers a full alert re-derivation.
type UpdateItemRequest struct {
	Name         *string          `json:"name"`
	PartNumber   *string          `json:"partNumber"`
	Category     *string          `json:"category"`
	CurrentStock *int             `json:"currentStock"`
	MinStock     *int             `json:"minStock"`
	MaxStock     *int             `json:"maxStock"`
	Unit         *string          `json:"unit"`
	Location     *string          `json:"location"`
	Price        *decimal.Decimal `json:"price"`
	Supplier     *string          `json:"supplier"`
	Description  *string          `json:"description"`
	Barcode      *string          `json:"barcode"`
}

// AdjustStockRequest applies a signed stock delta (clamped at zero).
type AdjustStockRequest struct {
	Delta int `json:"delta"`
}

// ItemResponse mirrors the persisted item shape.
type ItemResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	PartNumber    string           `json:"partNumber"`
	Category      string           `json:"category"`
	CurrentStock  int              `json:"currentStock"`
	MinStock      int              `json:"minStock"`
	MaxStock      *int             `json:"maxStock,omitempty"`
	Unit          string           `json:"unit"`
	Location      string           `json:"location"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	Supplier      string           `json:"supplier"`
	Description   string           `json:"description,omitempty"`
	Barcode       string           `json:"barcode,omitempty"`
	LastRestocked time.Time        `json:"lastRestocked"`
}

// ItemListResponse wraps a filtered item listing.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}

// AlertResponse mirrors a derived stock alert.
type AlertResponse struct {
	ID        string           `json:"id"`
	ItemID    string           `json:"itemId"`
	Type      entity.AlertType `json:"type"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
}

// DashboardResponse is the dashboard summary. Degraded is true when the last
// snapshot load failed and the scope started from an empty list.
type DashboardResponse struct {
	TotalItems   int             `json:"totalItems"`
	LowStock     int             `json:"lowStock"`
	OutOfStock   int             `json:"outOfStock"`
	Categories   int             `json:"categories"`
	TotalValue   decimal.Decimal `json:"totalValue"`
	ActiveAlerts int             `json:"activeAlerts"`
	Degraded     bool            `json:"degraded"`
}

// CatalogResponse feeds the client's form pickers.
type CatalogResponse struct {
	Categories []entity.Category `json:"categories"`
	Units      []string          `json:"units"`
	VanSides   []string          `json:"vanSides"`
	VanBays    []string          `json:"vanBays"`
}
