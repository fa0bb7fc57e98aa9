package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is one item carried in the van, with its stock level and
// physical placement. The JSON tags define the persisted snapshot format;
// the item list is stored as one ordered JSON document per scope.
//
// MaxStock, Price and Description come from the richest schema revision and
// are optional; CurrentStock is clamped so it never goes below zero.
type InventoryItem struct {
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

// IsLow reports whether the item is at or below its alert threshold.
// Out-of-stock items count as low here; the alert deriver keeps the two
// alert types mutually exclusive.
func (i InventoryItem) IsLow() bool {
	return i.CurrentStock <= i.MinStock
}

// IsOut reports whether the item is out of stock.
func (i InventoryItem) IsOut() bool {
	return i.CurrentStock == 0
}
