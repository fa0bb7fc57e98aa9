package entity

import "time"

// AlertType classifies a stock alert.
type AlertType string

const (
	AlertLow       AlertType = "low"
	AlertOut       AlertType = "out"
	AlertOverstock AlertType = "overstock" // reserved, never emitted by the current derivation
)

// StockAlert is a derived view over the item list, never a source of truth.
// The whole alert list is regenerated and overwritten on every item mutation.
// ID is deterministic per (item, type) so at most one alert of a given type
// exists per item per derivation pass.
type StockAlert struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"itemId"`
	Type      AlertType `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
