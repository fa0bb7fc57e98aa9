package repository

import (
	"context"

	"github.com/vanstock/vanstock-api/internal/domain/entity"
)

// SnapshotRepository is the persistence port for inventory snapshots (DIP).
// Each scope owns two records: the ordered item list and the derived alert
// cache. Saves are whole-list overwrites, never incremental patches.
// Load methods return (nil, nil) when no record exists yet.
type SnapshotRepository interface {
	LoadItems(ctx context.Context, scope string) ([]entity.InventoryItem, error)
	SaveItems(ctx context.Context, scope string, items []entity.InventoryItem) error
	LoadAlerts(ctx context.Context, scope string) ([]entity.StockAlert, error)
	SaveAlerts(ctx context.Context, scope string, alerts []entity.StockAlert) error
	ClearAlerts(ctx context.Context, scope string) error
	Clear(ctx context.Context, scope string) error
}
