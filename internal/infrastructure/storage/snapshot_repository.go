package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vanstock/vanstock-api/internal/domain/entity"
	"github.com/vanstock/vanstock-api/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*KVSnapshotRepository)(nil)

// Key layout. The mobile app stored @van_inventory / @van_alerts; here the
// records are additionally namespaced per scope (user id, or "local").
const (
	keyPrefix = "van_inventory"
)

func itemsKey(scope string) string  { return keyPrefix + ":items:" + scope }
func alertsKey(scope string) string { return keyPrefix + ":alerts:" + scope }

// KVSnapshotRepository persists inventory snapshots as JSON documents in the
// key-value collaborator. Each save fully overwrites the record.
type KVSnapshotRepository struct {
	kv KV
}

// NewSnapshotRepository builds the adapter over any KV driver.
func NewSnapshotRepository(kv KV) *KVSnapshotRepository {
	return &KVSnapshotRepository{kv: kv}
}

func (r *KVSnapshotRepository) LoadItems(ctx context.Context, scope string) ([]entity.InventoryItem, error) {
	raw, ok, err := r.kv.Get(ctx, itemsKey(scope))
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var items []entity.InventoryItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return items, nil
}

func (r *KVSnapshotRepository) SaveItems(ctx context.Context, scope string, items []entity.InventoryItem) error {
	if items == nil {
		items = []entity.InventoryItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	if err := r.kv.Set(ctx, itemsKey(scope), raw); err != nil {
		return fmt.Errorf("save items: %w", err)
	}
	return nil
}

func (r *KVSnapshotRepository) LoadAlerts(ctx context.Context, scope string) ([]entity.StockAlert, error) {
	raw, ok, err := r.kv.Get(ctx, alertsKey(scope))
	if err != nil {
		return nil, fmt.Errorf("load alerts: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var alerts []entity.StockAlert
	if err := json.Unmarshal(raw, &alerts); err != nil {
		return nil, fmt.Errorf("decode alerts: %w", err)
	}
	return alerts, nil
}

func (r *KVSnapshotRepository) SaveAlerts(ctx context.Context, scope string, alerts []entity.StockAlert) error {
	if alerts == nil {
		alerts = []entity.StockAlert{}
	}
	raw, err := json.Marshal(alerts)
	if err != nil {
		return fmt.Errorf("encode alerts: %w", err)
	}
	if err := r.kv.Set(ctx, alertsKey(scope), raw); err != nil {
		return fmt.Errorf("save alerts: %w", err)
	}
	return nil
}

func (r *KVSnapshotRepository) ClearAlerts(ctx context.Context, scope string) error {
	if err := r.kv.Remove(ctx, alertsKey(scope)); err != nil {
		return fmt.Errorf("clear alerts: %w", err)
	}
	return nil
}

// Clear removes both records for the scope (sign-out wipe / full reset).
func (r *KVSnapshotRepository) Clear(ctx context.Context, scope string) error {
	if err := r.kv.Remove(ctx, itemsKey(scope)); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}
	return r.ClearAlerts(ctx, scope)
}
