package inventory

import (
	"fmt"
	"time"

	"github.com/vanstock/vanstock-api/internal/domain/entity"
)

// DeriveAlerts maps an item list to its complete alert list. Pure function:
// no side effects, deterministic for a given (items, now) pair. The caller
// persists the result and swaps the observable alert state.
//
// Rules, in item order:
//   - stock == 0            -> one "out" alert, id "{itemID}-out"
//   - 0 < stock <= minStock -> one "low" alert, id "{itemID}-low"
//
// The two branches are mutually exclusive per item ("out" wins, also when
// minStock is 0). All alerts of one pass share the same timestamp. Output
// ordering follows input ordering, not severity.
func DeriveAlerts(items []entity.InventoryItem, now time.Time) []entity.StockAlert {
	alerts := make([]entity.StockAlert, 0, len(items))
	for _, item := range items {
		switch {
		case item.CurrentStock == 0:
			alerts = append(alerts, entity.StockAlert{
				ID:        item.ID + "-out",
				ItemID:    item.ID,
				Type:      entity.AlertOut,
				Message:   fmt.Sprintf("%s (%s) is out of stock", item.Name, item.PartNumber),
				Timestamp: now,
			})
		case item.CurrentStock <= item.MinStock:
			alerts = append(alerts, entity.StockAlert{
				ID:        item.ID + "-low",
				ItemID:    item.ID,
				Type:      entity.AlertLow,
				Message:   fmt.Sprintf("%s (%s) is running low (%d %s remaining)", item.Name, item.PartNumber, item.CurrentStock, item.Unit),
				Timestamp: now,
			})
		}
	}
	return alerts
}
