package inventory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vanstock/vanstock-api/internal/application/dto"
	"github.com/vanstock/vanstock-api/internal/domain"
	"github.com/vanstock/vanstock-api/internal/domain/entity"
	"github.com/vanstock/vanstock-api/internal/domain/repository"
	"github.com/vanstock/vanstock-api/pkg/logger"
)

// LocalScope is the single inventory scope of the no-auth deployment.
// With auth enabled, the user id is the scope.
const LocalScope = "local"

// Clock supplies timestamps; injected so tests can control time.
type Clock func() time.Time

// Service owns the authoritative item list and derived alert cache per scope.
// All mutation goes through the replace path: persist the full list, update
// memory, re-derive alerts, persist the alert snapshot.
//
// Each scope carries its own lock, held across the whole
// read-modify-persist-rederive sequence, so mutations on one scope apply
// strictly in submission order and a query after a mutation returns always
// observes the mutated state.
type Service struct {
	repo  repository.SnapshotRepository
	log   *logger.Logger
	clock Clock
	newID func() string

	mu     sync.Mutex
	scopes map[string]*scopeState
}

// scopeState transitions uninitialized -> loading -> ready on first access.
// Load failures resolve to ready with empty lists and degraded set; there is
// no error terminal state.
type scopeState struct {
	mu       sync.RWMutex
	loaded   bool
	degraded bool
	items    []entity.InventoryItem
	alerts   []entity.StockAlert
}

// NewService builds the inventory service with the real clock and uuid ids.
func NewService(repo repository.SnapshotRepository, log *logger.Logger) *Service {
	return &Service{
		repo:   repo,
		log:    log,
		clock:  time.Now,
		newID:  uuid.NewString,
		scopes: map[string]*scopeState{},
	}
}

// WithClock overrides the time source (tests).
func (s *Service) WithClock(clock Clock) *Service {
	s.clock = clock
	return s
}

// WithIDs overrides the id generator (tests).
func (s *Service) WithIDs(newID func() string) *Service {
	s.newID = newID
	return s
}

// state returns the scope's state, loading the persisted snapshot on first
// access. Fail-soft: a broken or unreadable snapshot logs a warning, flags
// the scope degraded and starts from empty lists.
func (s *Service) state(ctx context.Context, scope string) *scopeState {
	s.mu.Lock()
	st, ok := s.scopes[scope]
	if !ok {
		st = &scopeState{}
		s.scopes[scope] = st
	}
	s.mu.Unlock()

	st.mu.Lock()
	defer st.mu.Unlock()
	if st.loaded {
		return st
	}
	items, err := s.repo.LoadItems(ctx, scope)
	if err != nil {
		s.log.Warn().Err(err).Str("scope", scope).Msg("loading inventory snapshot failed, starting empty")
		st.degraded = true
		items = nil
	}
	alerts, err := s.repo.LoadAlerts(ctx, scope)
	if err != nil {
		s.log.Warn().Err(err).Str("scope", scope).Msg("loading alert snapshot failed, starting empty")
		st.degraded = true
		alerts = nil
	}
	st.items = items
	st.alerts = alerts
	st.loaded = true
	return st
}

// replace is the only write path. Caller must hold st.mu. On persist failure
// the in-memory list is left untouched and the error is returned, so memory
// and durable storage cannot diverge silently.
func (s *Service) replace(ctx context.Context, scope string, st *scopeState, items []entity.InventoryItem, now time.Time) error {
	if err := s.repo.SaveItems(ctx, scope, items); err != nil {
		return fmt.Errorf("persist inventory: %w", err)
	}
	st.items = items

	alerts := DeriveAlerts(items, now)
	if err := s.repo.SaveAlerts(ctx, scope, alerts); err != nil {
		// The item list is already committed; keep the freshly derived
		// alerts in memory and surface the stale-cache condition.
		st.alerts = alerts
		return fmt.Errorf("persist alerts: %w", err)
	}
	st.alerts = alerts
	return nil
}

// Add assigns a fresh id, stamps lastRestocked and appends the draft to the
// end of the list. Duplicates of partNumber, barcode or name are permitted.
func (s *Service) Add(ctx context.Context, scope string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	st := s.state(ctx, scope)
	st.mu.Lock()
	defer st.mu.Unlock()

	now := s.clock()
	item := entity.InventoryItem{
		ID:            s.newID(),
		Name:          in.Name,
		PartNumber:    in.PartNumber,
		Category:      in.Category,
		CurrentStock:  in.CurrentStock,
		MinStock:      in.MinStock,
		MaxStock:      in.MaxStock,
		Unit:          in.Unit,
		Location:      in.Location,
		Price:         in.Price,
		Supplier:      in.Supplier,
		Description:   in.Description,
		Barcode:       in.Barcode,
		LastRestocked: now,
	}
	if item.Category == "" {
		item.Category = entity.DefaultCategory
	}

	next := append(cloneItems(st.items), item)
	if err := s.replace(ctx, scope, st, next, now); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Update merges the patch into the matching item; nil patch fields are left
// untouched. An empty patch is a valid no-op that still re-derives alerts.
// Returns ErrNotFound, with state untouched, when the id is absent.
func (s *Service) Update(ctx context.Context, scope, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	st := s.state(ctx, scope)
	st.mu.Lock()
	defer st.mu.Unlock()

	idx := indexOf(st.items, id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	next := cloneItems(st.items)
	applyPatch(&next[idx], in)

	if err := s.replace(ctx, scope, st, next, s.clock()); err != nil {
		return nil, err
	}
	return toItemResponse(next[idx]), nil
}

// Delete removes the matching item. Returns ErrNotFound when absent.
func (s *Service) Delete(ctx context.Context, scope, id string) error {
	st := s.state(ctx, scope)
	st.mu.Lock()
	defer st.mu.Unlock()

	idx := indexOf(st.items, id)
	if idx < 0 {
		return domain.ErrNotFound
	}
	next := make([]entity.InventoryItem, 0, len(st.items)-1)
	next = append(next, st.items[:idx]...)
	next = append(next, st.items[idx+1:]...)
	return s.replace(ctx, scope, st, next, s.clock())
}

// AdjustStock applies newStock = max(0, current + delta). A positive delta is
// a restock and advances lastRestocked; a zero or negative delta leaves it
// untouched. Returns ErrNotFound when the id is absent.
func (s *Service) AdjustStock(ctx context.Context, scope, id string, delta int) (*dto.ItemResponse, error) {
	st := s.state(ctx, scope)
	st.mu.Lock()
	defer st.mu.Unlock()

	idx := indexOf(st.items, id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	now := s.clock()
	next := cloneItems(st.items)
	newStock := next[idx].CurrentStock + delta
	if newStock < 0 {
		newStock = 0
	}
	next[idx].CurrentStock = newStock
	if delta > 0 {
		next[idx].LastRestocked = now
	}

	if err := s.replace(ctx, scope, st, next, now); err != nil {
		return nil, err
	}
	return toItemResponse(next[idx]), nil
}

// Get returns one item by id, or ErrNotFound.
func (s *Service) Get(ctx context.Context, scope, id string) (*dto.ItemResponse, error) {
	st := s.state(ctx, scope)
	st.mu.RLock()
	defer st.mu.RUnlock()

	idx := indexOf(st.items, id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(st.items[idx]), nil
}

// List returns items in insertion order, optionally filtered by a category id
// and a case-insensitive substring search over name/category/location.
func (s *Service) List(ctx context.Context, scope, search, category string) (*dto.ItemListResponse, error) {
	st := s.state(ctx, scope)
	st.mu.RLock()
	defer st.mu.RUnlock()

	items := make([]dto.ItemResponse, 0, len(st.items))
	for _, item := range st.items {
		if category != "" && category != "all" && item.Category != category {
			continue
		}
		if !item.MatchesSearch(search) {
			continue
		}
		items = append(items, *toItemResponse(item))
	}
	return &dto.ItemListResponse{Items: items, Total: len(items)}, nil
}

// LowStock returns items at or below their threshold, including out-of-stock
// ones ("low" is a superset of "out" from the caller's perspective).
func (s *Service) LowStock(ctx context.Context, scope string) ([]dto.ItemResponse, error) {
	return s.filter(ctx, scope, entity.InventoryItem.IsLow)
}

// OutOfStock returns items with zero stock.
func (s *Service) OutOfStock(ctx context.Context, scope string) ([]dto.ItemResponse, error) {
	return s.filter(ctx, scope, entity.InventoryItem.IsOut)
}

func (s *Service) filter(ctx context.Context, scope string, keep func(entity.InventoryItem) bool) ([]dto.ItemResponse, error) {
	st := s.state(ctx, scope)
	st.mu.RLock()
	defer st.mu.RUnlock()

	items := make([]dto.ItemResponse, 0)
	for _, item := range st.items {
		if keep(item) {
			items = append(items, *toItemResponse(item))
		}
	}
	return items, nil
}

// Alerts returns the current alert cache in derivation order.
func (s *Service) Alerts(ctx context.Context, scope string) ([]dto.AlertResponse, error) {
	st := s.state(ctx, scope)
	st.mu.RLock()
	defer st.mu.RUnlock()

	alerts := make([]dto.AlertResponse, 0, len(st.alerts))
	for _, a := range st.alerts {
		alerts = append(alerts, dto.AlertResponse{
			ID:        a.ID,
			ItemID:    a.ItemID,
			Type:      a.Type,
			Message:   a.Message,
			Timestamp: a.Timestamp,
		})
	}
	return alerts, nil
}

// ClearAlerts empties the alert cache and its persisted snapshot. The item
// list is untouched; the next mutation regenerates alerts from scratch.
func (s *Service) ClearAlerts(ctx context.Context, scope string) error {
	st := s.state(ctx, scope)
	st.mu.Lock()
	defer st.mu.Unlock()

	if err := s.repo.ClearAlerts(ctx, scope); err != nil {
		return err
	}
	st.alerts = nil
	return nil
}

// Reset wipes the scope entirely: items, alerts and both persisted records.
// Backs the sign-out flow of the remote deployment.
func (s *Service) Reset(ctx context.Context, scope string) error {
	st := s.state(ctx, scope)
	st.mu.Lock()
	defer st.mu.Unlock()

	if err := s.repo.Clear(ctx, scope); err != nil {
		return err
	}
	st.items = nil
	st.alerts = nil
	st.degraded = false
	return nil
}

// Stats summarizes the scope for the dashboard. TotalValue is the sum of
// price x currentStock over items that carry a price.
func (s *Service) Stats(ctx context.Context, scope string) (*dto.DashboardResponse, error) {
	st := s.state(ctx, scope)
	st.mu.RLock()
	defer st.mu.RUnlock()

	low, out := 0, 0
	categories := map[string]struct{}{}
	total := decimal.Zero
	for _, item := range st.items {
		if item.IsLow() {
			low++
		}
		if item.IsOut() {
			out++
		}
		categories[item.Category] = struct{}{}
		if item.Price != nil {
			total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.CurrentStock))))
		}
	}
	return &dto.DashboardResponse{
		TotalItems:   len(st.items),
		LowStock:     low,
		OutOfStock:   out,
		Categories:   len(categories),
		TotalValue:   total,
		ActiveAlerts: len(st.alerts),
		Degraded:     st.degraded,
	}, nil
}

func indexOf(items []entity.InventoryItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneItems(items []entity.InventoryItem) []entity.InventoryItem {
	out := make([]entity.InventoryItem, len(items))
	copy(out, items)
	return out
}

func applyPatch(item *entity.InventoryItem, in dto.UpdateItemRequest) {
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.PartNumber != nil {
		item.PartNumber = *in.PartNumber
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.CurrentStock != nil {
		stock := *in.CurrentStock
		if stock < 0 {
			stock = 0
		}
		item.CurrentStock = stock
	}
	if in.MinStock != nil {
		item.MinStock = *in.MinStock
	}
	if in.MaxStock != nil {
		item.MaxStock = in.MaxStock
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.Location != nil {
		item.Location = *in.Location
	}
	if in.Price != nil {
		item.Price = in.Price
	}
	if in.Supplier != nil {
		item.Supplier = *in.Supplier
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Barcode != nil {
		item.Barcode = *in.Barcode
	}
}

func toItemResponse(item entity.InventoryItem) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:            item.ID,
		Name:          item.Name,
		PartNumber:    item.PartNumber,
		Category:      item.Category,
		CurrentStock:  item.CurrentStock,
		MinStock:      item.MinStock,
		MaxStock:      item.MaxStock,
		Unit:          item.Unit,
		Location:      item.Location,
		Price:         item.Price,
		Supplier:      item.Supplier,
		Description:   item.Description,
		Barcode:       item.Barcode,
		LastRestocked: item.LastRestocked,
	}
}
