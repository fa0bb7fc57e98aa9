package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/vanstock/vanstock-api/internal/domain"
	"github.com/vanstock/vanstock-api/internal/domain/entity"
	"github.com/vanstock/vanstock-api/internal/domain/repository"
)

var _ repository.UserRepository = (*KVUserRepository)(nil)

const usersKey = keyPrefix + ":users"

// KVUserRepository stores all accounts as one JSON document in the KV store,
// mirroring the snapshot model of the inventory itself. The mutex serializes
// the read-modify-write of Create against concurrent registrations.
type KVUserRepository struct {
	kv KV
	mu sync.Mutex
}

// NewUserRepository builds the adapter over any KV driver.
func NewUserRepository(kv KV) *KVUserRepository {
	return &KVUserRepository{kv: kv}
}

func (r *KVUserRepository) load(ctx context.Context) ([]entity.User, error) {
	raw, ok, err := r.kv.Get(ctx, usersKey)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var users []entity.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (r *KVUserRepository) save(ctx context.Context, users []entity.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := r.kv.Set(ctx, usersKey, raw); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}

// Create appends the user; returns ErrEmailAlreadyExists on a duplicate email.
func (r *KVUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	users, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	return r.save(ctx, append(users, *user))
}

func (r *KVUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *KVUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}
