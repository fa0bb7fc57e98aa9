package repository

import (
	"context"

	"github.com/vanstock/vanstock-api/internal/domain/entity"
)

// UserRepository is the persistence port for accounts (remote deployment).
// FindByEmail returns (nil, nil) when no user matches; email comparison is
// case-insensitive.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
