package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vanstock/vanstock-api/internal/application/dto"
	"github.com/vanstock/vanstock-api/internal/domain"
	"github.com/vanstock/vanstock-api/internal/domain/entity"
	"github.com/vanstock/vanstock-api/internal/domain/repository"
	"github.com/vanstock/vanstock-api/pkg/jwt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// InventoryWiper clears a user's inventory scope on sign-out, matching the
// app's behavior of wiping stored data when logging out.
type InventoryWiper interface {
	Reset(ctx context.Context, scope string) error
}

// AuthUseCase authentication flows: register, login, sign-out.
type AuthUseCase struct {
	users  repository.UserRepository
	wiper  InventoryWiper
	jwtCfg JWTConfig
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(users repository.UserRepository, wiper InventoryWiper, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, wiper: wiper, jwtCfg: jwtCfg}
}

// Register creates an account: bcrypt-hashes the password and persists.
// Returns ErrEmailAlreadyExists when the email is taken.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		Name:         name,
		Company:      in.Company,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifies email/password, generates a JWT and returns token + user.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// SignOut wipes the user's inventory scope. The token itself is stateless and
// simply discarded by the client.
func (uc *AuthUseCase) SignOut(ctx context.Context, userID string) error {
	return uc.wiper.Reset(ctx, userID)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Company:   u.Company,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}
