package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanstock/vanstock-api/internal/application/auth"
	"github.com/vanstock/vanstock-api/internal/application/dto"
	"github.com/vanstock/vanstock-api/internal/application/inventory"
	"github.com/vanstock/vanstock-api/internal/domain"
	"github.com/vanstock/vanstock-api/internal/infrastructure/storage"
	pkgjwt "github.com/vanstock/vanstock-api/pkg/jwt"
	"github.com/vanstock/vanstock-api/pkg/logger"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "vanstock-test"
)

// newTestAuth wires the use case over memory storage with the real inventory
// service as the sign-out wiper.
func newTestAuth(t *testing.T) (*auth.AuthUseCase, *inventory.Service) {
	t.Helper()
	kv := storage.NewMemory()
	inv := inventory.NewService(storage.NewSnapshotRepository(kv), logger.Nop())
	uc := auth.NewAuthUseCase(storage.NewUserRepository(kv), inv, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})
	return uc, inv
}

func register(t *testing.T, uc *auth.AuthUseCase) *dto.UserResponse {
	t.Helper()
	user, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:     "John Smith",
		Email:    "john@example.com",
		Password: "password123",
		Company:  "Smith Plumbing",
	})
	require.NoError(t, err)
	return user
}

func TestRegister_HashesPasswordAndAssignsID(t *testing.T) {
	uc, _ := newTestAuth(t)

	user := register(t, uc)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "john@example.com", user.Email)
	assert.Equal(t, "Smith Plumbing", user.Company)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _ := newTestAuth(t)
	register(t, uc)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "John@Example.com",
		Password: "other",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_EmptyNameFallsBackToEmail(t *testing.T) {
	uc, _ := newTestAuth(t)

	user, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "anon@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "anon@example.com", user.Name)
}

func TestLogin_ReturnsTokenForValidCredentials(t *testing.T) {
	uc, _ := newTestAuth(t)
	registered := register(t, uc)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "john@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, out.User.ID)

	// The token must carry the user id
	userID, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, _ := newTestAuth(t)
	register(t, uc)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "john@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc, _ := newTestAuth(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestSignOut_WipesTheUsersInventoryScope(t *testing.T) {
	uc, inv := newTestAuth(t)
	ctx := context.Background()
	user := register(t, uc)

	_, err := inv.Add(ctx, user.ID, dto.CreateItemRequest{
		Name: "Wire Stripper", PartNumber: "WS-100", Supplier: "AceTools",
		CurrentStock: 5, MinStock: 2, Unit: "pieces",
	})
	require.NoError(t, err)

	require.NoError(t, uc.SignOut(ctx, user.ID))

	list, err := inv.List(ctx, user.ID, "", "")
	require.NoError(t, err)
	assert.Zero(t, list.Total, "sign-out must clear the user's stored inventory")
}
