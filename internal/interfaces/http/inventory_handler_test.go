package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanstock/vanstock-api/internal/application/auth"
	"github.com/vanstock/vanstock-api/internal/application/dto"
	"github.com/vanstock/vanstock-api/internal/application/inventory"
	"github.com/vanstock/vanstock-api/internal/infrastructure/storage"
	apphttp "github.com/vanstock/vanstock-api/internal/interfaces/http"
	"github.com/vanstock/vanstock-api/pkg/logger"
)

// buildAPI wires the full router over memory storage, with or without auth.
func buildAPI(t *testing.T, authEnabled bool) *fiber.App {
	t.Helper()
	kv := storage.NewMemory()
	inv := inventory.NewService(storage.NewSnapshotRepository(kv), logger.Nop())

	var authUC *auth.AuthUseCase
	if authEnabled {
		authUC = auth.NewAuthUseCase(storage.NewUserRepository(kv), inv, auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
			Issuer:     testIssuer,
		})
	}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		InventoryUC: inv,
		AuthUC:      authUC,
		AuthEnabled: authEnabled,
		JWTSecret:   testJWTSecret,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any, token string) *http.Response {
	t.Helper()
	body := bytes.NewBuffer(nil)
	if payload != nil {
		require.NoError(t, json.NewEncoder(body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createDraft() map[string]any {
	return map[string]any{
		"name":         "Wire Stripper",
		"partNumber":   "WS-100",
		"category":     "tools",
		"currentStock": 5,
		"minStock":     2,
		"unit":         "pieces",
		"location":     "Driver Side - Drawer 1",
		"supplier":     "AceTools",
	}
}

func TestItems_CreateListAdjustAlertFlow(t *testing.T) {
	app := buildAPI(t, false)

	// Create
	resp := doJSON(t, app, http.MethodPost, "/api/items", createDraft(), "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.ItemResponse](t, resp)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.LastRestocked.IsZero())

	// List
	resp = doJSON(t, app, http.MethodGet, "/api/items", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.ItemListResponse](t, resp)
	require.Equal(t, 1, list.Total)

	// Drain stock to zero
	resp = doJSON(t, app, http.MethodPost, "/api/items/"+created.ID+"/adjust", dto.AdjustStockRequest{Delta: -5}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	adjusted := decode[dto.ItemResponse](t, resp)
	assert.Zero(t, adjusted.CurrentStock)

	// One out alert referencing name and part number
	resp = doJSON(t, app, http.MethodGet, "/api/alerts", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	alerts := decode[[]dto.AlertResponse](t, resp)
	require.Len(t, alerts, 1)
	assert.Equal(t, created.ID+"-out", alerts[0].ID)
	assert.Contains(t, alerts[0].Message, "Wire Stripper")
	assert.Contains(t, alerts[0].Message, "WS-100")

	// Low-stock view includes out-of-stock items
	resp = doJSON(t, app, http.MethodGet, "/api/items/low-stock", nil, "")
	low := decode[[]dto.ItemResponse](t, resp)
	require.Len(t, low, 1)

	resp = doJSON(t, app, http.MethodGet, "/api/items/out-of-stock", nil, "")
	out := decode[[]dto.ItemResponse](t, resp)
	require.Len(t, out, 1)

	// Clear alerts; items stay
	resp = doJSON(t, app, http.MethodDelete, "/api/alerts", nil, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/alerts", nil, "")
	alerts = decode[[]dto.AlertResponse](t, resp)
	assert.Empty(t, alerts)

	resp = doJSON(t, app, http.MethodGet, "/api/dashboard", nil, "")
	stats := decode[dto.DashboardResponse](t, resp)
	assert.Equal(t, 1, stats.TotalItems)
	assert.Equal(t, 1, stats.OutOfStock)
}

func TestItems_ValidationErrors(t *testing.T) {
	app := buildAPI(t, false)

	// Missing name
	draft := createDraft()
	delete(draft, "name")
	resp := doJSON(t, app, http.MethodPost, "/api/items", draft, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", errBody.Code)

	// Unknown category
	draft = createDraft()
	draft["category"] = "automotive"
	resp = doJSON(t, app, http.MethodPost, "/api/items", draft, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Negative stock
	draft = createDraft()
	draft["currentStock"] = -1
	resp = doJSON(t, app, http.MethodPost, "/api/items", draft, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// min > max
	draft = createDraft()
	draft["minStock"] = 10
	draft["maxStock"] = 5
	resp = doJSON(t, app, http.MethodPost, "/api/items", draft, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestItems_UnknownIDReturns404(t *testing.T) {
	app := buildAPI(t, false)

	resp := doJSON(t, app, http.MethodGet, "/api/items/ghost", nil, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/api/items/ghost", map[string]any{}, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/items/ghost", nil, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/items/ghost/adjust", dto.AdjustStockRequest{Delta: 1}, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestItems_UpdateMergesPatch(t *testing.T) {
	app := buildAPI(t, false)

	resp := doJSON(t, app, http.MethodPost, "/api/items", createDraft(), "")
	created := decode[dto.ItemResponse](t, resp)

	resp = doJSON(t, app, http.MethodPut, "/api/items/"+created.ID, map[string]any{"supplier": "BoltDepot"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[dto.ItemResponse](t, resp)
	assert.Equal(t, "BoltDepot", updated.Supplier)
	assert.Equal(t, "Wire Stripper", updated.Name)
}

func TestItems_SearchAndCategoryQuery(t *testing.T) {
	app := buildAPI(t, false)

	resp := doJSON(t, app, http.MethodPost, "/api/items", createDraft(), "")
	resp.Body.Close()
	second := createDraft()
	second["name"] = "PVC Elbow"
	second["category"] = "plumbing"
	resp = doJSON(t, app, http.MethodPost, "/api/items", second, "")
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/items?search=wire", nil, "")
	list := decode[dto.ItemListResponse](t, resp)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Wire Stripper", list.Items[0].Name)

	resp = doJSON(t, app, http.MethodGet, "/api/items?category=plumbing", nil, "")
	list = decode[dto.ItemListResponse](t, resp)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "PVC Elbow", list.Items[0].Name)
}

func TestCatalog_ListsFixedVocabularies(t *testing.T) {
	app := buildAPI(t, false)

	resp := doJSON(t, app, http.MethodGet, "/api/catalog", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	catalog := decode[dto.CatalogResponse](t, resp)
	assert.Len(t, catalog.Categories, 7)
	assert.Contains(t, catalog.Units, "pieces")
	assert.Contains(t, catalog.VanSides, "Driver Side")
	assert.Contains(t, catalog.VanBays, "Drawer 1")
}

func TestAuthFlow_RegisterLoginUseAndSignOut(t *testing.T) {
	app := buildAPI(t, true)

	// Protected routes reject anonymous requests
	resp := doJSON(t, app, http.MethodGet, "/api/items", nil, "")
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Register + login
	resp = doJSON(t, app, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Name: "John Smith", Email: "john@example.com", Password: "password123",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email: "john@example.com", Password: "password123",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := decode[dto.LoginResponse](t, resp)
	require.NotEmpty(t, login.Token)

	// Authenticated item creation lands in the user's scope
	resp = doJSON(t, app, http.MethodPost, "/api/items", createDraft(), login.Token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/items", nil, login.Token)
	list := decode[dto.ItemListResponse](t, resp)
	require.Equal(t, 1, list.Total)

	// Duplicate registration is rejected
	resp = doJSON(t, app, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Email: "john@example.com", Password: "other",
	}, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Wrong password
	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email: "john@example.com", Password: "wrong",
	}, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Sign-out wipes the user's inventory
	resp = doJSON(t, app, http.MethodPost, "/api/auth/signout", nil, login.Token)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/items", nil, login.Token)
	list = decode[dto.ItemListResponse](t, resp)
	assert.Zero(t, list.Total)
}

func TestInventoryReset_WipesScope(t *testing.T) {
	app := buildAPI(t, false)

	for i := 0; i < 3; i++ {
		draft := createDraft()
		draft["name"] = fmt.Sprintf("Item %d", i)
		resp := doJSON(t, app, http.MethodPost, "/api/items", draft, "")
		resp.Body.Close()
	}

	resp := doJSON(t, app, http.MethodDelete, "/api/inventory", nil, "")
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/items", nil, "")
	list := decode[dto.ItemListResponse](t, resp)
	assert.Zero(t, list.Total)
}
