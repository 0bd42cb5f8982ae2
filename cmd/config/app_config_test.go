package config_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path"
	"testing"
	"time"

	"Food-Sustainability-Backend/cmd/config"
	"Food-Sustainability-Backend/domain"
	"Food-Sustainability-Backend/internal/testutil"
	"Food-Sustainability-Backend/internal/utils"
	"Food-Sustainability-Backend/internal/utils/mailing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct{}

func (fakeStorage) UploadFile(_ context.Context, name string, file *multipart.FileHeader, folder string, _ ...string) (string, error) {
	return path.Join(folder, name+path.Ext(file.Filename)), nil
}

func (fakeStorage) DeleteFile(context.Context, string) error { return nil }

func (fakeStorage) GetPublicLinkKey(key string) string { return "https://cdn.example.com/" + key }

type fakeAI struct{}

func (fakeAI) AnalyzeInventoryImage(context.Context, []byte, string) []domain.ProposedItem {
	return []domain.ProposedItem{
		{Name: "Eggs", Quantity: "12 count", ExpiryDate: "2030-01-01", Category: "protein"},
		{Name: "Flour", Quantity: "1kg"},
	}
}

func (fakeAI) GenerateMealPlan(context.Context, []domain.InventoryItemResponse, float64) []domain.MealPlanDay {
	return []domain.MealPlanDay{}
}

func (fakeAI) SustainabilityInsights(context.Context, []domain.InventoryItemResponse, []domain.FoodLogResponse) domain.SustainabilityMetrics {
	return domain.FallbackMetrics()
}

func (fakeAI) Chat(context.Context, []domain.ChatTurn, string) string { return "hello" }

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type harness struct {
	t     *testing.T
	app   *fiber.App
	clock *testutil.Clock
	token string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	clock := testutil.NewClock(time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC))
	application, err := config.NewApp(config.Dependencies{
		DB: testutil.NewDB(t),
		Config: utils.Config{
			JWTSecret:   "e2e-secret",
			JWTTTLHours: 24 * 365,
		},
		Storage:   fakeStorage{},
		AI:        fakeAI{},
		Clock:     clock,
		Mailer:    mailing.NoopMailer{},
		AccessLog: io.Discard,
	})
	require.NoError(t, err)

	return &harness{t: t, app: application.App, clock: clock}
}

func (h *harness) do(req *http.Request) (int, envelope) {
	h.t.Helper()

	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}
	resp, err := h.app.Test(req, -1)
	require.NoError(h.t, err)
	defer resp.Body.Close()

	var env envelope
	body, err := io.ReadAll(resp.Body)
	require.NoError(h.t, err)
	if len(body) > 0 {
		require.NoError(h.t, json.Unmarshal(body, &env), string(body))
	}
	return resp.StatusCode, env
}

func (h *harness) json(method, target string, body any) (int, envelope) {
	h.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(h.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return h.do(req)
}

func (h *harness) login() {
	h.t.Helper()

	code, _ := h.json(http.MethodPost, "/api/v1/users/register", map[string]any{
		"name": "Lee", "email": "lee@example.com", "password": "secret1",
	})
	require.Equal(h.t, http.StatusCreated, code)

	code, env := h.json(http.MethodPost, "/api/v1/users/login", map[string]any{
		"email": "lee@example.com", "password": "secret1",
	})
	require.Equal(h.t, http.StatusOK, code)

	var res domain.LoginResponse
	require.NoError(h.t, json.Unmarshal(env.Data, &res))
	h.token = res.Token
}

func (h *harness) dashboard() domain.DashboardResponse {
	h.t.Helper()

	code, env := h.json(http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(h.t, http.StatusOK, code, env.Error)

	var res domain.DashboardResponse
	require.NoError(h.t, json.Unmarshal(env.Data, &res))
	return res
}

func TestExpiringSoonFollowsTheClock(t *testing.T) {
	h := newHarness(t)
	h.login()

	code, env := h.json(http.MethodPost, "/api/v1/inventory", map[string]any{
		"item":        "Kiwi",
		"quantity":    4,
		"expiry_date": h.clock.Now().Add(10 * 24 * time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, code, env.Error)

	got := h.dashboard()
	assert.Equal(t, domain.InventorySummary{TotalItems: 1, ExpiringSoon: 0}, got.InventorySummary)
	assert.Equal(t, "lee@example.com", got.Profile.Email)

	h.clock.Advance(7 * 24 * time.Hour)

	got = h.dashboard()
	assert.Equal(t, domain.InventorySummary{TotalItems: 1, ExpiringSoon: 1}, got.InventorySummary)
}

func TestAuthIsRequired(t *testing.T) {
	h := newHarness(t)

	code, _ := h.json(http.MethodGet, "/api/v1/inventory", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	h.token = "garbage"
	code, _ = h.json(http.MethodGet, "/api/v1/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestUnknownFieldsAreRejected(t *testing.T) {
	h := newHarness(t)
	h.login()

	code, env := h.json(http.MethodPost, "/api/v1/inventory", map[string]any{
		"item": "Kiwi", "quantity": 1, "colour": "green",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Status)

	code, _ = h.json(http.MethodPost, "/api/v1/inventory", map[string]any{"item": "Kiwi", "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestDuplicateRegistrationConflicts(t *testing.T) {
	h := newHarness(t)
	h.login()

	code, _ := h.json(http.MethodPost, "/api/v1/users/register", map[string]any{
		"name": "Lee again", "email": "LEE@example.com", "password": "secret2",
	})
	assert.Equal(t, http.StatusConflict, code)
}

func TestNotFoundMapping(t *testing.T) {
	h := newHarness(t)
	h.login()

	code, _ := h.json(http.MethodDelete, "/api/v1/inventory/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = h.json(http.MethodGet, "/api/v1/food-items/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = h.json(http.MethodDelete, "/api/v1/food-log/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestSeedEndpoints(t *testing.T) {
	h := newHarness(t)

	_, env := h.json(http.MethodPost, "/api/v1/food-items/seed", nil)
	assert.JSONEq(t, `{"message":"Food items seeding completed."}`, string(env.Data))
	_, env = h.json(http.MethodPost, "/api/v1/food-items/seed", nil)
	assert.JSONEq(t, `{"message":"Food items already seeded."}`, string(env.Data))

	_, env = h.json(http.MethodPost, "/api/v1/resources/seed", nil)
	assert.JSONEq(t, `{"message":"Resources seeding completed."}`, string(env.Data))
	_, env = h.json(http.MethodPost, "/api/v1/resources/seed", nil)
	assert.JSONEq(t, `{"message":"Resources already seeded."}`, string(env.Data))
}

func TestReceiptUploadReconciles(t *testing.T) {
	h := newHarness(t)
	h.login()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "receipt.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads/receipt", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	code, env := h.do(req)
	require.Equal(t, http.StatusCreated, code, env.Error)

	var res domain.UploadReceiptResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, 2, res.SavedCount)
	assert.Len(t, res.ProposedItems, 2)

	code, env = h.json(http.MethodGet, "/api/v1/inventory", nil)
	require.Equal(t, http.StatusOK, code)
	var items []domain.InventoryItemResponse
	require.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Len(t, items, 2)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/uploads/receipt", nil)
	code, _ = h.do(req)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestChat(t *testing.T) {
	h := newHarness(t)
	h.login()

	code, env := h.json(http.MethodPost, "/api/v1/ai/chat", map[string]any{"message": "hi"})
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"reply":"hello"}`, string(env.Data))
}
