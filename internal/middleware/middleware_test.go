package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Food-Sustainability-Backend/internal/middleware"
	"Food-Sustainability-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) (*fiber.App, jwt.JWTService) {
	t.Helper()

	jwtService, err := jwt.NewJWTService("mw-secret", time.Hour)
	require.NoError(t, err)

	app := fiber.New()
	mw := middleware.NewMiddleware([]string{"*"})
	app.Get("/whoami", mw.AuthMiddleware(jwtService), func(c *fiber.Ctx) error {
		return c.SendString(middleware.CurrentUser(c).UserID.String())
	})
	return app, jwtService
}

func call(t *testing.T, app *fiber.App, header string) (int, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestAuthMiddleware(t *testing.T) {
	app, jwtService := newApp(t)

	userID := uuid.New()
	token, err := jwtService.GenerateTokenUser(userID.String())
	require.NoError(t, err)

	code, body := call(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, userID.String(), body)

	code, _ = call(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = call(t, app, "Token "+token)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = call(t, app, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, code)
}
