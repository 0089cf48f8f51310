package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotelres/internal/auth"
	"hotelres/internal/handler"
	"hotelres/internal/model"
)

func newTestServer(t *testing.T) (*echo.Echo, *auth.JWTService) {
	t.Helper()
	jwtService := auth.NewJWTService("router-test-secret")

	e := echo.New()
	Register(e, Deps{JWTService: jwtService, Logger: zap.NewNop()}, Handlers{
		Auth:         handler.NewAuthHandler(nil),
		Availability: handler.NewAvailabilityHandler(nil, nil),
		Intent:       handler.NewIntentHandler(nil, nil),
		Payment:      handler.NewPaymentHandler(nil),
		Webhook:      handler.NewWebhookHandler(nil, zap.NewNop()),
	})
	return e, jwtService
}

func TestHealthz_ReportsMissingDatabase(t *testing.T) {
	e, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unavailable", resp.Database)
	assert.Equal(t, "ok", resp.Cache)
}

func TestMetricsEndpoint(t *testing.T) {
	e, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSecuredRoutes_RequireBearerToken(t *testing.T) {
	e, _ := newTestServer(t)

	for _, target := range []string{"/api/intents/abc", "/api/payments/HTL-abc/status"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
		assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
	}
}

func TestSecuredRoutes_AcceptAccessToken(t *testing.T) {
	e, jwtService := newTestServer(t)

	token, err := jwtService.GenerateAccessToken(auth.Identity{UserID: 4, Email: "guest@example.com", Role: model.RoleCustomer})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/intents/not-a-uuid", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// The handler rejects the id, so the token and claims were accepted.
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTENT_NOT_FOUND")
}

func TestSecuredRoutes_RejectForeignSignature(t *testing.T) {
	e, _ := newTestServer(t)

	other := auth.NewJWTService("another-secret")
	token, err := other.GenerateAccessToken(auth.Identity{UserID: 4, Role: model.RoleCustomer})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/intents/not-a-uuid", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
