package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"tripplanner/internal/auth"
	apperrors "tripplanner/internal/errors"
	"tripplanner/internal/model"
)

func newRoleGateContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withClaims(c echo.Context, role model.PlatformRole) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{
		UserID: uuid.New(),
		Email:  "user@example.com",
		Role:   role,
	})
	c.Set("user", token)
}

func TestRequireRole_AdminPassesThrough(t *testing.T) {
	c, rec := newRoleGateContext(t)
	withClaims(c, model.PlatformRoleAdmin)

	nextCalled := false
	h := RequireRole(model.PlatformRoleAdmin)(func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	})

	assert.NoError(t, h(c))
	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_NonAdminForbidden(t *testing.T) {
	c, _ := newRoleGateContext(t)
	withClaims(c, model.PlatformRoleUser)

	nextCalled := false
	h := RequireRole(model.PlatformRoleAdmin)(func(c echo.Context) error {
		nextCalled = true
		return nil
	})

	err := h(c)

	assert.False(t, nextCalled)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
	body, ok := httpErr.Message.(apperrors.ErrorResponse)
	assert.True(t, ok)
	assert.Equal(t, "ADMIN_ONLY", body.Code)
}

func TestRequireRole_MissingTokenUnauthorized(t *testing.T) {
	c, _ := newRoleGateContext(t)

	h := RequireRole(model.PlatformRoleAdmin)(func(c echo.Context) error {
		t.Fatal("next handler must not run without a token")
		return nil
	})

	err := h(c)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRequireRole_ForeignClaimsUnauthorized(t *testing.T) {
	c, _ := newRoleGateContext(t)
	c.Set("user", jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": "admin"}))

	h := RequireRole(model.PlatformRoleAdmin)(func(c echo.Context) error {
		t.Fatal("next handler must not run with foreign claims")
		return nil
	})

	err := h(c)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
