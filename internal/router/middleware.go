package router

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"tripplanner/internal/auth"
	apperrors "tripplanner/internal/errors"
	"tripplanner/internal/model"
)

// RequireRole gates a route on a fixed platform role. It runs after the JWT
// middleware and before any resource logic; routes without it accept any
// authenticated caller. The platform role is orthogonal to trip-level
// ownership and membership checks.
func RequireRole(role model.PlatformRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
			}
			if claims.Role != role {
				he := apperrors.MapErrorToHTTP(apperrors.ErrAdminOnly)
				return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
			}
			return next(c)
		}
	}
}
