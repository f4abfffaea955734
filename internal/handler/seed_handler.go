package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "tripplanner/internal/errors"
	"tripplanner/internal/service"
)

// SeedHandler exposes a development endpoint that inserts demo users and
// trips. Registering an already-seeded user is not an error.
type SeedHandler struct {
	authService service.AuthService
	tripService service.TripService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(authService service.AuthService, tripService service.TripService) *SeedHandler {
	return &SeedHandler{authService: authService, tripService: tripService}
}

// SeedDemoResponse represents the seed response.
type SeedDemoResponse struct {
	Message string `json:"message"`
	Users   int    `json:"users"`
	Trips   int    `json:"trips"`
}

type demoUser struct {
	name     string
	email    string
	password string
}

var demoUsers = []demoUser{
	{name: "Alice Demo", email: "alice@example.com", password: "password123"},
	{name: "Bob Demo", email: "bob@example.com", password: "password123"},
}

// SeedDemo godoc
// @Summary Seed demo users and trips
// @Tags seed
// @Produce json
// @Success 200 {object} SeedDemoResponse
// @Failure 500 {object} map[string]string
// @Router /seed/demo [get]
func (h *SeedHandler) SeedDemo(c echo.Context) error {
	ctx := c.Request().Context()

	users := 0
	trips := 0
	for _, du := range demoUsers {
		user, err := h.authService.Register(ctx, du.name, du.email, du.password)
		if errors.Is(err, apperrors.ErrEmailTaken) {
			continue
		}
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
				"error": "failed to seed users: " + err.Error(),
			})
		}
		users++

		budget := decimal.NewFromInt(3000)
		if _, err := h.tripService.Create(ctx, service.CreateTripInput{
			Title:       "Sample trip for " + du.name,
			TotalBudget: budget,
			IsPublic:    users%2 == 1,
		}, user.ID); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
				"error": "failed to seed trips: " + err.Error(),
			})
		}
		trips++
	}

	return c.JSON(http.StatusOK, SeedDemoResponse{
		Message: "demo data seeded",
		Users:   users,
		Trips:   trips,
	})
}
