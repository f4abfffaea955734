package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"tripplanner/internal/service"
)

const dateLayout = "2006-01-02"

// TripHandler handles trip endpoints.
type TripHandler struct {
	svc service.TripService
}

// NewTripHandler creates a trip handler.
func NewTripHandler(svc service.TripService) *TripHandler {
	return &TripHandler{svc: svc}
}

// CreateTripRequest represents a trip creation request.
type CreateTripRequest struct {
	Title       string           `json:"title" validate:"required"`
	ImageURL    string           `json:"image_url,omitempty" validate:"omitempty,url"`
	StartDate   *string          `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string          `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TotalBudget *decimal.Decimal `json:"total_budget,omitempty"`
	IsPublic    bool             `json:"is_public"`
}

// UpdateTripRequest represents a partial trip update.
type UpdateTripRequest struct {
	Title       *string          `json:"title,omitempty" validate:"omitempty,min=1"`
	ImageURL    *string          `json:"image_url,omitempty" validate:"omitempty,url"`
	StartDate   *string          `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string          `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TotalBudget *decimal.Decimal `json:"total_budget,omitempty"`
	IsPublic    *bool            `json:"is_public,omitempty"`
}

// parseDate converts a validated YYYY-MM-DD string, nil stays nil.
func parseDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}

// Create godoc
// @Summary Create a trip owned by the caller
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTripRequest true "Trip data"
// @Success 201 {object} model.Trip
// @Failure 400 {object} errors.ErrorResponse
// @Router /trips [post]
func (h *TripHandler) Create(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := service.CreateTripInput{
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		StartDate: parseDate(req.StartDate),
		EndDate:   parseDate(req.EndDate),
		IsPublic:  req.IsPublic,
	}
	if req.TotalBudget != nil {
		input.TotalBudget = *req.TotalBudget
	}

	trip, err := h.svc.Create(c.Request().Context(), input, claims.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, trip)
}

// ListPublic godoc
// @Summary List all public trips
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Trip
// @Router /trips/public [get]
func (h *TripHandler) ListPublic(c echo.Context) error {
	trips, err := h.svc.ListPublic(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, trips)
}

// ListMine godoc
// @Summary List the caller's own trips
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Trip
// @Router /trips/my-trips [get]
func (h *TripHandler) ListMine(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	trips, err := h.svc.ListOwn(c.Request().Context(), claims.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, trips)
}

// GetOne godoc
// @Summary Get a trip by id
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} model.Trip
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /trips/{id} [get]
func (h *TripHandler) GetOne(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	trip, err := h.svc.GetOne(c.Request().Context(), id, claims.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, trip)
}

// Update godoc
// @Summary Update a trip (owner only)
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param request body UpdateTripRequest true "Trip patch"
// @Success 200 {object} model.Trip
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /trips/{id} [put]
func (h *TripHandler) Update(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateTripRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	trip, err := h.svc.Update(c.Request().Context(), id, service.UpdateTripInput{
		Title:       req.Title,
		ImageURL:    req.ImageURL,
		StartDate:   parseDate(req.StartDate),
		EndDate:     parseDate(req.EndDate),
		TotalBudget: req.TotalBudget,
		IsPublic:    req.IsPublic,
	}, claims.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, trip)
}

// Delete godoc
// @Summary Delete a trip (owner only)
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /trips/{id} [delete]
func (h *TripHandler) Delete(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), id, claims.UserID); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "trip deleted successfully"})
}
