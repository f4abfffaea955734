package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"tripplanner/internal/service"
)

// TravelRequirementHandler handles the one-per-trip requirements endpoints.
type TravelRequirementHandler struct {
	svc service.TravelRequirementService
}

// NewTravelRequirementHandler creates a travel requirement handler.
func NewTravelRequirementHandler(svc service.TravelRequirementService) *TravelRequirementHandler {
	return &TravelRequirementHandler{svc: svc}
}

// CreateTravelRequirementsRequest represents a requirements creation request.
type CreateTravelRequirementsRequest struct {
	TripID        uuid.UUID       `json:"trip_id" validate:"required"`
	Documentation json.RawMessage `json:"documentation,omitempty"`
	HealthInfo    json.RawMessage `json:"health_info,omitempty"`
	CurrencyInfo  json.RawMessage `json:"currency_info,omitempty"`
}

// UpdateTravelRequirementsRequest represents a partial requirements update.
type UpdateTravelRequirementsRequest struct {
	Documentation json.RawMessage `json:"documentation,omitempty"`
	HealthInfo    json.RawMessage `json:"health_info,omitempty"`
	CurrencyInfo  json.RawMessage `json:"currency_info,omitempty"`
}

// Create godoc
// @Summary Create a trip's travel requirements (owner only)
// @Tags travel-requirements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTravelRequirementsRequest true "Requirements data"
// @Success 201 {object} model.TravelRequirement
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /travel-requirements [post]
func (h *TravelRequirementHandler) Create(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CreateTravelRequirementsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	requirement, err := h.svc.Create(c.Request().Context(), service.CreateTravelRequirementsInput{
		TripID:        req.TripID,
		Documentation: req.Documentation,
		HealthInfo:    req.HealthInfo,
		CurrencyInfo:  req.CurrencyInfo,
	}, claims.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, requirement)
}

// FindByTrip godoc
// @Summary Get a trip's travel requirements (owner only)
// @Tags travel-requirements
// @Produce json
// @Security BearerAuth
// @Param tripId path string true "Trip ID"
// @Success 200 {object} model.TravelRequirement
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /travel-requirements/trip/{tripId} [get]
func (h *TravelRequirementHandler) FindByTrip(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	tripID, err := pathUUID(c, "tripId")
	if err != nil {
		return err
	}

	requirement, err := h.svc.FindByTrip(c.Request().Context(), tripID, claims.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, requirement)
}

// Update godoc
// @Summary Update a trip's travel requirements (owner only)
// @Tags travel-requirements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tripId path string true "Trip ID"
// @Param request body UpdateTravelRequirementsRequest true "Requirements patch"
// @Success 200 {object} model.TravelRequirement
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /travel-requirements/trip/{tripId} [put]
func (h *TravelRequirementHandler) Update(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	tripID, err := pathUUID(c, "tripId")
	if err != nil {
		return err
	}

	var req UpdateTravelRequirementsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	requirement, err := h.svc.Update(c.Request().Context(), tripID, service.UpdateTravelRequirementsInput{
		Documentation: req.Documentation,
		HealthInfo:    req.HealthInfo,
		CurrencyInfo:  req.CurrencyInfo,
	}, claims.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, requirement)
}

// Remove godoc
// @Summary Delete a trip's travel requirements (owner only)
// @Tags travel-requirements
// @Produce json
// @Security BearerAuth
// @Param tripId path string true "Trip ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /travel-requirements/trip/{tripId} [delete]
func (h *TravelRequirementHandler) Remove(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	tripID, err := pathUUID(c, "tripId")
	if err != nil {
		return err
	}

	if err := h.svc.Remove(c.Request().Context(), tripID, claims.UserID); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "travel requirements deleted successfully"})
}
