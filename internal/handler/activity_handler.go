package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"tripplanner/internal/service"
)

// ActivityHandler handles itinerary endpoints.
type ActivityHandler struct {
	svc service.ActivityService
}

// NewActivityHandler creates an activity handler.
func NewActivityHandler(svc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// CreateActivityRequest represents an activity creation request.
type CreateActivityRequest struct {
	Title      string           `json:"title" validate:"required"`
	TripID     uuid.UUID        `json:"trip_id" validate:"required"`
	LocationID *uuid.UUID       `json:"location_id,omitempty"`
	StartTime  *time.Time       `json:"start_time,omitempty"`
	EndTime    *time.Time       `json:"end_time,omitempty"`
	Cost       *decimal.Decimal `json:"cost,omitempty"`
	UserNotes  string           `json:"user_notes,omitempty"`
	Category   string           `json:"category,omitempty"`
}

// UpdateActivityRequest represents a partial activity update.
type UpdateActivityRequest struct {
	Title      *string          `json:"title,omitempty" validate:"omitempty,min=1"`
	LocationID *uuid.UUID       `json:"location_id,omitempty"`
	StartTime  *time.Time       `json:"start_time,omitempty"`
	EndTime    *time.Time       `json:"end_time,omitempty"`
	Cost       *decimal.Decimal `json:"cost,omitempty"`
	UserNotes  *string          `json:"user_notes,omitempty"`
	Category   *string          `json:"category,omitempty"`
}

// Create godoc
// @Summary Create an activity (owner or collaborator)
// @Tags activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateActivityRequest true "Activity data"
// @Success 201 {object} model.Activity
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /activities [post]
func (h *ActivityHandler) Create(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CreateActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := service.CreateActivityInput{
		TripID:     req.TripID,
		LocationID: req.LocationID,
		Title:      req.Title,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		UserNotes:  req.UserNotes,
		Category:   req.Category,
	}
	if req.Cost != nil {
		input.Cost = *req.Cost
	}

	activity, err := h.svc.Create(c.Request().Context(), input, claims.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, activity)
}

// ListByTrip godoc
// @Summary List a trip's activities (owner or collaborator)
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param tripId path string true "Trip ID"
// @Success 200 {array} model.Activity
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /activities/trip/{tripId} [get]
func (h *ActivityHandler) ListByTrip(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	tripID, err := pathUUID(c, "tripId")
	if err != nil {
		return err
	}

	activities, err := h.svc.FindByTrip(c.Request().Context(), tripID, claims.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, activities)
}

// GetOne godoc
// @Summary Get an activity by id (owner or collaborator)
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param id path string true "Activity ID"
// @Success 200 {object} model.Activity
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /activities/{id} [get]
func (h *ActivityHandler) GetOne(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	activity, err := h.svc.FindOne(c.Request().Context(), id, claims.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, activity)
}

// Update godoc
// @Summary Update an activity (owner or collaborator)
// @Tags activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Activity ID"
// @Param request body UpdateActivityRequest true "Activity patch"
// @Success 200 {object} model.Activity
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /activities/{id} [put]
func (h *ActivityHandler) Update(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	activity, err := h.svc.Update(c.Request().Context(), id, service.UpdateActivityInput{
		LocationID: req.LocationID,
		Title:      req.Title,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Cost:       req.Cost,
		UserNotes:  req.UserNotes,
		Category:   req.Category,
	}, claims.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, activity)
}

// Remove godoc
// @Summary Delete an activity (owner or collaborator)
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param id path string true "Activity ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /activities/{id} [delete]
func (h *ActivityHandler) Remove(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.svc.Remove(c.Request().Context(), id, claims.UserID); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "activity deleted successfully"})
}
