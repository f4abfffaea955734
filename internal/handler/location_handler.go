package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tripplanner/internal/service"
)

// LocationHandler handles the shared location catalog endpoints.
type LocationHandler struct {
	svc service.LocationService
}

// NewLocationHandler creates a location handler.
func NewLocationHandler(svc service.LocationService) *LocationHandler {
	return &LocationHandler{svc: svc}
}

// CreateLocationRequest represents a location creation request.
type CreateLocationRequest struct {
	Name     string  `json:"name" validate:"required"`
	Address  string  `json:"address,omitempty"`
	Category string  `json:"category,omitempty"`
	Lat      float64 `json:"lat" validate:"min=-90,max=90"`
	Lng      float64 `json:"lng" validate:"min=-180,max=180"`
	Rating   float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	PlaceID  string  `json:"place_id,omitempty"`
}

// UpdateLocationRequest represents a partial location update.
type UpdateLocationRequest struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Address  *string  `json:"address,omitempty"`
	Category *string  `json:"category,omitempty"`
	Lat      *float64 `json:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Lng      *float64 `json:"lng,omitempty" validate:"omitempty,min=-180,max=180"`
	Rating   *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	PlaceID  *string  `json:"place_id,omitempty"`
}

// Create godoc
// @Summary Add a location to the shared catalog
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateLocationRequest true "Location data"
// @Success 201 {object} model.Location
// @Failure 400 {object} errors.ErrorResponse
// @Router /locations [post]
func (h *LocationHandler) Create(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CreateLocationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	location, err := h.svc.Create(c.Request().Context(), service.CreateLocationInput{
		Name:     req.Name,
		Address:  req.Address,
		Category: req.Category,
		Lat:      req.Lat,
		Lng:      req.Lng,
		Rating:   req.Rating,
		PlaceID:  req.PlaceID,
	}, claims.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, location)
}

// FindAll godoc
// @Summary List all catalog locations
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Location
// @Router /locations [get]
func (h *LocationHandler) FindAll(c echo.Context) error {
	locations, err := h.svc.FindAll(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, locations)
}

// FindOne godoc
// @Summary Get a location by id
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Success 200 {object} model.Location
// @Failure 404 {object} errors.ErrorResponse
// @Router /locations/{id} [get]
func (h *LocationHandler) FindOne(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	location, err := h.svc.FindOne(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, location)
}

// Update godoc
// @Summary Update a location (creator only)
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Param request body UpdateLocationRequest true "Location patch"
// @Success 200 {object} model.Location
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /locations/{id} [put]
func (h *LocationHandler) Update(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	location, err := h.svc.Update(c.Request().Context(), id, service.UpdateLocationInput{
		Name:     req.Name,
		Address:  req.Address,
		Category: req.Category,
		Lat:      req.Lat,
		Lng:      req.Lng,
		Rating:   req.Rating,
		PlaceID:  req.PlaceID,
	}, claims.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, location)
}

// Remove godoc
// @Summary Delete a location (creator only)
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /locations/{id} [delete]
func (h *LocationHandler) Remove(c echo.Context) error {
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
	return c.JSON(http.StatusOK, MessageResponse{Message: "location deleted successfully"})
}
