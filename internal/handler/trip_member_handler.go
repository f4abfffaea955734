package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"tripplanner/internal/model"
	"tripplanner/internal/service"
)

// TripMemberHandler handles roster endpoints under /trips/:tripId/members.
type TripMemberHandler struct {
	svc service.TripMemberService
}

// NewTripMemberHandler creates a trip member handler.
func NewTripMemberHandler(svc service.TripMemberService) *TripMemberHandler {
	return &TripMemberHandler{svc: svc}
}

// AddMemberRequest represents a roster addition request.
type AddMemberRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Role   string    `json:"role,omitempty"`
}

// UpdateMemberRoleRequest represents a roster role change request.
type UpdateMemberRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// Add godoc
// @Summary Add a member to a trip (owner only)
// @Tags trip-members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tripId path string true "Trip ID"
// @Param request body AddMemberRequest true "Member data"
// @Success 201 {object} model.TripMember
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /trips/{tripId}/members [post]
func (h *TripMemberHandler) Add(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	tripID, err := pathUUID(c, "tripId")
	if err != nil {
		return err
	}

	var req AddMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.svc.Add(c.Request().Context(), tripID, service.AddMemberInput{
		UserID: req.UserID,
		Role:   model.MemberRole(req.Role),
	}, claims.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, member)
}

// List godoc
// @Summary List a trip's members (owner only)
// @Tags trip-members
// @Produce json
// @Security BearerAuth
// @Param tripId path string true "Trip ID"
// @Success 200 {array} model.TripMember
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /trips/{tripId}/members [get]
func (h *TripMemberHandler) List(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	tripID, err := pathUUID(c, "tripId")
	if err != nil {
		return err
	}

	members, err := h.svc.List(c.Request().Context(), tripID, claims.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, members)
}

// UpdateRole godoc
// @Summary Change a member's role (owner only)
// @Tags trip-members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tripId path string true "Trip ID"
// @Param memberId path string true "Member ID"
// @Param request body UpdateMemberRoleRequest true "New role"
// @Success 200 {object} model.TripMember
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /trips/{tripId}/members/{memberId}/role [put]
func (h *TripMemberHandler) UpdateRole(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	tripID, err := pathUUID(c, "tripId")
	if err != nil {
		return err
	}
	memberID, err := pathUUID(c, "memberId")
	if err != nil {
		return err
	}

	var req UpdateMemberRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.svc.UpdateRole(c.Request().Context(), tripID, memberID, model.MemberRole(req.Role), claims.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, member)
}

// Remove godoc
// @Summary Remove a member from a trip (owner only)
// @Tags trip-members
// @Produce json
// @Security BearerAuth
// @Param tripId path string true "Trip ID"
// @Param memberId path string true "Member ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /trips/{tripId}/members/{memberId} [delete]
func (h *TripMemberHandler) Remove(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	tripID, err := pathUUID(c, "tripId")
	if err != nil {
		return err
	}
	memberID, err := pathUUID(c, "memberId")
	if err != nil {
		return err
	}

	if err := h.svc.Remove(c.Request().Context(), tripID, memberID, claims.UserID); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "member removed successfully"})
}
