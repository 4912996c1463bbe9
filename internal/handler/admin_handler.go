package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "github.com/toplustar/Management-tool/internal/errors"
	"github.com/toplustar/Management-tool/internal/service"
)

// AdminHandler handles user administration and the all-reports view.
type AdminHandler struct {
	userService   service.UserService
	reportService service.ReportService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(userService service.UserService, reportService service.ReportService) *AdminHandler {
	return &AdminHandler{userService: userService, reportService: reportService}
}

// AdminUpdateUserRequest represents an admin partial update of a user. String
// fields follow the same empty-means-unchanged rule as the profile update;
// IsActive must be sent explicitly to change.
type AdminUpdateUserRequest struct {
	Email      string `json:"email" validate:"omitempty,email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Role       string `json:"role" validate:"omitempty,oneof=employee admin"`
	IsActive   *bool  `json:"isActive"`
}

// ListUsers godoc
// @Summary List all users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary Get one user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/users/{id} [get]
func (h *AdminHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid user id",
			Code:  "VALIDATION_ERROR",
		})
	}
	user, err := h.userService.GetUser(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Update any field of a user, including role and active state
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body AdminUpdateUserRequest true "Fields to change"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid user id",
			Code:  "VALIDATION_ERROR",
		})
	}

	var req AdminUpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	user, err := h.userService.AdminUpdateUser(c.Request().Context(), id, service.AdminUserUpdate{
		ProfileUpdate: service.ProfileUpdate{
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			Phone:      req.Phone,
			Department: req.Department,
			Position:   req.Position,
		},
		Email:    req.Email,
		Role:     req.Role,
		IsActive: req.IsActive,
	})
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary Delete a user account
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid user id",
			Code:  "VALIDATION_ERROR",
		})
	}
	if err := h.userService.DeleteUser(c.Request().Context(), id); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "User deleted"})
}

// ListReports godoc
// @Summary List everyone's reports with owner display fields
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.AdminReport
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/reports [get]
func (h *AdminHandler) ListReports(c echo.Context) error {
	reports, err := h.reportService.ListAllWithOwners(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, reports)
}
