package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/toplustar/Management-tool/internal/auth"
	apperrors "github.com/toplustar/Management-tool/internal/errors"
	"github.com/toplustar/Management-tool/internal/service"
)

// MyInfoHandler handles self-service profile endpoints.
type MyInfoHandler struct {
	userService service.UserService
}

// NewMyInfoHandler creates a new my-info handler.
func NewMyInfoHandler(userService service.UserService) *MyInfoHandler {
	return &MyInfoHandler{userService: userService}
}

// UpdateProfileRequest represents a partial profile update. Omitted and empty
// fields leave the stored values untouched.
type UpdateProfileRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

// Get godoc
// @Summary Get the current user's profile
// @Tags myinfo
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /myinfo [get]
func (h *MyInfoHandler) Get(c echo.Context) error {
	user := auth.CurrentUser(c)
	profile, err := h.userService.GetUser(c.Request().Context(), user.ID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// Update godoc
// @Summary Update the current user's profile fields
// @Tags myinfo
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /myinfo [put]
func (h *MyInfoHandler) Update(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	user := auth.CurrentUser(c)
	updated, err := h.userService.UpdateProfile(c.Request().Context(), user.ID, service.ProfileUpdate{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Department: req.Department,
		Position:   req.Position,
	})
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, updated)
}
