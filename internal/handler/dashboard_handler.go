package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/toplustar/Management-tool/internal/auth"
	"github.com/toplustar/Management-tool/internal/service"
)

// DashboardHandler serves the per-user aggregate view.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats godoc
// @Summary Get the current user's monthly and daily totals
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.DashboardStats
// @Failure 401 {object} errors.ErrorResponse
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	user := auth.CurrentUser(c)
	stats, err := h.dashboardService.Stats(c.Request().Context(), user.ID, time.Now())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
