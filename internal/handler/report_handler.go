package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/toplustar/Management-tool/internal/auth"
	apperrors "github.com/toplustar/Management-tool/internal/errors"
	"github.com/toplustar/Management-tool/internal/model"
	"github.com/toplustar/Management-tool/internal/service"
)

// ReportHandler handles the daily report endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// TaskRequest represents one task within a report payload.
type TaskRequest struct {
	Description string  `json:"description" validate:"required"`
	HoursSpent  float64 `json:"hoursSpent" validate:"gte=0"`
	Status      string  `json:"status" validate:"omitempty,oneof=completed in-progress pending"`
}

// CreateReportRequest represents a report creation payload.
type CreateReportRequest struct {
	Date  string        `json:"date" validate:"required"`
	Tasks []TaskRequest `json:"tasks" validate:"required,min=1,dive"`
	Notes string        `json:"notes"`
}

// UpdateReportRequest represents a report update payload. Date is fixed at
// creation; only tasks and notes are replaceable.
type UpdateReportRequest struct {
	Tasks []TaskRequest `json:"tasks" validate:"required,min=1,dive"`
	Notes string        `json:"notes"`
}

func toTasks(reqs []TaskRequest) []model.Task {
	tasks := make([]model.Task, len(reqs))
	for i, r := range reqs {
		tasks[i] = model.Task{
			Description: r.Description,
			HoursSpent:  r.HoursSpent,
			Status:      r.Status,
		}
	}
	return tasks
}

// parseReportDate accepts both the client's plain calendar date and a full
// RFC3339 timestamp.
func parseReportDate(s string) (time.Time, error) {
	if d, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, s)
}

// ListMine godoc
// @Summary List the current user's reports, most recent first
// @Tags dailyreport
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.DailyReport
// @Failure 401 {object} errors.ErrorResponse
// @Router /dailyreport [get]
func (h *ReportHandler) ListMine(c echo.Context) error {
	user := auth.CurrentUser(c)
	reports, err := h.reportService.ListMine(c.Request().Context(), user.ID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, reports)
}

// Create godoc
// @Summary Submit a daily report
// @Tags dailyreport
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateReportRequest true "Report data"
// @Success 201 {object} model.DailyReport
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /dailyreport [post]
func (h *ReportHandler) Create(c echo.Context) error {
	var req CreateReportRequest
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

	date, err := parseReportDate(req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid date",
			Code:  "VALIDATION_ERROR",
		})
	}

	user := auth.CurrentUser(c)
	report, err := h.reportService.Create(c.Request().Context(), user.ID, date, toTasks(req.Tasks), req.Notes)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, report)
}

// Update godoc
// @Summary Update an owned report's tasks and notes
// @Tags dailyreport
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body UpdateReportRequest true "Report data"
// @Success 200 {object} model.DailyReport
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /dailyreport/{id} [put]
func (h *ReportHandler) Update(c echo.Context) error {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid report id",
			Code:  "VALIDATION_ERROR",
		})
	}

	var req UpdateReportRequest
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

	user := auth.CurrentUser(c)
	report, err := h.reportService.Update(c.Request().Context(), reportID, user.ID, toTasks(req.Tasks), req.Notes)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, report)
}

// Delete godoc
// @Summary Delete an owned report
// @Tags dailyreport
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /dailyreport/{id} [delete]
func (h *ReportHandler) Delete(c echo.Context) error {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid report id",
			Code:  "VALIDATION_ERROR",
		})
	}

	user := auth.CurrentUser(c)
	if err := h.reportService.Delete(c.Request().Context(), reportID, user.ID); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Report deleted"})
}
