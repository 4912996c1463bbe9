package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/toplustar/Management-tool/internal/repository"
)

// DashboardStats is the per-user aggregate view. Field names follow the wire
// format the client renders.
type DashboardStats struct {
	TotalHoursThisMonth  float64 `json:"totalHoursThisMonth"`
	ReportsThisMonth     int     `json:"reportsThisMonth"`
	TodayReportSubmitted bool    `json:"todayReportSubmitted"`
	TodayHours           float64 `json:"todayHours"`
}

// DashboardService computes read-side aggregates. Nothing is persisted: every
// call recomputes from the report store, trading compute for always-fresh
// numbers at this data volume.
type DashboardService interface {
	Stats(ctx context.Context, userID uuid.UUID, now time.Time) (*DashboardStats, error)
}

type dashboardService struct {
	reports repository.ReportRepository
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(reports repository.ReportRepository) DashboardService {
	return &dashboardService{reports: reports}
}

// Stats aggregates the user's reports for the current month and day, both in
// server-local time. The "today" lookup uses date >= midnight, so a
// future-dated report also counts as today's; the boundary is kept as-is.
func (s *dashboardService) Stats(ctx context.Context, userID uuid.UUID, now time.Time) (*DashboardStats, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	monthly, err := s.reports.ListByUserSince(ctx, userID, monthStart)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{ReportsThisMonth: len(monthly)}
	for _, r := range monthly {
		stats.TotalHoursThisMonth += r.TotalHours
	}

	todayReport, err := s.reports.FirstByUserSince(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if todayReport != nil {
		stats.TodayReportSubmitted = true
		stats.TodayHours = todayReport.TotalHours
	}

	return stats, nil
}
