package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/toplustar/Management-tool/internal/errors"
	"github.com/toplustar/Management-tool/internal/model"
	"github.com/toplustar/Management-tool/internal/repository"
)

// Page caps for report listings.
const (
	selfReportLimit  = 30
	adminReportLimit = 100
)

// ReportService exposes daily report operations. Writes are owner-only: the
// requester id must match the report's user id, admins included.
type ReportService interface {
	ListMine(ctx context.Context, userID uuid.UUID) ([]model.DailyReport, error)
	Create(ctx context.Context, userID uuid.UUID, date time.Time, tasks []model.Task, notes string) (*model.DailyReport, error)
	Update(ctx context.Context, reportID, requesterID uuid.UUID, tasks []model.Task, notes string) (*model.DailyReport, error)
	Delete(ctx context.Context, reportID, requesterID uuid.UUID) error
	ListAllWithOwners(ctx context.Context) ([]model.AdminReport, error)
}

type reportService struct {
	reports repository.ReportRepository
	users   repository.UserRepository
}

// NewReportService creates a new report service.
func NewReportService(reports repository.ReportRepository, users repository.UserRepository) ReportService {
	return &reportService{reports: reports, users: users}
}

func (s *reportService) ListMine(ctx context.Context, userID uuid.UUID) ([]model.DailyReport, error) {
	return s.reports.ListByUser(ctx, userID, selfReportLimit)
}

// Create validates the task list, computes the derived total, and persists the
// report.
func (s *reportService) Create(ctx context.Context, userID uuid.UUID, date time.Time, tasks []model.Task, notes string) (*model.DailyReport, error) {
	cleaned, err := normalizeTasks(tasks)
	if err != nil {
		return nil, err
	}

	report := &model.DailyReport{
		UserID:     userID,
		Date:       date,
		Tasks:      cleaned,
		Notes:      notes,
		TotalHours: cleaned.TotalHours(),
	}

	if err := s.reports.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}
	return report, nil
}

// Update replaces tasks and notes and recomputes the total as a single write.
// Missing report wins over ownership: a nonexistent id is 404 even for a
// non-owner.
func (s *reportService) Update(ctx context.Context, reportID, requesterID uuid.UUID, tasks []model.Task, notes string) (*model.DailyReport, error) {
	report, err := s.findOwned(ctx, reportID, requesterID)
	if err != nil {
		return nil, err
	}

	cleaned, err := normalizeTasks(tasks)
	if err != nil {
		return nil, err
	}

	report.Tasks = cleaned
	report.Notes = notes
	report.TotalHours = cleaned.TotalHours()

	if err := s.reports.Save(ctx, report); err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}
	return report, nil
}

func (s *reportService) Delete(ctx context.Context, reportID, requesterID uuid.UUID) error {
	if _, err := s.findOwned(ctx, reportID, requesterID); err != nil {
		return err
	}
	if err := s.reports.Delete(ctx, reportID); err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	return nil
}

// ListAllWithOwners returns the admin view: most recent reports first, each
// denormalized with its owner's display fields. Reports whose owner was
// deleted are still returned, with a nil owner.
func (s *reportService) ListAllWithOwners(ctx context.Context) ([]model.AdminReport, error) {
	reports, err := s.reports.ListAll(ctx, adminReportLimit)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, r := range reports {
		if !seen[r.UserID] {
			seen[r.UserID] = true
			ids = append(ids, r.UserID)
		}
	}

	owners, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*model.ReportOwner, len(owners))
	for i := range owners {
		u := owners[i]
		byID[u.ID] = &model.ReportOwner{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
		}
	}

	out := make([]model.AdminReport, 0, len(reports))
	for _, r := range reports {
		out = append(out, model.AdminReport{
			DailyReport: r,
			User:        byID[r.UserID],
		})
	}
	return out, nil
}

func (s *reportService) findOwned(ctx context.Context, reportID, requesterID uuid.UUID) (*model.DailyReport, error) {
	report, err := s.reports.FindByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, err
	}
	if report.UserID != requesterID {
		return nil, apperrors.ErrNotOwner
	}
	return report, nil
}

// normalizeTasks validates the task list and defaults missing statuses.
func normalizeTasks(tasks []model.Task) (model.TaskList, error) {
	if len(tasks) == 0 {
		return nil, apperrors.ErrNoTasks
	}
	cleaned := make(model.TaskList, len(tasks))
	for i, t := range tasks {
		if t.Description == "" || t.HoursSpent < 0 {
			return nil, apperrors.ErrInvalidTask
		}
		if t.Status == "" {
			t.Status = model.TaskStatusInProgress
		}
		cleaned[i] = t
	}
	return cleaned, nil
}
