package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/toplustar/Management-tool/internal/model"
)

// ReportRepository defines daily report persistence operations.
type ReportRepository interface {
	Create(ctx context.Context, report *model.DailyReport) error
	Save(ctx context.Context, report *model.DailyReport) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.DailyReport, error)
	// ListByUser returns the user's reports, most recent date first, capped at limit.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.DailyReport, error)
	// ListAll returns everyone's reports, most recent date first, capped at limit.
	ListAll(ctx context.Context, limit int) ([]model.DailyReport, error)
	// ListByUserSince returns the user's reports dated at or after since.
	ListByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]model.DailyReport, error)
	// FirstByUserSince returns one report dated at or after since, or nil if none.
	FirstByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) (*model.DailyReport, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository builds a GORM-backed report repository.
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *model.DailyReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) Save(ctx context.Context, report *model.DailyReport) error {
	return r.db.WithContext(ctx).Save(report).Error
}

func (r *reportRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.DailyReport, error) {
	var report model.DailyReport
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.DailyReport, error) {
	var reports []model.DailyReport
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) ListAll(ctx context.Context, limit int) ([]model.DailyReport, error) {
	var reports []model.DailyReport
	if err := r.db.WithContext(ctx).
		Order("date DESC").
		Limit(limit).
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) ListByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]model.DailyReport, error) {
	var reports []model.DailyReport
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) FirstByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) (*model.DailyReport, error) {
	var report model.DailyReport
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.DailyReport{}).Error
}
