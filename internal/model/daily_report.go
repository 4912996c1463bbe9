package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task statuses.
const (
	TaskStatusCompleted  = "completed"
	TaskStatusInProgress = "in-progress"
	TaskStatusPending    = "pending"
)

// Task is a single unit of work within a daily report. Tasks have no identity
// of their own; they live embedded in their report in insertion order.
type Task struct {
	Description string  `json:"description"`
	HoursSpent  float64 `json:"hoursSpent"`
	Status      string  `json:"status"`
}

// TaskList is the embedded task sequence, stored as a JSON column.
type TaskList []Task

// TotalHours sums each task's hours. The sum is a plain floating-point sum
// with no rounding.
func (l TaskList) TotalHours() float64 {
	var total float64
	for _, t := range l {
		total += t.HoursSpent
	}
	return total
}

// DailyReport is one employee's work log for a calendar day.
//
// TotalHours is a cached derived value: it is recomputed from Tasks on every
// create and update, and is never settable independently.
type DailyReport struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID     uuid.UUID `json:"userId" gorm:"type:char(36);index;not null"`
	Date       time.Time `json:"date" gorm:"index;not null"`
	Tasks      TaskList  `json:"tasks" gorm:"serializer:json"`
	Notes      string    `json:"notes" gorm:"type:text"`
	TotalHours float64   `json:"totalHours"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (r *DailyReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// ReportOwner carries the display fields of a report's owning user for the
// admin listing. A nil owner means the user was deleted after submitting.
type ReportOwner struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
}

// AdminReport is a report denormalized with its owner's display fields.
type AdminReport struct {
	DailyReport
	User *ReportOwner `json:"user"`
}
