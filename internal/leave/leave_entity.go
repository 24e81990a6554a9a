package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPendingSupervisor = "PENDING_SUPERVISOR"
	StatusPendingAdmin      = "PENDING_ADMIN"
	StatusApproved          = "APPROVED"
	StatusRejected          = "REJECTED"
)

type Leave struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leaves_employee_dates"`

	LeaveType string    `gorm:"type:varchar(60);not null"`
	StartDate time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	// DaysRequested is derived at submission time and informational only;
	// payroll recomputes working-day overlaps from the calendar.
	DaysRequested int    `gorm:"type:int;not null;default:1"`
	Reason        string `gorm:"type:text"`

	Status          string     `gorm:"type:varchar(30);not null;default:'PENDING_SUPERVISOR';index"`
	CreatedBy       uuid.UUID  `gorm:"type:uuid;not null"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectionReason *string    `gorm:"type:text"`

	CreatedAt  time.Time
	UpdatedAt  time.Time
	ApprovedAt *time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Leave) TableName() string {
	return "leaves"
}
