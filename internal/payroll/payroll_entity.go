package payroll

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
)

// Payroll is one employee's payroll record for one (month, year). The
// unique index backs the "generated exactly once" guarantee. Monetary
// amounts are stored in minor currency units (cents), rounded at
// persistence time; the calculator itself keeps full precision.
type Payroll struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_payroll_employee_period,unique"`
	Month      int       `gorm:"type:int;not null;index:idx_payroll_employee_period,unique"`
	Year       int       `gorm:"type:int;not null;index:idx_payroll_employee_period,unique"`

	GrossSalary int64 `gorm:"type:bigint;not null;default:0"`
	DailyRate   int64 `gorm:"type:bigint;not null;default:0"`

	// Day counts feeding the deduction lines.
	WorkingDays     int `gorm:"type:int;not null;default:0"`
	PresentDays     int `gorm:"type:int;not null;default:0"`
	LateDays        int `gorm:"type:int;not null;default:0"`
	HalfDays        int `gorm:"type:int;not null;default:0"`
	AbsentDays      int `gorm:"type:int;not null;default:0"`
	CasualLeaveDays int `gorm:"type:int;not null;default:0"`
	SickLeaveDays   int `gorm:"type:int;not null;default:0"`
	UnpaidLeaveDays int `gorm:"type:int;not null;default:0"`
	LatePenaltyDays int `gorm:"type:int;not null;default:0"`

	// Itemized deductions.
	LatePenalty          int64 `gorm:"type:bigint;not null;default:0"`
	UnpaidLeaveDeduction int64 `gorm:"type:bigint;not null;default:0"`
	HalfDayDeduction     int64 `gorm:"type:bigint;not null;default:0"`
	AbsentDeduction      int64 `gorm:"type:bigint;not null;default:0"`
	TotalDeduction       int64 `gorm:"type:bigint;not null;default:0"`
	NetPayable           int64 `gorm:"type:bigint;not null;default:0"`

	Status     string     `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	CreatedBy  uuid.UUID  `gorm:"type:uuid;not null"`
	ApprovedBy *uuid.UUID `gorm:"type:uuid"`

	CreatedAt  time.Time
	UpdatedAt  time.Time
	ApprovedAt *time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Payroll) TableName() string {
	return "payrolls"
}
