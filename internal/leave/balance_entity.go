package leave

import (
	"time"

	"github.com/google/uuid"
)

// LeaveBalance is the per-employee per-year balance row. Casual and sick
// only ever decrease within a year; unpaid only accumulates.
type LeaveBalance struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_balance_employee_year,unique"`
	Year       int       `gorm:"type:int;not null;index:idx_balance_employee_year,unique"`

	CasualRemaining       int `gorm:"type:int;not null;default:0"`
	SickRemaining         int `gorm:"type:int;not null;default:0"`
	UnpaidDaysAccumulated int `gorm:"type:int;not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}
