package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPresent = "PRESENT"
	StatusHalfDay = "HALF_DAY"
	StatusAbsent  = "ABSENT"
	StatusOnLeave = "ON_LEAVE"
)

// Attendance holds at most one row per employee per calendar day.
type Attendance struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_attendance_employee_date,unique"`
	AttendanceDate time.Time  `gorm:"column:attendance_date;type:date;not null;index:idx_attendance_employee_date,unique"`
	ClockIn        time.Time  `gorm:"column:clock_in;type:timestamptz;not null"`
	ClockOut       *time.Time `gorm:"column:clock_out;type:timestamptz"`
	Status         string     `gorm:"type:varchar(20);not null;default:'PRESENT'"`
	// IsLate is classified once, at clock-in, against the attendance
	// policy in force. Payroll never re-derives it.
	IsLate    bool           `gorm:"not null;default:false"`
	Source    string         `gorm:"type:varchar(30);not null;default:'MANUAL'"`
	Notes     *string        `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Attendance) TableName() string {
	return "attendances"
}
