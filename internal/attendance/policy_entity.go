package attendance

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Policy is the singleton attendance configuration. Office times are stored
// as HH:MM wall-clock strings; the engine combines them with a concrete date
// when classifying a clock-in.
type Policy struct {
	ID                          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OfficeStartTime             string    `gorm:"type:varchar(5);not null;default:'09:00'"`
	OfficeEndTime               string    `gorm:"type:varchar(5);not null;default:'17:00'"`
	GracePeriodMinutes          int       `gorm:"type:int;not null;default:15"`
	LateArrivalsPerDeductionDay int       `gorm:"type:int;not null;default:3"`
	CreatedAt                   time.Time
	UpdatedAt                   time.Time
}

func (Policy) TableName() string {
	return "attendance_policies"
}

// DefaultPolicy is used when no policy row has been configured yet.
func DefaultPolicy() Policy {
	return Policy{
		OfficeStartTime:             "09:00",
		OfficeEndTime:               "17:00",
		GracePeriodMinutes:          15,
		LateArrivalsPerDeductionDay: 3,
	}
}

func (p Policy) Validate() error {
	if _, err := parseClock(p.OfficeStartTime); err != nil {
		return fmt.Errorf("invalid office start time %q: %w", p.OfficeStartTime, err)
	}
	if _, err := parseClock(p.OfficeEndTime); err != nil {
		return fmt.Errorf("invalid office end time %q: %w", p.OfficeEndTime, err)
	}
	if p.GracePeriodMinutes < 0 || p.GracePeriodMinutes > 120 {
		return fmt.Errorf("grace period must be between 0 and 120 minutes, got %d", p.GracePeriodMinutes)
	}
	if p.LateArrivalsPerDeductionDay < 1 || p.LateArrivalsPerDeductionDay > 30 {
		return fmt.Errorf("late arrivals per deduction day must be between 1 and 30, got %d", p.LateArrivalsPerDeductionDay)
	}
	return nil
}

func parseClock(v string) (time.Time, error) {
	return time.Parse("15:04", v)
}

// LateCutoff returns the latest on-time clock-in instant for the given day.
func (p Policy) LateCutoff(day time.Time) time.Time {
	start, _ := parseClock(p.OfficeStartTime)
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		start.Hour(), start.Minute(), 0, 0, time.UTC,
	).Add(time.Duration(p.GracePeriodMinutes) * time.Minute)
}

// ScheduledHours returns the length of the office day.
func (p Policy) ScheduledHours() time.Duration {
	start, _ := parseClock(p.OfficeStartTime)
	end, _ := parseClock(p.OfficeEndTime)
	return end.Sub(start)
}
