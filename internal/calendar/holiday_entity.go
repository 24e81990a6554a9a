package calendar

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategoryGovernment = "GOVERNMENT"
	CategoryWeekend    = "WEEKEND"
	CategoryCompany    = "COMPANY"
)

type Holiday struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(120);not null"`
	HolidayDate time.Time `gorm:"column:holiday_date;type:date;not null;index"`
	Category    string    `gorm:"type:varchar(20);not null;default:'GOVERNMENT'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Holiday) TableName() string {
	return "holidays"
}
