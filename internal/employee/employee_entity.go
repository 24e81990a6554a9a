package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

type Employee struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName string    `gorm:"column:full_name;type:varchar(120);not null"`
	Email    string    `gorm:"uniqueIndex;type:varchar(160);not null"`
	// GrossSalary is the monthly gross in minor currency units (cents).
	GrossSalary      int64     `gorm:"type:bigint;not null;default:0"`
	EmploymentStatus string    `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	HireDate         time.Time `gorm:"type:date"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
