package leave

import (
	"time"

	"github.com/google/uuid"
)

// Policy is the per-leave-type configuration. Category is set when the
// policy is created (ParseCategory provides the default from the name).
type Policy struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name              string    `gorm:"type:varchar(60);not null;uniqueIndex"`
	Category          Category  `gorm:"type:varchar(20);not null;default:'OTHER'"`
	AnnualDaysAllowed int       `gorm:"type:int;not null;default:0"`
	// ImpactsSalaryWhenExceeded mirrors the admin configuration screen;
	// the ledger itself always spills exceeded casual/sick days to unpaid.
	ImpactsSalaryWhenExceeded bool `gorm:"not null;default:true"`
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

func (Policy) TableName() string {
	return "leave_policies"
}
