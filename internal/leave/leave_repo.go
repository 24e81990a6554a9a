package leave

import (
	"context"
	"database/sql"
	"time"

	"go-hrpay/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindApprovedOverlapping(ctx context.Context, employeeID string, rangeStart, rangeEnd time.Time) ([]Leave, error)
	FindAllPolicies(ctx context.Context) ([]Policy, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.GormWithTx(r.db, tx)}
}

// FindApprovedOverlapping returns approved requests whose span touches
// [rangeStart, rangeEnd], in the ledger's canonical processing order.
func (r *repository) FindApprovedOverlapping(ctx context.Context, employeeID string, rangeStart, rangeEnd time.Time) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusApproved).
		Where("NOT (end_date < ? OR start_date > ?)", rangeStart, rangeEnd).
		Order("start_date ASC, created_at ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindAllPolicies(ctx context.Context) ([]Policy, error) {
	var policies []Policy
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&policies).Error
	return policies, err
}
