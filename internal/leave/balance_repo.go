package leave

import (
	"context"
	"database/sql"

	"go-hrpay/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=balance_repo.go -destination=mock/balance_repo_mock.go -package=mock
type BalanceRepository interface {
	WithTx(tx *sql.Tx) BalanceRepository
	FindByEmployeeAndYear(ctx context.Context, employeeID string, year int) (*LeaveBalance, error)
	Save(ctx context.Context, balance *LeaveBalance) error
}

type balanceRepository struct {
	db *gorm.DB
}

func NewBalanceRepository(db *gorm.DB) BalanceRepository {
	return &balanceRepository{db: db}
}

func (r *balanceRepository) WithTx(tx *sql.Tx) BalanceRepository {
	return &balanceRepository{db: connection.GormWithTx(r.db, tx)}
}

func (r *balanceRepository) FindByEmployeeAndYear(ctx context.Context, employeeID string, year int) (*LeaveBalance, error) {
	var balance LeaveBalance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("year = ?", year).
		First(&balance).Error
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

func (r *balanceRepository) Save(ctx context.Context, balance *LeaveBalance) error {
	return r.db.WithContext(ctx).Save(balance).Error
}
