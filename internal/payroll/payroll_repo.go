package payroll

import (
	"context"
	"database/sql"

	"go-hrpay/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Payroll) error
	ExistsForPeriod(ctx context.Context, month, year int) (bool, error)
	FindAll(ctx context.Context, month, year, limit, offset int) ([]Payroll, int64, error)
	FindByID(ctx context.Context, id string) (*Payroll, error)
	Update(ctx context.Context, p *Payroll) error
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

func (r *repository) Create(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// ExistsForPeriod reports whether any payroll rows exist for the period.
// Soft-deleted rows still occupy the unique period index, so the check runs
// unscoped to see them.
func (r *repository) ExistsForPeriod(ctx context.Context, month, year int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Unscoped().
		Model(&Payroll{}).
		Where("month = ?", month).
		Where("year = ?", year).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindAll(ctx context.Context, month, year, limit, offset int) ([]Payroll, int64, error) {
	query := r.db.WithContext(ctx).Model(&Payroll{})
	if month > 0 {
		query = query.Where("month = ?", month)
	}
	if year > 0 {
		query = query.Where("year = ?", year)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payrolls []Payroll
	err := query.
		Order("year DESC, month DESC, created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&payrolls).Error
	return payrolls, total, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payroll, error) {
	var p Payroll
	err := r.db.WithContext(ctx).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Save(p).Error
}
