package attendance

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=policy_repo.go -destination=mock/policy_repo_mock.go -package=mock
type PolicyRepository interface {
	Get(ctx context.Context) (Policy, error)
}

type policyRepository struct {
	db *gorm.DB
}

func NewPolicyRepository(db *gorm.DB) PolicyRepository {
	return &policyRepository{db: db}
}

// Get returns the singleton policy row, or the built-in default when none
// has been configured yet.
func (r *policyRepository) Get(ctx context.Context) (Policy, error) {
	var p Policy
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DefaultPolicy(), nil
		}
		return Policy{}, err
	}
	return p, nil
}
