package leave

import (
	"context"
	"errors"

	leaveerrors "go-hrpay/internal/leave/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	GetBalance(ctx context.Context, employeeID string, year int) (BalanceResponse, error)
}

type service struct {
	repo        Repository
	balanceRepo BalanceRepository
	logger      *zap.Logger
}

func NewService(repo Repository, balanceRepo BalanceRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{repo: repo, balanceRepo: balanceRepo, logger: l}
}

// SeedBalance builds the opening balance for an employee/year from the
// configured policies' annual allowances. Used when no balance row exists
// yet: a fresh year starts with the full entitlement.
func SeedBalance(policies []Policy, employeeID uuid.UUID, year int) *LeaveBalance {
	balance := &LeaveBalance{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Year:       year,
	}
	for _, p := range policies {
		switch p.Category {
		case CategoryCasual:
			balance.CasualRemaining += p.AnnualDaysAllowed
		case CategorySick:
			balance.SickRemaining += p.AnnualDaysAllowed
		}
	}
	return balance
}

func (s *service) GetBalance(ctx context.Context, employeeID string, year int) (BalanceResponse, error) {
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return BalanceResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	if year < 1000 || year > 9999 {
		return BalanceResponse{}, leaveerrors.ErrInvalidYear
	}

	balance, err := s.balanceRepo.FindByEmployeeAndYear(ctx, employeeID, year)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("get balance failed",
				zap.String("employee_id", employeeID),
				zap.Int("year", year),
				zap.Error(err),
			)
			return BalanceResponse{}, err
		}

		// No row yet: report the untouched entitlement for the year.
		policies, err := s.repo.FindAllPolicies(ctx)
		if err != nil {
			return BalanceResponse{}, err
		}
		balance = SeedBalance(policies, employeeUUID, year)
	}

	return BalanceResponse{
		EmployeeID:            balance.EmployeeID.String(),
		Year:                  balance.Year,
		CasualRemaining:       balance.CasualRemaining,
		SickRemaining:         balance.SickRemaining,
		UnpaidDaysAccumulated: balance.UnpaidDaysAccumulated,
	}, nil
}
