package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math"
	"time"

	"go-hrpay/internal/attendance"
	"go-hrpay/internal/calendar"
	"go-hrpay/internal/employee"
	"go-hrpay/internal/events"
	"go-hrpay/internal/leave"
	"go-hrpay/internal/messaging/kafka"
	payrollerrors "go-hrpay/internal/payroll/errors"
	"go-hrpay/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, actorID string, req GeneratePayrollRequest) (GeneratePayrollResponse, error)
	GetAll(ctx context.Context, month, year, page, limit int) ([]PayrollResponse, int64, error)
	GetByID(ctx context.Context, id string) (PayrollResponse, error)
	Approve(ctx context.Context, actorID, id string) (PayrollResponse, error)
}

type service struct {
	db             *sql.DB
	repo           Repository
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
	policyRepo     attendance.PolicyRepository
	leaveRepo      leave.Repository
	balanceRepo    leave.BalanceRepository
	holidays       calendar.Service
	outbox         kafka.OutboxRepository
	logger         *zap.Logger
	now            func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	attendanceRepo attendance.Repository,
	policyRepo attendance.PolicyRepository,
	leaveRepo leave.Repository,
	balanceRepo leave.BalanceRepository,
	holidays calendar.Service,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:             db,
		repo:           repo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		policyRepo:     policyRepo,
		leaveRepo:      leaveRepo,
		balanceRepo:    balanceRepo,
		holidays:       holidays,
		outbox:         outboxRepo,
		logger:         l,
		now:            time.Now,
	}
}

// Generate runs the monthly payroll batch. The whole run is one
// transaction: either the period's records, balance updates and the outbox
// event land together or none of them do. Employees whose inputs cannot be
// calculated are reported as failures without sinking the batch; storage
// errors abort it.
func (s *service) Generate(
	ctx context.Context,
	actorID string,
	req GeneratePayrollRequest,
) (GeneratePayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return GeneratePayrollResponse{}, payrollerrors.ErrInvalidActorID
	}
	if req.Month < 1 || req.Month > 12 {
		return GeneratePayrollResponse{}, payrollerrors.ErrInvalidMonth
	}
	if req.Year < 1000 || req.Year > 9999 {
		return GeneratePayrollResponse{}, payrollerrors.ErrInvalidYear
	}
	month := time.Month(req.Month)

	policy, err := s.policyRepo.Get(ctx)
	if err != nil {
		return GeneratePayrollResponse{}, err
	}
	if err := policy.Validate(); err != nil {
		s.logger.Error("attendance policy rejected",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return GeneratePayrollResponse{}, payrollerrors.ErrInvalidAttendancePolicy
	}

	holidaySet, err := s.holidays.HolidaySetForYear(ctx, req.Year)
	if err != nil {
		return GeneratePayrollResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("generate payroll begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return GeneratePayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ExistsForPeriod(ctx, req.Month, req.Year)
	if err != nil {
		return GeneratePayrollResponse{}, err
	}
	if exists {
		return GeneratePayrollResponse{}, payrollerrors.ErrAlreadyGenerated
	}

	employees, err := s.employeeRepo.FindActive(ctx)
	if err != nil {
		return GeneratePayrollResponse{}, err
	}
	if len(employees) == 0 {
		return GeneratePayrollResponse{}, payrollerrors.ErrNoActiveEmployees
	}

	leaveTx := s.leaveRepo.WithTx(tx)
	balanceTx := s.balanceRepo.WithTx(tx)
	attendanceTx := s.attendanceRepo.WithTx(tx)

	policies, err := leaveTx.FindAllPolicies(ctx)
	if err != nil {
		return GeneratePayrollResponse{}, err
	}
	categories := leave.NewCategoryIndex(policies)

	monthStart, monthEnd := calendar.MonthBounds(month, req.Year)

	out := GeneratePayrollResponse{
		Month:              req.Month,
		Year:               req.Year,
		EmployeesProcessed: len(employees),
	}

	for _, emp := range employees {
		records, err := attendanceTx.FindByEmployeeAndRange(ctx, emp.ID.String(), monthStart, monthEnd)
		if err != nil {
			return GeneratePayrollResponse{}, err
		}

		requests, err := leaveTx.FindApprovedOverlapping(ctx, emp.ID.String(), monthStart, monthEnd)
		if err != nil {
			return GeneratePayrollResponse{}, err
		}

		balanceRow, err := balanceTx.FindByEmployeeAndYear(ctx, emp.ID.String(), req.Year)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return GeneratePayrollResponse{}, err
			}
			balanceRow = leave.SeedBalance(policies, emp.ID, req.Year)
		}

		result, err := Calculate(Inputs{
			Employee:   emp,
			Month:      month,
			Year:       req.Year,
			Holidays:   holidaySet,
			Records:    records,
			Requests:   requests,
			Categories: categories,
			PriorBalance: leave.Balance{
				CasualRemaining:       balanceRow.CasualRemaining,
				SickRemaining:         balanceRow.SickRemaining,
				UnpaidDaysAccumulated: balanceRow.UnpaidDaysAccumulated,
			},
			Policy: policy,
		})
		if err != nil {
			s.logger.Warn("payroll calculation skipped",
				zap.String("request_id", rid),
				zap.String("employee_id", emp.ID.String()),
				zap.Error(err),
			)
			out.Failures = append(out.Failures, GenerationFailure{
				EmployeeID:   emp.ID.String(),
				EmployeeName: emp.FullName,
				Reason:       err.Error(),
			})
			continue
		}

		record := buildRecord(emp, req.Month, req.Year, actorUUID, result)
		if err := qtx.Create(ctx, record); err != nil {
			s.logger.Error("payroll persist failed",
				zap.String("request_id", rid),
				zap.String("employee_id", emp.ID.String()),
				zap.Error(err),
			)
			return GeneratePayrollResponse{}, err
		}

		balanceRow.CasualRemaining = result.Consumption.Balance.CasualRemaining
		balanceRow.SickRemaining = result.Consumption.Balance.SickRemaining
		balanceRow.UnpaidDaysAccumulated = result.Consumption.Balance.UnpaidDaysAccumulated
		if err := balanceTx.Save(ctx, balanceRow); err != nil {
			return GeneratePayrollResponse{}, err
		}

		out.GeneratedCount++
		out.Records = append(out.Records, mapToResponse(*record))
	}

	if s.outbox != nil && out.GeneratedCount > 0 {
		runID := uuid.New()
		event := events.PayrollGeneratedEvent{
			EventType:     "payroll_generated",
			RequestID:     rid,
			RunID:         runID.String(),
			Month:         req.Month,
			Year:          req.Year,
			EmployeeCount: out.GeneratedCount,
			GeneratedBy:   actorID,
			OccurredAt:    s.now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return GeneratePayrollResponse{}, err
		}

		outboxTx := s.outbox.WithTx(tx)
		if err := outboxTx.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "payroll_run",
			AggregateID:   runID.String(),
			EventType:     event.EventType,
			Topic:         events.PayrollGeneratedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("generate payroll outbox persist failed",
				zap.String("request_id", rid),
				zap.Error(err),
			)
			return GeneratePayrollResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return GeneratePayrollResponse{}, err
	}

	s.logger.Info("payroll batch generated",
		zap.String("request_id", rid),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
		zap.Int("generated", out.GeneratedCount),
		zap.Int("failed", len(out.Failures)),
	)
	return out, nil
}

func (s *service) GetAll(
	ctx context.Context,
	month, year, page, limit int,
) ([]PayrollResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	payrolls, total, err := s.repo.FindAll(ctx, month, year, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	return mapToListResponse(payrolls), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
	}

	payroll, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
		}
		return PayrollResponse{}, err
	}
	return mapToResponse(*payroll), nil
}

// Approve moves a PENDING record to APPROVED and queues the approval event.
func (s *service) Approve(ctx context.Context, actorID, id string) (PayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(id); err != nil {
		return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payroll, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
		}
		return PayrollResponse{}, err
	}
	if payroll.Status == StatusApproved {
		return PayrollResponse{}, payrollerrors.ErrAlreadyApproved
	}

	approvedAt := s.now().UTC()
	payroll.Status = StatusApproved
	payroll.ApprovedBy = &actorUUID
	payroll.ApprovedAt = &approvedAt

	if err := qtx.Update(ctx, payroll); err != nil {
		s.logger.Error("approve payroll persist failed",
			zap.String("request_id", rid),
			zap.String("payroll_id", id),
			zap.Error(err),
		)
		return PayrollResponse{}, err
	}

	if s.outbox != nil {
		event := events.PayrollApprovedEvent{
			EventType:  "payroll_approved",
			RequestID:  rid,
			PayrollID:  payroll.ID.String(),
			EmployeeID: payroll.EmployeeID.String(),
			ApprovedBy: actorID,
			OccurredAt: approvedAt,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return PayrollResponse{}, err
		}

		outboxTx := s.outbox.WithTx(tx)
		if err := outboxTx.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "payroll",
			AggregateID:   payroll.ID.String(),
			EventType:     event.EventType,
			Topic:         events.PayrollApprovedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			return PayrollResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	s.logger.Info("payroll approved",
		zap.String("request_id", rid),
		zap.String("payroll_id", id),
	)
	return mapToResponse(*payroll), nil
}

// buildRecord maps a full-precision calculation onto the stored record,
// rounding every monetary line to whole cents at this boundary only.
func buildRecord(emp employee.Employee, month, year int, actor uuid.UUID, res Result) *Payroll {
	return &Payroll{
		ID:         uuid.New(),
		EmployeeID: emp.ID,
		Month:      month,
		Year:       year,

		GrossSalary: emp.GrossSalary,
		DailyRate:   roundCents(res.DailyRate),

		WorkingDays:     res.WorkingDays,
		PresentDays:     res.Summary.PresentDays,
		LateDays:        res.Summary.LateDays,
		HalfDays:        res.Summary.HalfDays,
		AbsentDays:      res.AbsentDays,
		CasualLeaveDays: res.Consumption.CasualTaken,
		SickLeaveDays:   res.Consumption.SickTaken,
		UnpaidLeaveDays: res.Consumption.UnpaidDays,
		LatePenaltyDays: res.LatePenaltyDays,

		LatePenalty:          roundCents(res.LatePenalty),
		UnpaidLeaveDeduction: roundCents(res.UnpaidLeaveDeduction),
		HalfDayDeduction:     roundCents(res.HalfDayDeduction),
		AbsentDeduction:      roundCents(res.AbsentDeduction),
		TotalDeduction:       roundCents(res.TotalDeduction),
		NetPayable:           roundCents(res.NetPayable),

		Status:    StatusPending,
		CreatedBy: actor,
	}
}

func roundCents(v float64) int64 {
	return int64(math.Round(v))
}
