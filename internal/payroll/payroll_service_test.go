package payroll

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-hrpay/internal/attendance"
	"go-hrpay/internal/calendar"
	"go-hrpay/internal/employee"
	"go-hrpay/internal/leave"
	"go-hrpay/internal/messaging/kafka"
	payrollerrors "go-hrpay/internal/payroll/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePayrollRepo struct {
	exists  bool
	created []Payroll
	byID    map[string]*Payroll
	updated []Payroll
}

func (f *fakePayrollRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakePayrollRepo) Create(ctx context.Context, p *Payroll) error {
	f.created = append(f.created, *p)
	return nil
}
func (f *fakePayrollRepo) ExistsForPeriod(ctx context.Context, month, year int) (bool, error) {
	return f.exists, nil
}
func (f *fakePayrollRepo) FindAll(ctx context.Context, month, year, limit, offset int) ([]Payroll, int64, error) {
	return nil, 0, nil
}
func (f *fakePayrollRepo) FindByID(ctx context.Context, id string) (*Payroll, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *p
	return &copied, nil
}
func (f *fakePayrollRepo) Update(ctx context.Context, p *Payroll) error {
	f.updated = append(f.updated, *p)
	return nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) FindActive(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}
func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}

type fakeAttendanceRepo struct {
	byEmployee map[string][]attendance.Attendance
}

func (f *fakeAttendanceRepo) WithTx(tx *sql.Tx) attendance.Repository { return f }
func (f *fakeAttendanceRepo) Create(ctx context.Context, a *attendance.Attendance) error {
	return nil
}
func (f *fakeAttendanceRepo) Update(ctx context.Context, a *attendance.Attendance) error {
	return nil
}
func (f *fakeAttendanceRepo) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeAttendanceRepo) FindByEmployeeAndRange(ctx context.Context, employeeID string, rangeStart, rangeEnd time.Time) ([]attendance.Attendance, error) {
	return f.byEmployee[employeeID], nil
}

type fakeAttendancePolicyRepo struct {
	policy attendance.Policy
}

func (f *fakeAttendancePolicyRepo) Get(ctx context.Context) (attendance.Policy, error) {
	return f.policy, nil
}

type fakeLeaveRepo struct {
	byEmployee map[string][]leave.Leave
	policies   []leave.Policy
}

func (f *fakeLeaveRepo) WithTx(tx *sql.Tx) leave.Repository { return f }
func (f *fakeLeaveRepo) FindApprovedOverlapping(ctx context.Context, employeeID string, rangeStart, rangeEnd time.Time) ([]leave.Leave, error) {
	return f.byEmployee[employeeID], nil
}
func (f *fakeLeaveRepo) FindAllPolicies(ctx context.Context) ([]leave.Policy, error) {
	return f.policies, nil
}

type fakeBalanceRepo struct {
	byEmployee map[string]*leave.LeaveBalance
	saved      []leave.LeaveBalance
}

func (f *fakeBalanceRepo) WithTx(tx *sql.Tx) leave.BalanceRepository { return f }
func (f *fakeBalanceRepo) FindByEmployeeAndYear(ctx context.Context, employeeID string, year int) (*leave.LeaveBalance, error) {
	b, ok := f.byEmployee[employeeID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *b
	return &copied, nil
}
func (f *fakeBalanceRepo) Save(ctx context.Context, balance *leave.LeaveBalance) error {
	f.saved = append(f.saved, *balance)
	return nil
}

type fakeHolidayService struct {
	set calendar.HolidaySet
}

func (f *fakeHolidayService) HolidaySetForYear(ctx context.Context, year int) (calendar.HolidaySet, error) {
	return f.set, nil
}
func (f *fakeHolidayService) GetAll(ctx context.Context, year int) ([]calendar.HolidayResponse, error) {
	return nil, nil
}

type fakeOutboxRepo struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutboxRepo) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutboxRepo) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}
func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error { return nil }
func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type generateFixture struct {
	repo        *fakePayrollRepo
	employees   *fakeEmployeeRepo
	attendances *fakeAttendanceRepo
	leaves      *fakeLeaveRepo
	balances    *fakeBalanceRepo
	holidays    *fakeHolidayService
	outbox      *fakeOutboxRepo
	svc         Service
	mock        sqlmock.Sqlmock
	done        func()
}

func newGenerateFixture(t *testing.T) *generateFixture {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	f := &generateFixture{
		repo:        &fakePayrollRepo{byID: map[string]*Payroll{}},
		employees:   &fakeEmployeeRepo{},
		attendances: &fakeAttendanceRepo{byEmployee: map[string][]attendance.Attendance{}},
		leaves:      &fakeLeaveRepo{byEmployee: map[string][]leave.Leave{}},
		balances:    &fakeBalanceRepo{byEmployee: map[string]*leave.LeaveBalance{}},
		holidays:    &fakeHolidayService{set: calendar.HolidaySet{}},
		outbox:      &fakeOutboxRepo{},
		mock:        mock,
		done:        func() { db.Close() },
	}
	f.leaves.policies = []leave.Policy{
		{Name: "Casual Leave", Category: leave.CategoryCasual, AnnualDaysAllowed: 10},
		{Name: "Sick Leave", Category: leave.CategorySick, AnnualDaysAllowed: 7},
	}
	f.svc = NewService(
		db,
		f.repo,
		f.employees,
		f.attendances,
		&fakeAttendancePolicyRepo{policy: attendance.DefaultPolicy()},
		f.leaves,
		f.balances,
		f.holidays,
		f.outbox,
	)
	return f
}

func fullPresence(days int) []attendance.Attendance {
	records := make([]attendance.Attendance, days)
	for i := range records {
		records[i] = attendance.Attendance{Status: attendance.StatusPresent}
	}
	return records
}

func TestService_Generate_Batch(t *testing.T) {
	f := newGenerateFixture(t)
	defer f.done()

	alice := employee.Employee{ID: uuid.New(), FullName: "Alice", GrossSalary: 6_000_000}
	bob := employee.Employee{ID: uuid.New(), FullName: "Bob", GrossSalary: 4_500_000}
	f.employees.employees = []employee.Employee{alice, bob}

	// March 2026 has 27 working days with no holidays configured.
	f.attendances.byEmployee[alice.ID.String()] = fullPresence(27)
	f.attendances.byEmployee[bob.ID.String()] = fullPresence(25)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := f.svc.Generate(context.Background(), uuid.NewString(), GeneratePayrollRequest{Month: 3, Year: 2026})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.EmployeesProcessed)
	assert.Equal(t, 2, resp.GeneratedCount)
	assert.Empty(t, resp.Failures)
	require.Len(t, f.repo.created, 2)

	// Full presence pays out gross untouched.
	assert.Equal(t, alice.GrossSalary, f.repo.created[0].NetPayable)
	assert.Equal(t, StatusPending, f.repo.created[0].Status)

	// Bob misses two working days.
	bobRecord := f.repo.created[1]
	assert.Equal(t, 2, bobRecord.AbsentDays)
	assert.Less(t, bobRecord.NetPayable, bob.GrossSalary)

	// Seeded balances are persisted even without leave taken.
	assert.Len(t, f.balances.saved, 2)
	assert.Equal(t, 10, f.balances.saved[0].CasualRemaining)

	// One batch event staged in the same transaction.
	require.Len(t, f.outbox.created, 1)
	assert.Equal(t, "payroll_generated", f.outbox.created[0].EventType)
	assert.Equal(t, kafka.OutboxStatusPending, f.outbox.created[0].Status)

	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestService_Generate_ConsumesLeaveBalance(t *testing.T) {
	f := newGenerateFixture(t)
	defer f.done()

	emp := employee.Employee{ID: uuid.New(), FullName: "Cleo", GrossSalary: 2_700_000}
	f.employees.employees = []employee.Employee{emp}
	f.balances.byEmployee[emp.ID.String()] = &leave.LeaveBalance{
		ID:              uuid.New(),
		EmployeeID:      emp.ID,
		Year:            2026,
		CasualRemaining: 2,
		SickRemaining:   7,
	}

	// March 10 through 17 spans 7 working days; 2 casual remain, so 5
	// spill to unpaid.
	f.leaves.byEmployee[emp.ID.String()] = []leave.Leave{{
		EmployeeID: emp.ID,
		LeaveType:  "Casual Leave",
		StartDate:  time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, time.March, 17, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusApproved,
	}}
	f.attendances.byEmployee[emp.ID.String()] = fullPresence(20)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := f.svc.Generate(context.Background(), uuid.NewString(), GeneratePayrollRequest{Month: 3, Year: 2026})
	require.NoError(t, err)
	require.Equal(t, 1, resp.GeneratedCount)

	record := f.repo.created[0]
	assert.Equal(t, 2, record.CasualLeaveDays)
	assert.Equal(t, 5, record.UnpaidLeaveDays)
	assert.Equal(t, 0, record.AbsentDays)
	// 27 working days, 5 unpaid at a daily rate of 100,000 cents.
	assert.Equal(t, int64(500_000), record.UnpaidLeaveDeduction)
	assert.Equal(t, int64(2_200_000), record.NetPayable)

	require.Len(t, f.balances.saved, 1)
	assert.Equal(t, 0, f.balances.saved[0].CasualRemaining)
	assert.Equal(t, 5, f.balances.saved[0].UnpaidDaysAccumulated)

	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestService_Generate_AlreadyGenerated(t *testing.T) {
	f := newGenerateFixture(t)
	defer f.done()

	f.repo.exists = true
	f.employees.employees = []employee.Employee{{ID: uuid.New(), GrossSalary: 1}}

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.svc.Generate(context.Background(), uuid.NewString(), GeneratePayrollRequest{Month: 3, Year: 2026})
	assert.ErrorIs(t, err, payrollerrors.ErrAlreadyGenerated)
	assert.Empty(t, f.repo.created)
	assert.Empty(t, f.outbox.created)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestService_Generate_NoActiveEmployees(t *testing.T) {
	f := newGenerateFixture(t)
	defer f.done()

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.svc.Generate(context.Background(), uuid.NewString(), GeneratePayrollRequest{Month: 3, Year: 2026})
	assert.ErrorIs(t, err, payrollerrors.ErrNoActiveEmployees)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestService_Generate_ValidatesPeriod(t *testing.T) {
	f := newGenerateFixture(t)
	defer f.done()

	actor := uuid.NewString()

	_, err := f.svc.Generate(context.Background(), actor, GeneratePayrollRequest{Month: 13, Year: 2026})
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidMonth)

	_, err = f.svc.Generate(context.Background(), actor, GeneratePayrollRequest{Month: 3, Year: 26})
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidYear)

	_, err = f.svc.Generate(context.Background(), "not-a-uuid", GeneratePayrollRequest{Month: 3, Year: 2026})
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidActorID)
}

func TestService_Generate_MonthWithoutWorkingDays(t *testing.T) {
	f := newGenerateFixture(t)
	defer f.done()

	// Every non-Friday of February 2026 is a holiday: calculation fails
	// for everyone, nothing is persisted, no event is staged.
	var holidays []calendar.Holiday
	for day := 1; day <= 28; day++ {
		d := time.Date(2026, time.February, day, 0, 0, 0, 0, time.UTC)
		if d.Weekday() == calendar.WeekendDay {
			continue
		}
		holidays = append(holidays, calendar.Holiday{Name: "Shutdown", HolidayDate: d})
	}
	f.holidays.set = calendar.NewHolidaySet(holidays)
	f.employees.employees = []employee.Employee{
		{ID: uuid.New(), FullName: "Dara", GrossSalary: 1_000_000},
	}

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := f.svc.Generate(context.Background(), uuid.NewString(), GeneratePayrollRequest{Month: 2, Year: 2026})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.GeneratedCount)
	require.Len(t, resp.Failures, 1)
	assert.Equal(t, "Dara", resp.Failures[0].EmployeeName)
	assert.Empty(t, f.repo.created)
	assert.Empty(t, f.outbox.created)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestService_Approve(t *testing.T) {
	f := newGenerateFixture(t)
	defer f.done()

	id := uuid.New()
	f.repo.byID[id.String()] = &Payroll{
		ID:         id,
		EmployeeID: uuid.New(),
		Month:      3,
		Year:       2026,
		Status:     StatusPending,
	}

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := f.svc.Approve(context.Background(), uuid.NewString(), id.String())
	require.NoError(t, err)

	assert.Equal(t, StatusApproved, resp.Status)
	assert.NotNil(t, resp.ApprovedBy)
	require.Len(t, f.repo.updated, 1)
	assert.Equal(t, StatusApproved, f.repo.updated[0].Status)

	require.Len(t, f.outbox.created, 1)
	assert.Equal(t, "payroll_approved", f.outbox.created[0].EventType)

	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestService_Approve_AlreadyApproved(t *testing.T) {
	f := newGenerateFixture(t)
	defer f.done()

	id := uuid.New()
	f.repo.byID[id.String()] = &Payroll{ID: id, Status: StatusApproved}

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.svc.Approve(context.Background(), uuid.NewString(), id.String())
	assert.ErrorIs(t, err, payrollerrors.ErrAlreadyApproved)
	assert.Empty(t, f.repo.updated)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestService_Approve_NotFound(t *testing.T) {
	f := newGenerateFixture(t)
	defer f.done()

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.svc.Approve(context.Background(), uuid.NewString(), uuid.NewString())
	assert.True(t, errors.Is(err, payrollerrors.ErrPayrollNotFound))
	assert.NoError(t, f.mock.ExpectationsWereMet())
}
