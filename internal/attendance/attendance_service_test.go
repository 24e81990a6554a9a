package attendance

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	attendanceerrors "go-hrpay/internal/attendance/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn                 func(ctx context.Context, a *Attendance) error
	updateFn                 func(ctx context.Context, a *Attendance) error
	findByEmployeeAndDateFn  func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	findByEmployeeAndRangeFn func(ctx context.Context, employeeID string, rangeStart, rangeEnd time.Time) ([]Attendance, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, a *Attendance) error {
	return f.createFn(ctx, a)
}
func (f *fakeRepo) Update(ctx context.Context, a *Attendance) error {
	return f.updateFn(ctx, a)
}
func (f *fakeRepo) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
	return f.findByEmployeeAndDateFn(ctx, employeeID, date)
}
func (f *fakeRepo) FindByEmployeeAndRange(ctx context.Context, employeeID string, rangeStart, rangeEnd time.Time) ([]Attendance, error) {
	if f.findByEmployeeAndRangeFn != nil {
		return f.findByEmployeeAndRangeFn(ctx, employeeID, rangeStart, rangeEnd)
	}
	return nil, nil
}

type fakePolicyRepo struct {
	policy Policy
}

func (f *fakePolicyRepo) Get(ctx context.Context) (Policy, error) {
	return f.policy, nil
}

func newTestService(t *testing.T, repo Repository, policy Policy, at time.Time) (*service, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	svc := NewService(db, repo, &fakePolicyRepo{policy: policy}).(*service)
	svc.now = func() time.Time { return at }

	return svc, mock, func() { db.Close() }
}

func TestService_ClockIn_OnTime(t *testing.T) {
	employeeID := uuid.New().String()
	var saved Attendance
	repo := &fakeRepo{
		createFn: func(ctx context.Context, a *Attendance) error { saved = *a; return nil },
		findByEmployeeAndDateFn: func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	// 09:10 with a 15 minute grace on a 09:00 start: on time.
	at := time.Date(2026, time.March, 2, 9, 10, 0, 0, time.UTC)
	svc, mock, done := newTestService(t, repo, DefaultPolicy(), at)
	defer done()

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.ClockIn(context.Background(), employeeID, ClockInRequest{})
	assert.NoError(t, err)
	assert.False(t, resp.IsLate)
	assert.Equal(t, StatusPresent, saved.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ClockIn_LatePastGrace(t *testing.T) {
	employeeID := uuid.New().String()
	repo := &fakeRepo{
		createFn: func(ctx context.Context, a *Attendance) error { return nil },
		findByEmployeeAndDateFn: func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	// 09:16 is one minute past the 09:15 cutoff.
	at := time.Date(2026, time.March, 2, 9, 16, 0, 0, time.UTC)
	svc, mock, done := newTestService(t, repo, DefaultPolicy(), at)
	defer done()

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.ClockIn(context.Background(), employeeID, ClockInRequest{})
	assert.NoError(t, err)
	assert.True(t, resp.IsLate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ClockIn_Duplicate(t *testing.T) {
	employeeID := uuid.New().String()
	repo := &fakeRepo{
		findByEmployeeAndDateFn: func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
			return &Attendance{ID: uuid.New()}, nil
		},
	}

	at := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	svc, mock, done := newTestService(t, repo, DefaultPolicy(), at)
	defer done()

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.ClockIn(context.Background(), employeeID, ClockInRequest{})
	assert.True(t, errors.Is(err, attendanceerrors.ErrAlreadyClockedIn))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ClockOut_ShortDayBecomesHalfDay(t *testing.T) {
	employeeID := uuid.New().String()
	clockIn := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	existing := &Attendance{
		ID:             uuid.New(),
		EmployeeID:     uuid.MustParse(employeeID),
		AttendanceDate: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		ClockIn:        clockIn,
		Status:         StatusPresent,
	}

	var saved Attendance
	repo := &fakeRepo{
		updateFn: func(ctx context.Context, a *Attendance) error { saved = *a; return nil },
		findByEmployeeAndDateFn: func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
			return existing, nil
		},
	}

	// Clocking out after three hours of an eight-hour day.
	at := clockIn.Add(3 * time.Hour)
	svc, mock, done := newTestService(t, repo, DefaultPolicy(), at)
	defer done()

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.ClockOut(context.Background(), employeeID, ClockOutRequest{})
	assert.NoError(t, err)
	assert.Equal(t, StatusHalfDay, saved.Status)
	assert.NotNil(t, resp.ClockOut)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ClockOut_WithoutClockIn(t *testing.T) {
	employeeID := uuid.New().String()
	repo := &fakeRepo{
		findByEmployeeAndDateFn: func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	at := time.Date(2026, time.March, 2, 17, 0, 0, 0, time.UTC)
	svc, mock, done := newTestService(t, repo, DefaultPolicy(), at)
	defer done()

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.ClockOut(context.Background(), employeeID, ClockOutRequest{})
	assert.True(t, errors.Is(err, attendanceerrors.ErrClockInNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPolicy_Validate(t *testing.T) {
	valid := DefaultPolicy()
	assert.NoError(t, valid.Validate())

	tooMuchGrace := DefaultPolicy()
	tooMuchGrace.GracePeriodMinutes = 121
	assert.Error(t, tooMuchGrace.Validate())

	zeroTolerance := DefaultPolicy()
	zeroTolerance.LateArrivalsPerDeductionDay = 0
	assert.Error(t, zeroTolerance.Validate())

	badClock := DefaultPolicy()
	badClock.OfficeStartTime = "9am"
	assert.Error(t, badClock.Validate())
}
