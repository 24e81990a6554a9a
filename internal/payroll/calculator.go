package payroll

import (
	"time"

	"go-hrpay/internal/attendance"
	"go-hrpay/internal/calendar"
	"go-hrpay/internal/employee"
	"go-hrpay/internal/leave"
	payrollerrors "go-hrpay/internal/payroll/errors"
)

// Inputs is the full snapshot a single employee's payroll is computed from.
// Everything is read up front so Calculate stays a pure function.
type Inputs struct {
	Employee     employee.Employee
	Month        time.Month
	Year         int
	Holidays     calendar.HolidaySet
	Records      []attendance.Attendance
	Requests     []leave.Leave
	Categories   leave.CategoryIndex
	PriorBalance leave.Balance
	Policy       attendance.Policy
}

// Result carries the computed breakdown with full float64 precision in
// minor currency units. Rounding to whole cents is the caller's job when
// it maps the result onto a stored record.
type Result struct {
	WorkingDays     int
	DailyRate       float64
	Summary         attendance.MonthlySummary
	Consumption     leave.MonthConsumption
	AbsentDays      int
	LatePenaltyDays int

	LatePenalty          float64
	UnpaidLeaveDeduction float64
	HalfDayDeduction     float64
	AbsentDeduction      float64
	TotalDeduction       float64
	NetPayable           float64
}

// Calculate derives one employee's payroll for (month, year) from the
// calendar, attendance and leave snapshots. A month with zero working days
// has no daily rate and fails rather than dividing by zero.
func Calculate(in Inputs) (Result, error) {
	workingDays := calendar.WorkingDaysInMonth(in.Month, in.Year, in.Holidays)
	if workingDays == 0 {
		return Result{}, payrollerrors.ErrNoWorkingDays
	}

	dailyRate := float64(in.Employee.GrossSalary) / float64(workingDays)

	summary := attendance.Aggregate(in.Records)
	consumption := leave.ConsumeMonth(in.PriorBalance, in.Requests, in.Categories, in.Month, in.Year, in.Holidays)

	latePenaltyDays := 0
	if in.Policy.LateArrivalsPerDeductionDay > 0 {
		latePenaltyDays = summary.LateDays / in.Policy.LateArrivalsPerDeductionDay
	}
	absentDays := deriveAbsentDays(workingDays, summary, consumption)

	res := Result{
		WorkingDays:     workingDays,
		DailyRate:       dailyRate,
		Summary:         summary,
		Consumption:     consumption,
		AbsentDays:      absentDays,
		LatePenaltyDays: latePenaltyDays,

		LatePenalty:          float64(latePenaltyDays) * dailyRate,
		UnpaidLeaveDeduction: float64(consumption.UnpaidDays) * dailyRate,
		HalfDayDeduction:     float64(summary.HalfDays) * 0.5 * dailyRate,
		AbsentDeduction:      float64(absentDays) * dailyRate,
	}

	res.TotalDeduction = res.LatePenalty + res.UnpaidLeaveDeduction + res.HalfDayDeduction + res.AbsentDeduction
	res.NetPayable = float64(in.Employee.GrossSalary) - res.TotalDeduction
	if res.NetPayable < 0 {
		res.NetPayable = 0
	}

	return res, nil
}

// deriveAbsentDays backs absence out of the month total: whatever working
// days are not accounted for by presence, half days or recorded leave were
// unexplained absences. Over-accounted months (leave plus presence exceeding
// the working days) clamp to zero instead of crediting the employee.
func deriveAbsentDays(workingDays int, summary attendance.MonthlySummary, consumption leave.MonthConsumption) int {
	absent := workingDays -
		summary.PresentDays -
		summary.HalfDays -
		consumption.CasualTaken -
		consumption.SickTaken -
		consumption.UnpaidDays
	if absent < 0 {
		return 0
	}
	return absent
}
