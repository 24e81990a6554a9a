package payroll

import "time"

type GeneratePayrollRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=1000,max=9999"`
}

// GenerationFailure records one employee the batch could not produce a
// payroll for. The rest of the batch is unaffected.
type GenerationFailure struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Reason       string `json:"reason"`
}

type GeneratePayrollResponse struct {
	Month              int                 `json:"month"`
	Year               int                 `json:"year"`
	EmployeesProcessed int                 `json:"employees_processed"`
	GeneratedCount     int                 `json:"generated_count"`
	Failures           []GenerationFailure `json:"failures,omitempty"`
	Records            []PayrollResponse   `json:"records"`
}

type PayrollResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`

	GrossSalary int64 `json:"gross_salary"`
	DailyRate   int64 `json:"daily_rate"`

	WorkingDays     int `json:"working_days"`
	PresentDays     int `json:"present_days"`
	LateDays        int `json:"late_days"`
	HalfDays        int `json:"half_days"`
	AbsentDays      int `json:"absent_days"`
	CasualLeaveDays int `json:"casual_leave_days"`
	SickLeaveDays   int `json:"sick_leave_days"`
	UnpaidLeaveDays int `json:"unpaid_leave_days"`
	LatePenaltyDays int `json:"late_penalty_days"`

	LatePenalty          int64 `json:"late_penalty"`
	UnpaidLeaveDeduction int64 `json:"unpaid_leave_deduction"`
	HalfDayDeduction     int64 `json:"half_day_deduction"`
	AbsentDeduction      int64 `json:"absent_deduction"`
	TotalDeduction       int64 `json:"total_deduction"`
	NetPayable           int64 `json:"net_payable"`

	Status     string     `json:"status"`
	ApprovedBy *string    `json:"approved_by,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func mapToResponse(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:         p.ID.String(),
		EmployeeID: p.EmployeeID.String(),
		Month:      p.Month,
		Year:       p.Year,

		GrossSalary: p.GrossSalary,
		DailyRate:   p.DailyRate,

		WorkingDays:     p.WorkingDays,
		PresentDays:     p.PresentDays,
		LateDays:        p.LateDays,
		HalfDays:        p.HalfDays,
		AbsentDays:      p.AbsentDays,
		CasualLeaveDays: p.CasualLeaveDays,
		SickLeaveDays:   p.SickLeaveDays,
		UnpaidLeaveDays: p.UnpaidLeaveDays,
		LatePenaltyDays: p.LatePenaltyDays,

		LatePenalty:          p.LatePenalty,
		UnpaidLeaveDeduction: p.UnpaidLeaveDeduction,
		HalfDayDeduction:     p.HalfDayDeduction,
		AbsentDeduction:      p.AbsentDeduction,
		TotalDeduction:       p.TotalDeduction,
		NetPayable:           p.NetPayable,

		Status:     p.Status,
		ApprovedAt: p.ApprovedAt,
		CreatedAt:  p.CreatedAt,
	}
	if p.ApprovedBy != nil {
		approvedBy := p.ApprovedBy.String()
		resp.ApprovedBy = &approvedBy
	}
	return resp
}

func mapToListResponse(payrolls []Payroll) []PayrollResponse {
	resp := make([]PayrollResponse, len(payrolls))
	for i, p := range payrolls {
		resp[i] = mapToResponse(p)
	}
	return resp
}
