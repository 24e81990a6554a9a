package events

import "time"

const PayrollGeneratedTopic = "hr.payroll.generated.v1"

// PayrollGeneratedEvent announces that a monthly payroll batch was
// generated. Downstream consumers (payslip rendering, finance export)
// key off the run id.
type PayrollGeneratedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id"`
	RunID         string    `json:"run_id"`
	Month         int       `json:"month"`
	Year          int       `json:"year"`
	EmployeeCount int       `json:"employee_count"`
	GeneratedBy   string    `json:"generated_by"`
	OccurredAt    time.Time `json:"occurred_at"`
}
