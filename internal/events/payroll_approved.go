package events

import "time"

const PayrollApprovedTopic = "hr.payroll.approved.v1"

type PayrollApprovedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id"`
	PayrollID  string    `json:"payroll_id"`
	EmployeeID string    `json:"employee_id"`
	ApprovedBy string    `json:"approved_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
