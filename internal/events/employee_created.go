package events

import "time"

const EmployeeCreatedTopic = "company.employee.lifecycle.v1"

// EmployeeCreatedEvent is emitted through the outbox after an employee
// record is committed.
type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID int64     `json:"employee_id"`
	DeptID     int64     `json:"dept_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
