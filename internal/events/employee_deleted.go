package events

import "time"

const EmployeeDeletedTopic = "company.employee.lifecycle.v1"

// EmployeeDeletedEvent is emitted when an employee record and its timecards
// are removed.
type EmployeeDeletedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID int64     `json:"employee_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
