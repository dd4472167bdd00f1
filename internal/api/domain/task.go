package domain

import "time"

// Priority is the task urgency level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a unit of work owned by exactly one account. Ownership is set at
// creation and never transferred; every read and write is scoped by both the
// task id and the owner id.
type Task struct {
	ID        string
	OwnerID   string
	Title     string
	Priority  Priority
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TaskPatch carries a partial update. Nil fields are left unchanged.
type TaskPatch struct {
	Title     *string
	Priority  *Priority
	Completed *bool
}
