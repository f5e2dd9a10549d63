// Package task defines the task entity and its status enum.
package task

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a task.
type Status string

const (
	// StatusPending marks a task that has not been completed.
	StatusPending Status = "pending"

	// StatusCompleted marks a finished task.
	StatusCompleted Status = "completed"
)

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// ParseStatus parses a user-supplied status string.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("invalid status: %s", s)
	}
	return st, nil
}

// Task represents a single tracked task.
// IDs are assigned sequentially and are stable once assigned;
// removing a task never renumbers the rest.
type Task struct {
	ID          int64      `json:"id"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	Created     time.Time  `json:"created"`
	Completed   *time.Time `json:"completed,omitempty"`
}

// Pending reports whether the task is still open.
func (t Task) Pending() bool {
	return t.Status == StatusPending
}
