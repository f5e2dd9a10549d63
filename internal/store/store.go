// Package store defines the storage-agnostic interface for task operations.
package store

import (
	"context"
	"errors"

	"ltask/internal/task"
)

// ErrNotFound is returned when an operation names an unknown task id.
var ErrNotFound = errors.New("task not found")

// Filter restricts a listing to tasks in a given status.
type Filter struct {
	// Status is the status to keep. Ignored unless Set.
	Status task.Status
	Set    bool
}

// All matches every task.
var All = Filter{}

// ByStatus returns a filter keeping only tasks with the given status.
func ByStatus(s task.Status) Filter {
	return Filter{Status: s, Set: true}
}

// Match reports whether t passes the filter.
func (f Filter) Match(t task.Task) bool {
	return !f.Set || t.Status == f.Status
}

// Store is the interface commands operate against.
// Implementations persist mutations before returning.
type Store interface {
	// Add appends a new pending task with the next sequential id.
	Add(ctx context.Context, description string) (task.Task, error)

	// List returns tasks matching the filter, ordered by id.
	// Returns an empty slice when nothing matches. Does not mutate state.
	List(ctx context.Context, f Filter) ([]task.Task, error)

	// Complete marks the task as completed.
	// Returns ErrNotFound if the id is absent. Idempotent on a task
	// that is already completed.
	Complete(ctx context.Context, id int64) (task.Task, error)

	// Remove deletes the task. Returns ErrNotFound if the id is absent.
	// The ids of remaining tasks are unchanged.
	Remove(ctx context.Context, id int64) (task.Task, error)
}
