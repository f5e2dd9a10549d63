// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"
	"time"

	"ltask/internal/store"
	"ltask/internal/task"
)

// FakeStore is an in-memory implementation of store.Store for testing.
type FakeStore struct {
	mu     sync.RWMutex
	nextID int64
	tasks  []task.Task

	// Error injection for testing
	AddErr      error
	ListErr     error
	CompleteErr error
	RemoveErr   error
}

// NewFakeStore creates an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{nextID: 1}
}

// Seed adds a task directly, bypassing error injection.
// Advances the id counter past the seeded id.
func (f *FakeStore) Seed(t task.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, t)
	if t.ID >= f.nextID {
		f.nextID = t.ID + 1
	}
}

// SeedPending adds a pending task with the next id and returns it.
func (f *FakeStore) SeedPending(description string) task.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := task.Task{
		ID:          f.nextID,
		Description: description,
		Status:      task.StatusPending,
		Created:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	f.nextID++
	f.tasks = append(f.tasks, t)
	return t
}

// Add implements store.Store.
func (f *FakeStore) Add(ctx context.Context, description string) (task.Task, error) {
	if f.AddErr != nil {
		return task.Task{}, f.AddErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	t := task.Task{
		ID:          f.nextID,
		Description: description,
		Status:      task.StatusPending,
		Created:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	f.nextID++
	f.tasks = append(f.tasks, t)
	return t, nil
}

// List implements store.Store.
func (f *FakeStore) List(ctx context.Context, filter store.Filter) ([]task.Task, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]task.Task, 0, len(f.tasks))
	for _, t := range f.tasks {
		if filter.Match(t) {
			result = append(result, t)
		}
	}
	return result, nil
}

// Complete implements store.Store.
func (f *FakeStore) Complete(ctx context.Context, id int64) (task.Task, error) {
	if f.CompleteErr != nil {
		return task.Task{}, f.CompleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			if f.tasks[i].Status != task.StatusCompleted {
				f.tasks[i].Status = task.StatusCompleted
				now := time.Date(2026, 1, 2, 6, 0, 0, 0, time.UTC)
				f.tasks[i].Completed = &now
			}
			return f.tasks[i], nil
		}
	}
	return task.Task{}, store.ErrNotFound
}

// Remove implements store.Store.
func (f *FakeStore) Remove(ctx context.Context, id int64) (task.Task, error) {
	if f.RemoveErr != nil {
		return task.Task{}, f.RemoveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return t, nil
		}
	}
	return task.Task{}, store.ErrNotFound
}
