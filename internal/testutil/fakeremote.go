package testutil

import (
	"context"
	"fmt"
	"sync"

	syncpkg "ltask/internal/sync"
)

// FakeRemote is an in-memory implementation of sync.Remote for testing.
type FakeRemote struct {
	mu     sync.Mutex
	nextID int
	open   []syncpkg.RemoteTask

	// Done records titles of tasks completed remotely.
	Done []string

	// Deleted records titles of tasks deleted remotely.
	Deleted []string

	// Error injection for testing
	ListOpenErr error
	CreateErr   error
	CompleteErr error
	DeleteErr   error
}

// NewFakeRemote creates an empty FakeRemote.
func NewFakeRemote() *FakeRemote {
	return &FakeRemote{nextID: 1}
}

// SeedOpen adds an open remote task and returns its id.
func (f *FakeRemote) SeedOpen(title string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := fmt.Sprintf("r%d", f.nextID)
	f.nextID++
	f.open = append(f.open, syncpkg.RemoteTask{ID: id, Title: title})
	return id
}

// Open returns the current open remote tasks.
func (f *FakeRemote) Open() []syncpkg.RemoteTask {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]syncpkg.RemoteTask, len(f.open))
	copy(result, f.open)
	return result
}

// ListOpen implements sync.Remote.
func (f *FakeRemote) ListOpen(ctx context.Context) ([]syncpkg.RemoteTask, error) {
	if f.ListOpenErr != nil {
		return nil, f.ListOpenErr
	}
	return f.Open(), nil
}

// Create implements sync.Remote.
func (f *FakeRemote) Create(ctx context.Context, title string) error {
	if f.CreateErr != nil {
		return f.CreateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	id := fmt.Sprintf("r%d", f.nextID)
	f.nextID++
	f.open = append(f.open, syncpkg.RemoteTask{ID: id, Title: title})
	return nil
}

// Complete implements sync.Remote.
func (f *FakeRemote) Complete(ctx context.Context, id string) error {
	if f.CompleteErr != nil {
		return f.CompleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, rt := range f.open {
		if rt.ID == id {
			f.Done = append(f.Done, rt.Title)
			f.open = append(f.open[:i], f.open[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("not found")
}

// Delete implements sync.Remote.
func (f *FakeRemote) Delete(ctx context.Context, id string) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, rt := range f.open {
		if rt.ID == id {
			f.Deleted = append(f.Deleted, rt.Title)
			f.open = append(f.open[:i], f.open[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("not found")
}
