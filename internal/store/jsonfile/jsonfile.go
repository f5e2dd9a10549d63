// Package jsonfile implements the store.Store interface on a local JSON file.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ltask/internal/store"
	"ltask/internal/task"
)

// FileMode is the permission mode for the store file.
const FileMode = 0600

// state is the on-disk layout of the store file.
// next_id is persisted so ids are never reused after a remove.
type state struct {
	NextID int64       `json:"next_id"`
	Tasks  []task.Task `json:"tasks"`
}

// Store implements store.Store backed by a single JSON file.
// Mutations are written back to disk before returning.
type Store struct {
	path string
	st   state

	// now is the clock, overridable in tests.
	now func() time.Time
}

// Open loads the store file at path.
// A missing file yields an empty store; it is created on first save.
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		st:   state{NextID: 1},
		now:  time.Now,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	if err := json.Unmarshal(data, &s.st); err != nil {
		return nil, fmt.Errorf("corrupt store file %s: %w", path, err)
	}

	// Older files may predate the counter; recover it from the tasks.
	if s.st.NextID < 1 {
		s.st.NextID = 1
	}
	for _, t := range s.st.Tasks {
		if t.ID >= s.st.NextID {
			s.st.NextID = t.ID + 1
		}
	}

	return s, nil
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// Add implements store.Store.
func (s *Store) Add(ctx context.Context, description string) (task.Task, error) {
	t := task.Task{
		ID:          s.st.NextID,
		Description: description,
		Status:      task.StatusPending,
		Created:     s.now().UTC(),
	}
	s.st.NextID++
	s.st.Tasks = append(s.st.Tasks, t)

	if err := s.save(); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// List implements store.Store.
func (s *Store) List(ctx context.Context, f store.Filter) ([]task.Task, error) {
	result := make([]task.Task, 0, len(s.st.Tasks))
	for _, t := range s.st.Tasks {
		if f.Match(t) {
			result = append(result, t)
		}
	}
	return result, nil
}

// Complete implements store.Store.
func (s *Store) Complete(ctx context.Context, id int64) (task.Task, error) {
	i := s.index(id)
	if i < 0 {
		return task.Task{}, fmt.Errorf("%w: %d", store.ErrNotFound, id)
	}

	t := &s.st.Tasks[i]
	if t.Status != task.StatusCompleted {
		t.Status = task.StatusCompleted
		now := s.now().UTC()
		t.Completed = &now
		if err := s.save(); err != nil {
			return task.Task{}, err
		}
	}
	return *t, nil
}

// Remove implements store.Store.
func (s *Store) Remove(ctx context.Context, id int64) (task.Task, error) {
	i := s.index(id)
	if i < 0 {
		return task.Task{}, fmt.Errorf("%w: %d", store.ErrNotFound, id)
	}

	t := s.st.Tasks[i]
	s.st.Tasks = append(s.st.Tasks[:i], s.st.Tasks[i+1:]...)

	if err := s.save(); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// index returns the position of the task with the given id, or -1.
func (s *Store) index(id int64) int {
	for i, t := range s.st.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// save writes the store file atomically: temp file in the same
// directory, then rename over the target.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tasks-*.json")
	if err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := tmp.Chmod(FileMode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write store file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write store file: %w", err)
	}
	return nil
}
