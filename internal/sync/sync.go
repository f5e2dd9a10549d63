// Package sync plans and applies a one-way push of the local store to a
// remote task list. Matching is by exact title; the local store is
// authoritative and is never modified.
package sync

import (
	"context"
	"fmt"

	"ltask/internal/log"
	"ltask/internal/task"
)

// RemoteTask is a task as seen by the remote backend.
type RemoteTask struct {
	ID    string
	Title string
}

// Remote is the backend the planner pushes to.
type Remote interface {
	// ListOpen returns all open tasks on the remote list.
	ListOpen(ctx context.Context) ([]RemoteTask, error)

	// Create adds an open task with the given title.
	Create(ctx context.Context, title string) error

	// Complete marks a remote task completed.
	Complete(ctx context.Context, id string) error

	// Delete removes a remote task.
	Delete(ctx context.Context, id string) error
}

// Plan describes the remote mutations a push would perform.
type Plan struct {
	// Create holds titles of local pending tasks absent from the remote.
	Create []string

	// Complete holds open remote tasks whose local counterpart is completed.
	Complete []RemoteTask

	// Prune holds open remote tasks with no local counterpart.
	// Only applied when pruning is requested.
	Prune []RemoteTask
}

// Empty reports whether the plan has nothing to do.
func (p Plan) Empty() bool {
	return len(p.Create) == 0 && len(p.Complete) == 0 && len(p.Prune) == 0
}

// BuildPlan diffs local tasks against the open remote tasks.
// Tasks with equal titles are matched one-to-one in order.
func BuildPlan(local []task.Task, remote []RemoteTask) Plan {
	// Unconsumed open remote tasks by title.
	remaining := make(map[string][]RemoteTask, len(remote))
	for _, rt := range remote {
		remaining[rt.Title] = append(remaining[rt.Title], rt)
	}

	take := func(title string) (RemoteTask, bool) {
		rts := remaining[title]
		if len(rts) == 0 {
			return RemoteTask{}, false
		}
		rt := rts[0]
		remaining[title] = rts[1:]
		return rt, true
	}

	var plan Plan
	for _, lt := range local {
		rt, ok := take(lt.Description)
		switch {
		case lt.Pending() && !ok:
			plan.Create = append(plan.Create, lt.Description)
		case !lt.Pending() && ok:
			plan.Complete = append(plan.Complete, rt)
		}
	}

	// Whatever is left open remotely has no local counterpart.
	for _, rt := range remote {
		if contains(remaining[rt.Title], rt.ID) {
			plan.Prune = append(plan.Prune, rt)
		}
	}

	return plan
}

func contains(rts []RemoteTask, id string) bool {
	for _, rt := range rts {
		if rt.ID == id {
			return true
		}
	}
	return false
}

// Apply executes the plan against the remote.
// Prune actions are skipped unless prune is true.
// Returns the number of created, completed, and pruned tasks.
func Apply(ctx context.Context, r Remote, plan Plan, prune bool) (created, completed, pruned int, err error) {
	for _, title := range plan.Create {
		if err := r.Create(ctx, title); err != nil {
			return created, completed, pruned, fmt.Errorf("failed to create remote task %q: %w", title, err)
		}
		log.Debugf("sync: created remote task %q", title)
		created++
	}

	for _, rt := range plan.Complete {
		if err := r.Complete(ctx, rt.ID); err != nil {
			return created, completed, pruned, fmt.Errorf("failed to complete remote task %q: %w", rt.Title, err)
		}
		log.Debugf("sync: completed remote task %q", rt.Title)
		completed++
	}

	if prune {
		for _, rt := range plan.Prune {
			if err := r.Delete(ctx, rt.ID); err != nil {
				return created, completed, pruned, fmt.Errorf("failed to delete remote task %q: %w", rt.Title, err)
			}
			log.Debugf("sync: pruned remote task %q", rt.Title)
			pruned++
		}
	}

	return created, completed, pruned, nil
}

// Push lists the remote, builds a plan, and applies it.
func Push(ctx context.Context, r Remote, local []task.Task, prune bool) (created, completed, pruned int, err error) {
	remote, err := r.ListOpen(ctx)
	if err != nil {
		return 0, 0, 0, err
	}
	plan := BuildPlan(local, remote)
	return Apply(ctx, r, plan, prune)
}
