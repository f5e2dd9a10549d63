// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"ltask/internal/task"
)

const (
	// PendingMarker is the status column for open tasks.
	PendingMarker = "[ ]"

	// CompletedMarker is the status column for finished tasks.
	CompletedMarker = "[x]"
)

// FormatTask formats a task line.
// Format: "{ID:>4}  {MARKER}  {DESCRIPTION}\n"
// (4-wide right-aligned id, status marker, description).
func FormatTask(w io.Writer, t task.Task) {
	marker := PendingMarker
	if t.Status == task.StatusCompleted {
		marker = CompletedMarker
	}
	fmt.Fprintf(w, "%4d  %s  %s\n", t.ID, marker, normalizeDescription(t.Description))
}

// FormatTasks formats a sequence of task lines.
func FormatTasks(w io.Writer, tasks []task.Task) {
	for _, t := range tasks {
		FormatTask(w, t)
	}
}

// normalizeDescription normalizes a description for display.
// - Empty or whitespace-only descriptions become "(untitled)"
// - Newlines are replaced with spaces
func normalizeDescription(desc string) string {
	desc = strings.ReplaceAll(desc, "\r", " ")
	desc = strings.ReplaceAll(desc, "\n", " ")

	if strings.TrimSpace(desc) == "" {
		return "(untitled)"
	}
	return desc
}
