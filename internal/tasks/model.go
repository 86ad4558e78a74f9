package tasks

import (
	"errors"
	"time"
)

var (
	// ErrCorruptRecord indicates a task file line that does not have
	// the six semicolon-separated fields.
	ErrCorruptRecord = errors.New("corrupt task record: expected 6 semicolon-separated fields")

	// ErrUnknownUser indicates an assignment or reassignment to a
	// username that is not registered.
	ErrUnknownUser = errors.New("user does not exist")

	// ErrNotFound indicates a task ID that is not in the store.
	ErrNotFound = errors.New("task not found")

	// ErrTaskCompleted indicates an edit attempt on a completed task.
	ErrTaskCompleted = errors.New("task completed - unavailable for editing")
)

// Task is one tracked work item. The ID is assigned in memory at load
// or creation time and is never serialized: the six-field file format
// has no identifier column, so task identity on disk is line order.
// Giving each loaded task a generated ID keeps references stable inside
// the process even if the in-memory sequence is filtered for display.
type Task struct {
	ID           string
	Username     string
	Title        string
	Description  string
	DueDate      time.Time
	AssignedDate time.Time
	Completed    bool
}

// IsOverdue reports whether a task is past due: not completed and due
// strictly before today. It is recomputed on every pass, never cached.
func IsOverdue(t Task, today time.Time) bool {
	return !t.Completed && t.DueDate.Before(today)
}
