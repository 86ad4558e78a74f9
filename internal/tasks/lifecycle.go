package tasks

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Directory reports whether a username is registered. *users.Store
// satisfies it; lifecycle operations only need the membership check.
type Directory interface {
	Exists(username string) bool
}

// Assign appends a new task for an existing user. The assigned date is
// fixed to today at creation and never mutated afterwards. The created
// task is returned; persisting the store is the caller's job.
func (s *Store) Assign(dir Directory, username, title, description string, due, today time.Time) (Task, error) {
	if !dir.Exists(username) {
		return Task{}, fmt.Errorf("%w: %q", ErrUnknownUser, username)
	}

	task := Task{
		ID:           uuid.New().String(),
		Username:     username,
		Title:        title,
		Description:  description,
		DueDate:      due,
		AssignedDate: today,
		Completed:    false,
	}
	s.list = append(s.list, task)
	return task, nil
}

// Complete marks a task completed. Completing an already-completed
// task is a no-op, not an error.
func (s *Store) Complete(id string) error {
	t := s.lookup(id)
	if t == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	t.Completed = true
	return nil
}

// Reassign moves a task to a different existing user. Completed tasks
// are closed for editing.
func (s *Store) Reassign(dir Directory, id, newUsername string) error {
	t := s.lookup(id)
	if t == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if t.Completed {
		return ErrTaskCompleted
	}
	if !dir.Exists(newUsername) {
		return fmt.Errorf("%w: %q", ErrUnknownUser, newUsername)
	}
	t.Username = newUsername
	return nil
}

// Reschedule changes a task's due date. Completed tasks are closed for
// editing.
func (s *Store) Reschedule(id string, newDue time.Time) error {
	t := s.lookup(id)
	if t == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if t.Completed {
		return ErrTaskCompleted
	}
	t.DueDate = newDue
	return nil
}
