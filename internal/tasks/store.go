package tasks

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/richard-gotts/task-manager/internal/dates"
)

// Completed-flag literals in the task file. Anything other than "Yes"
// is read as not completed, without raising an error; existing files
// in the wild rely on that leniency.
const (
	flagCompleted    = "Yes"
	flagNotCompleted = "No"
)

const recordFields = 6

// Store is the authoritative in-memory task sequence for the process
// lifetime, backed by the flat task file. Order in memory matches line
// order in the file; every mutation is followed by a whole-file rewrite
// via Save.
type Store struct {
	path string
	list []Task
}

// EnsureFile creates an empty task file if one does not exist yet.
func EnsureFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		return fmt.Errorf("failed to create task file: %w", err)
	}
	return nil
}

// Load reads the whole task file into a new Store. Each record is
// username;title;description;due_date;assigned_date;completed with
// both dates in YYYY-MM-DD form. Blank lines are skipped. A record
// with the wrong field count or a malformed date aborts the load.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read task file: %w", err)
	}

	s := &Store{path: path}
	for i, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		task, err := parseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, i+1, err)
		}
		s.list = append(s.list, task)
	}
	return s, nil
}

func parseRecord(line string) (Task, error) {
	fields := strings.Split(line, ";")
	if len(fields) != recordFields {
		return Task{}, fmt.Errorf("%w, got %d", ErrCorruptRecord, len(fields))
	}

	due, err := dates.Parse(fields[3])
	if err != nil {
		return Task{}, err
	}
	assigned, err := dates.Parse(fields[4])
	if err != nil {
		return Task{}, err
	}

	return Task{
		ID:           uuid.New().String(),
		Username:     fields[0],
		Title:        fields[1],
		Description:  fields[2],
		DueDate:      due,
		AssignedDate: assigned,
		Completed:    fields[5] == flagCompleted,
	}, nil
}

// Save rewrites the backing file wholesale in current memory order:
// one six-field record per line, no blank lines, no trailing newline.
// It must be called after every mutation; there is no flush on exit.
// The write goes through a temp file and rename so a crash cannot leave
// a truncated task file behind.
func (s *Store) Save() error {
	records := make([]string, 0, len(s.list))
	for _, t := range s.list {
		flag := flagNotCompleted
		if t.Completed {
			flag = flagCompleted
		}
		records = append(records, strings.Join([]string{
			t.Username,
			t.Title,
			t.Description,
			dates.Format(t.DueDate),
			dates.Format(t.AssignedDate),
			flag,
		}, ";"))
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strings.Join(records, "\n")), 0644); err != nil {
		return fmt.Errorf("failed to write task file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace task file: %w", err)
	}
	return nil
}

// All returns a copy of the task sequence in file order.
func (s *Store) All() []Task {
	out := make([]Task, len(s.list))
	copy(out, s.list)
	return out
}

// At returns the task at a zero-based position in file order. The
// position is only meaningful for display; stable references use IDs.
func (s *Store) At(pos int) (Task, bool) {
	if pos < 0 || pos >= len(s.list) {
		return Task{}, false
	}
	return s.list[pos], true
}

// Find returns the task with the given ID.
func (s *Store) Find(id string) (Task, bool) {
	if t := s.lookup(id); t != nil {
		return *t, true
	}
	return Task{}, false
}

// ByOwner returns the tasks assigned to a username, in file order.
func (s *Store) ByOwner(username string) []Task {
	var out []Task
	for _, t := range s.list {
		if t.Username == username {
			out = append(out, t)
		}
	}
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.list)
}

func (s *Store) lookup(id string) *Task {
	for i := range s.list {
		if s.list[i].ID == id {
			return &s.list[i]
		}
	}
	return nil
}
