// Package users implements the credential directory backed by the
// flat user file: one "username;password" record per line.
package users

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrCorruptRecord indicates a line in the user file without the
	// username;password delimiter.
	ErrCorruptRecord = errors.New("corrupt user record: expected username;password")

	// ErrExists indicates a registration attempt for a username that
	// is already taken.
	ErrExists = errors.New("username already in use")
)

// Store is the in-memory username to password mapping for the life of
// the process. It preserves insertion order so that every save rewrites
// the backing file with records in a stable order. Usernames are unique
// and matched case-sensitively.
type Store struct {
	path  string
	order []string
	creds map[string]string
}

// EnsureFile creates the user file pre-populated with a single default
// credential record if the file does not exist yet. An existing file is
// left untouched.
func EnsureFile(path, defaultUser, defaultPassword string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	record := defaultUser + ";" + defaultPassword
	if err := os.WriteFile(path, []byte(record), 0644); err != nil {
		return fmt.Errorf("failed to create user file: %w", err)
	}
	return nil
}

// Load reads the whole user file into a new Store. Blank lines are
// skipped; a non-blank line without a semicolon aborts the load.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read user file: %w", err)
	}

	s := &Store{path: path, creds: make(map[string]string)}
	for i, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		username, password, ok := strings.Cut(line, ";")
		if !ok {
			return nil, fmt.Errorf("%w: %s line %d", ErrCorruptRecord, path, i+1)
		}
		if _, dup := s.creds[username]; !dup {
			s.order = append(s.order, username)
		}
		s.creds[username] = password
	}
	return s, nil
}

// Save rewrites the backing file wholesale: one record per line,
// insertion order, no blank lines, no trailing newline. The write goes
// through a temp file and rename so a crash cannot leave a truncated
// user file behind.
func (s *Store) Save() error {
	records := make([]string, 0, len(s.order))
	for _, username := range s.order {
		records = append(records, username+";"+s.creds[username])
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strings.Join(records, "\n")), 0644); err != nil {
		return fmt.Errorf("failed to write user file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace user file: %w", err)
	}
	return nil
}

// Register adds a new credential pair and persists the updated mapping
// immediately. Registration of an existing username fails with ErrExists
// and leaves both memory and file untouched.
func (s *Store) Register(username, password string) error {
	if _, taken := s.creds[username]; taken {
		return fmt.Errorf("%w: %q", ErrExists, username)
	}
	s.order = append(s.order, username)
	s.creds[username] = password
	if err := s.Save(); err != nil {
		return err
	}
	return nil
}

// Exists reports whether a username is registered (exact match).
func (s *Store) Exists(username string) bool {
	_, ok := s.creds[username]
	return ok
}

// Authenticate reports whether the username exists and the password
// matches exactly.
func (s *Store) Authenticate(username, password string) bool {
	stored, ok := s.creds[username]
	return ok && stored == password
}

// Usernames returns the registered usernames in insertion order.
func (s *Store) Usernames() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of registered users.
func (s *Store) Len() int {
	return len(s.order)
}
