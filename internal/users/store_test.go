package users

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeUserFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "user.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEnsureFileBootstrapsDefault(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "user.txt")

	if err := EnsureFile(path, "admin", "password"); err != nil {
		t.Fatalf("EnsureFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "admin;password" {
		t.Errorf("Expected bootstrap record, got %q", string(data))
	}

	// A second call must not clobber existing content.
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Register("alice", "secret"); err != nil {
		t.Fatal(err)
	}
	if err := EnsureFile(path, "admin", "password"); err != nil {
		t.Fatalf("EnsureFile on existing file failed: %v", err)
	}
	s, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 {
		t.Errorf("Expected 2 users after re-ensure, got %d", s.Len())
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	t.Parallel()
	path := writeUserFile(t, "admin;password\nalice;secret\nbob;hunter2")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("Expected 3 users, got %d", s.Len())
	}

	if err := s.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "admin;password\nalice;secret\nbob;hunter2" {
		t.Errorf("Round trip changed file content: %q", string(data))
	}
}

func TestLoadSkipsBlankLines(t *testing.T) {
	t.Parallel()
	path := writeUserFile(t, "admin;password\n\nalice;secret\n")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("Expected 2 users, got %d", s.Len())
	}
}

func TestLoadSplitsOnFirstDelimiter(t *testing.T) {
	t.Parallel()
	path := writeUserFile(t, "alice;pass;word")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !s.Authenticate("alice", "pass;word") {
		t.Error("Expected password to keep everything after the first semicolon")
	}
}

func TestLoadCorruptRecord(t *testing.T) {
	t.Parallel()
	path := writeUserFile(t, "admin;password\nno-delimiter-here")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected error for record without delimiter")
	}
	if !errors.Is(err, ErrCorruptRecord) {
		t.Errorf("Expected ErrCorruptRecord, got %v", err)
	}
}

func TestRegisterPersistsImmediately(t *testing.T) {
	t.Parallel()
	path := writeUserFile(t, "admin;password")

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Register("alice", "secret"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reloaded.Exists("alice") {
		t.Error("Expected alice to be persisted without an explicit Save")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	t.Parallel()
	path := writeUserFile(t, "admin;password")

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Register("alice", "secret"); err != nil {
		t.Fatal(err)
	}

	err = s.Register("alice", "other")
	if !errors.Is(err, ErrExists) {
		t.Fatalf("Expected ErrExists, got %v", err)
	}

	// The persisted file must contain exactly one alice record.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	for _, line := range strings.Split(string(data), "\n") {
		if line == "alice;secret" {
			count++
		}
		if line == "alice;other" {
			t.Error("Duplicate registration must not overwrite the password")
		}
	}
	if count != 1 {
		t.Errorf("Expected exactly one alice record, found %d", count)
	}
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()
	path := writeUserFile(t, "admin;password")

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Authenticate("admin", "password") {
		t.Error("Expected valid credentials to authenticate")
	}
	if s.Authenticate("admin", "wrong") {
		t.Error("Expected wrong password to fail")
	}
	if s.Authenticate("Admin", "password") {
		t.Error("Expected username match to be case-sensitive")
	}
	if s.Authenticate("ghost", "password") {
		t.Error("Expected unknown user to fail")
	}
}
