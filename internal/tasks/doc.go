// Package tasks implements the task store and lifecycle over the flat
// task file.
//
// # File Format
//
// One record per line, six semicolon-separated fields:
//
//	username;title;description;due_date;assigned_date;completed
//
// Both dates use YYYY-MM-DD (see the dates package) and completed is
// the literal Yes or No. Any completed value other than Yes reads as
// No; that leniency is kept so existing files stay loadable. Blank
// lines are skipped on load and never written.
//
// # Identity
//
// Records carry no identifier on disk; their on-disk identity is line
// order. In memory each task gets a generated UUID at load or creation
// so that lifecycle operations (Complete, Reassign, Reschedule) take a
// stable reference instead of a position. IDs are never serialized and
// do not survive a process restart.
//
// # Persistence
//
// The store owns the in-memory sequence for the process lifetime and
// rewrites the whole file after every mutation:
//
//	store, err := tasks.Load("tasks.txt")
//	task, err := store.Assign(users, "alice", "Title", "Desc", due, today)
//	err = store.Save()
//
// Lifecycle operations mutate memory only; callers persist with Save.
// The file is the sole writer's serialization target - concurrent
// external edits are unsupported.
package tasks
