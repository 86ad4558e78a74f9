// Package report computes the aggregate task statistics and renders
// the two generated report artifacts: the global task overview and the
// per-user overview. All functions are read-only over the task and
// user collections and safe to call repeatedly.
package report

import (
	"math"
	"sort"
	"time"

	"github.com/richard-gotts/task-manager/internal/tasks"
)

// Summary holds the global completion statistics. Overdue counts a
// subset of Uncompleted. Percentages are count/total*100 rounded to
// one decimal; with zero tasks they are all 0.0, never an error.
type Summary struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Uncompleted    int     `json:"uncompleted"`
	Overdue        int     `json:"overdue"`
	PctCompleted   float64 `json:"pct_completed"`
	PctUncompleted float64 `json:"pct_uncompleted"`
	PctOverdue     float64 `json:"pct_overdue"`
}

// UserSummary holds one user's statistics. PctAssigned is that user's
// share of all tasks; the other three percentages are shares of the
// user's own assigned count. A user with no tasks gets all zeros.
type UserSummary struct {
	Username       string  `json:"username"`
	Assigned       int     `json:"assigned"`
	Completed      int     `json:"completed"`
	Uncompleted    int     `json:"uncompleted"`
	Overdue        int     `json:"overdue"`
	PctAssigned    float64 `json:"pct_assigned"`
	PctCompleted   float64 `json:"pct_completed"`
	PctUncompleted float64 `json:"pct_uncompleted"`
	PctOverdue     float64 `json:"pct_overdue"`
}

// GlobalSummary counts over the full task sequence, classifying each
// task as completed, uncompleted, or overdue relative to today.
func GlobalSummary(list []tasks.Task, today time.Time) Summary {
	s := Summary{Total: len(list)}
	for _, t := range list {
		if t.Completed {
			s.Completed++
			continue
		}
		s.Uncompleted++
		if tasks.IsOverdue(t, today) {
			s.Overdue++
		}
	}
	s.PctCompleted = pct(s.Completed, s.Total)
	s.PctUncompleted = pct(s.Uncompleted, s.Total)
	s.PctOverdue = pct(s.Overdue, s.Total)
	return s
}

// PerUserSummary computes one UserSummary per known username, sorted
// lexicographically by username so report ordering is deterministic.
func PerUserSummary(list []tasks.Task, usernames []string, today time.Time) []UserSummary {
	sorted := make([]string, len(usernames))
	copy(sorted, usernames)
	sort.Strings(sorted)

	total := len(list)
	out := make([]UserSummary, 0, len(sorted))
	for _, username := range sorted {
		u := UserSummary{Username: username}
		for _, t := range list {
			if t.Username != username {
				continue
			}
			u.Assigned++
			if t.Completed {
				u.Completed++
				continue
			}
			u.Uncompleted++
			if tasks.IsOverdue(t, today) {
				u.Overdue++
			}
		}
		u.PctAssigned = pct(u.Assigned, total)
		u.PctCompleted = pct(u.Completed, u.Assigned)
		u.PctUncompleted = pct(u.Uncompleted, u.Assigned)
		u.PctOverdue = pct(u.Overdue, u.Assigned)
		out = append(out, u)
	}
	return out
}

// pct is count/total*100 rounded to one decimal, with the zero-total
// case defined as 0 rather than a division error.
func pct(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*1000) / 10
}
