package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/richard-gotts/task-manager/internal/tasks"
)

// stampLayout is the generation timestamp written at the top of each
// report file.
const stampLayout = "2006-01-02 15:04"

// RenderOverview renders the global task overview artifact.
func RenderOverview(s Summary, generatedAt time.Time) string {
	var b strings.Builder
	b.WriteString("TASK OVERVIEW\n")
	b.WriteString(generatedAt.Format(stampLayout) + "\n")
	b.WriteString(strings.Repeat("_", 13) + "\n")
	fmt.Fprintf(&b, "\nTotal number of tasks = %d", s.Total)
	fmt.Fprintf(&b, "\nTotal number of completed tasks = %d (%.1f%%)", s.Completed, s.PctCompleted)
	fmt.Fprintf(&b, "\nTotal number of uncompleted tasks = %d (%.1f%%)", s.Uncompleted, s.PctUncompleted)
	fmt.Fprintf(&b, "\nTotal number of overdue tasks = %d (%.1f%%)", s.Overdue, s.PctOverdue)
	return b.String()
}

// RenderUserOverview renders the per-user overview artifact.
func RenderUserOverview(totalUsers, totalTasks int, summaries []UserSummary, generatedAt time.Time) string {
	var b strings.Builder
	b.WriteString("USER OVERVIEW\n")
	b.WriteString(generatedAt.Format(stampLayout) + "\n")
	b.WriteString(strings.Repeat("_", 13) + "\n")
	fmt.Fprintf(&b, "\nTotal number of users = %d", totalUsers)
	fmt.Fprintf(&b, "\nTotal number of tasks = %d", totalTasks)
	for _, u := range summaries {
		fmt.Fprintf(&b, "\n\n> %s", u.Username)
		fmt.Fprintf(&b, "\nNumber of tasks assigned: %d (%.1f%%)", u.Assigned, u.PctAssigned)
		fmt.Fprintf(&b, "\nNumber of assigned tasks completed: %d (%.1f%%)", u.Completed, u.PctCompleted)
		fmt.Fprintf(&b, "\nNumber of assigned tasks uncompleted: %d (%.1f%%)", u.Uncompleted, u.PctUncompleted)
		fmt.Fprintf(&b, "\nNumber of assigned tasks overdue: %d (%.1f%%)", u.Overdue, u.PctOverdue)
	}
	return b.String()
}

// WriteFiles regenerates both report files wholesale, discarding prior
// contents. Each file is written to a temp path and renamed into place.
func WriteFiles(overviewPath, userOverviewPath string, list []tasks.Task, usernames []string, today, generatedAt time.Time) error {
	overview := RenderOverview(GlobalSummary(list, today), generatedAt)
	if err := writeAtomic(overviewPath, overview); err != nil {
		return err
	}

	perUser := RenderUserOverview(
		len(usernames),
		len(list),
		PerUserSummary(list, usernames, today),
		generatedAt,
	)
	return writeAtomic(userOverviewPath, perUser)
}

func writeAtomic(path, content string) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace report %s: %w", path, err)
	}
	return nil
}
