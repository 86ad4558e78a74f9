package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/richard-gotts/task-manager/internal/dates"
	"github.com/richard-gotts/task-manager/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the task and user overview report files",
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	s, err := openAuthenticated()
	if err != nil {
		return err
	}

	if err := writeReports(s, time.Now().UTC()); err != nil {
		return err
	}

	fmt.Println("Reports generated:")
	fmt.Println(" ", s.cfg.Reports.TaskOverview)
	fmt.Println(" ", s.cfg.Reports.UserOverview)
	return nil
}

// writeReports regenerates both report files. The generation stamp and
// the overdue cutoff are derived from the same instant so the reports
// are internally consistent across a midnight boundary.
func writeReports(s *session, now time.Time) error {
	return report.WriteFiles(
		s.cfg.Reports.TaskOverview,
		s.cfg.Reports.UserOverview,
		s.tasks.All(),
		s.users.Usernames(),
		dates.DayOf(now),
		now,
	)
}
