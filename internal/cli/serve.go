package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/richard-gotts/task-manager/internal/web"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a read-only HTTP reporting API",
	Long: `Starts an HTTP server exposing the global overview, the per-user
breakdown, and the task listing as JSON. The server works on the
snapshot loaded at startup and never writes to the backing files.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	addr := s.cfg.Web.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	server := web.NewServer(s.users, s.tasks)
	fmt.Printf("Serving reports on %s\n", addr)
	if err := server.Run(addr); err != nil {
		log.Printf("Web server error: %v", err)
		return err
	}
	return nil
}
