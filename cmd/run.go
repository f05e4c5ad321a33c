package cmd

import (
	"github.com/abhisek/lessonloop/internal/app"
	"github.com/spf13/cobra"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := buildDeps(cmd, false)
	if err != nil {
		return err
	}
	defer d.logger.Sync()

	return app.Run(cmd.Context(), app.Options{
		Orchestrator: d.orch,
		Model:        d.client.ModelID(),
	})
}
