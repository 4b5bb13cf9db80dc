package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abstractlab/yayi/internal/app"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := buildDeps(cmd, true)
	if err != nil {
		return err
	}
	defer d.Close()

	return app.Run(app.Options{
		Catalog:   d.catalog,
		Evaluator: d.evaluator,
		Status:    d.catalogLabel,
		DebugLog:  os.Getenv("YAYI_DEBUG"),
	})
}
