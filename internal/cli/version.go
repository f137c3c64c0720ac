package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information, set via -ldflags at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(app.Out, "chiral %s (%s)\n", Version, GitCommit)
		},
	}
}
