package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/chiral-sh/chiral/internal/editor"
	"github.com/chiral-sh/chiral/internal/ui"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive text search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := editor.Detect(app.Config.UI.Editor)
			if err != nil {
				return err
			}

			currentDir, err := os.Getwd()
			if err != nil {
				return err
			}
			gitRoot, _ := app.repoRoot()

			model := ui.New(app.Searcher, app.Config, ed, gitRoot, currentDir)
			return model.Start()
		},
	}
}
