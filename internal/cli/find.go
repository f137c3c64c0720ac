package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chiral-sh/chiral/internal/tool/finder"
)

func newFindCmd(app *App) *cobra.Command {
	var (
		path          string
		repo          bool
		caseSensitive bool
		types         []string
	)

	cmd := &cobra.Command{
		Use:   "find <pattern>",
		Short: "Search for files, directories and symlinks with fd",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := app.searchPath(path, repo)
			if err != nil {
				return err
			}

			req := &finder.FindRequest{
				Pattern:       args[0],
				SearchPath:    base,
				CaseSensitive: caseSensitive,
			}
			for _, t := range types {
				req.Types = append(req.Types, finder.EntryType(t))
			}

			matches, err := app.Finder.Run(cmd.Context(), req)
			if err != nil {
				return err
			}

			for _, m := range matches {
				fmt.Fprintln(app.Out, m)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "base directory (default: home directory)")
	cmd.Flags().BoolVar(&repo, "repo", false, "scope the search to the enclosing git repository")
	cmd.Flags().BoolVarP(&caseSensitive, "case-sensitive", "s", false, "match case exactly")
	cmd.Flags().StringSliceVarP(&types, "type", "t", nil, "entry types to report: file, directory, symlink (default: all)")

	return cmd
}
