package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chiral-sh/chiral/internal/tool/grep"
)

func newGrepCmd(app *App) *cobra.Command {
	var (
		path          string
		repo          bool
		caseSensitive bool
		smartCase     bool
		follow        bool
		hidden        bool
		rawJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "grep <pattern>",
		Short: "Search file contents with ripgrep",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := app.searchPath(path, repo)
			if err != nil {
				return err
			}

			req := &grep.SearchRequest{
				Pattern:        args[0],
				SearchPath:     base,
				CaseSensitive:  caseSensitive,
				SmartCase:      smartCase,
				FollowSymlinks: follow,
				SearchHidden:   hidden,
			}

			matches, err := app.Searcher.Run(cmd.Context(), req)
			if err != nil {
				return err
			}

			for _, m := range matches {
				if rawJSON {
					// Events pass through exactly as rg emitted them.
					line, err := json.Marshal(m)
					if err != nil {
						return err
					}
					fmt.Fprintln(app.Out, string(line))
					continue
				}
				fmt.Fprintf(app.Out, "%s:%d:%d:%s\n",
					m.Path(), m.LineNumber(), m.Column(), strings.TrimRight(m.LineText(), "\n"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "base directory (default: home directory)")
	cmd.Flags().BoolVar(&repo, "repo", false, "scope the search to the enclosing git repository")
	cmd.Flags().BoolVarP(&caseSensitive, "case-sensitive", "s", false, "match case exactly")
	cmd.Flags().BoolVar(&smartCase, "smart-case", false, "derive case sensitivity from the pattern")
	cmd.Flags().BoolVarP(&follow, "follow", "L", false, "follow symbolic links")
	cmd.Flags().BoolVar(&hidden, "hidden", false, "search hidden files and directories")
	cmd.Flags().BoolVar(&rawJSON, "json", false, "emit raw rg match events as JSON lines")

	return cmd
}
