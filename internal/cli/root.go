// Package cli wires the search tools into a cobra command tree.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chiral-sh/chiral/internal/config"
	"github.com/chiral-sh/chiral/internal/gitutil"
	"github.com/chiral-sh/chiral/internal/tool/finder"
	"github.com/chiral-sh/chiral/internal/tool/grep"
)

// fileFinder runs file searches.
type fileFinder interface {
	Run(ctx context.Context, req *finder.FindRequest) ([]string, error)
}

// textSearcher runs text searches.
type textSearcher interface {
	Run(ctx context.Context, req *grep.SearchRequest) ([]grep.MatchEvent, error)
}

// repoResolver locates the enclosing git repository for --repo.
type repoResolver func() (string, bool)

// App holds the dependencies the commands run against.
type App struct {
	Config   *config.Config
	Finder   fileFinder
	Searcher textSearcher
	Out      io.Writer

	// RepoRoot resolves the --repo scope; defaults to gitutil.CurrentRepoRoot.
	RepoRoot repoResolver
}

func (a *App) repoRoot() (string, bool) {
	if a.RepoRoot != nil {
		return a.RepoRoot()
	}
	return gitutil.CurrentRepoRoot()
}

// searchPath resolves the shared --path/--repo flags into a base path.
// An empty result means the tools fall back to their configured default.
func (a *App) searchPath(path string, repo bool) (string, error) {
	if repo {
		root, ok := a.repoRoot()
		if !ok {
			return "", fmt.Errorf("--repo: not inside a git repository")
		}
		return root, nil
	}
	return path, nil
}

// NewRootCmd builds the chiral command tree.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "chiral",
		Short:         "File and text search on top of fd and ripgrep",
		Long:          "chiral wraps the fd and ripgrep command-line tools behind typed searches,\na scriptable CLI and an interactive finder.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newFindCmd(app))
	root.AddCommand(newGrepCmd(app))
	root.AddCommand(newTUICmd(app))
	root.AddCommand(newVersionCmd(app))

	return root
}
