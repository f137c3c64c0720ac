package adapter

import (
	"context"

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

// NewFindFilesAdapter wraps the fd tool as a generic Tool.
func NewFindFilesAdapter(f fileFinder) Tool {
	return NewBaseAdapter(
		"find_files",
		"Searches for files, directories and symlinks matching a pattern",
		func(ctx context.Context, req *finder.FindRequest) ([]string, error) {
			return f.Run(ctx, req)
		},
	)
}

// NewSearchTextAdapter wraps the rg tool as a generic Tool.
func NewSearchTextAdapter(s textSearcher) Tool {
	return NewBaseAdapter(
		"search_text",
		"Searches file contents for a regex pattern",
		func(ctx context.Context, req *grep.SearchRequest) ([]grep.MatchEvent, error) {
			return s.Run(ctx, req)
		},
	)
}
