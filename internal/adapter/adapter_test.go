package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/chiral-sh/chiral/internal/tool/finder"
	"github.com/chiral-sh/chiral/internal/tool/grep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockFinder struct {
	req     *finder.FindRequest
	results []string
	err     error
}

func (m *mockFinder) Run(ctx context.Context, req *finder.FindRequest) ([]string, error) {
	m.req = req
	return m.results, m.err
}

type mockSearcher struct {
	req     *grep.SearchRequest
	results []grep.MatchEvent
	err     error
}

func (m *mockSearcher) Run(ctx context.Context, req *grep.SearchRequest) ([]grep.MatchEvent, error) {
	m.req = req
	return m.results, m.err
}

func TestFindFilesAdapter_DecodesArgs(t *testing.T) {
	mock := &mockFinder{results: []string{"/home/user/a.go"}}
	tool := NewFindFilesAdapter(mock)

	assert.Equal(t, "find_files", tool.Name())

	out, err := tool.Execute(context.Background(), map[string]any{
		"pattern":        "*.go",
		"search_path":    "/home/user",
		"case_sensitive": true,
		"types":          []string{"file"},
	})
	require.NoError(t, err)

	require.NotNil(t, mock.req)
	assert.Equal(t, "*.go", mock.req.Pattern)
	assert.Equal(t, "/home/user", mock.req.SearchPath)
	assert.True(t, mock.req.CaseSensitive)
	assert.Equal(t, []finder.EntryType{finder.EntryFile}, mock.req.Types)

	var paths []string
	require.NoError(t, json.Unmarshal([]byte(out), &paths))
	assert.Equal(t, []string{"/home/user/a.go"}, paths)
}

func TestFindFilesAdapter_ValidationFailure(t *testing.T) {
	tool := NewFindFilesAdapter(&mockFinder{})

	_, err := tool.Execute(context.Background(), map[string]any{})
	require.Error(t, err)
	var patternErr *finder.PatternRequiredError
	assert.ErrorAs(t, err, &patternErr)
}

func TestFindFilesAdapter_BadArgType(t *testing.T) {
	tool := NewFindFilesAdapter(&mockFinder{})

	_, err := tool.Execute(context.Background(), map[string]any{
		"pattern":        "*.go",
		"case_sensitive": "yes please",
	})
	assert.ErrorContains(t, err, "invalid arguments")
}

func TestSearchTextAdapter_PassesThroughEvents(t *testing.T) {
	events := []grep.MatchEvent{
		{"type": "match", "data": map[string]any{"path": map[string]any{"text": "/a.go"}, "line_number": float64(4)}},
	}
	mock := &mockSearcher{results: events}
	tool := NewSearchTextAdapter(mock)

	out, err := tool.Execute(context.Background(), map[string]any{
		"pattern":     "TODO",
		"smart_case":  true,
		"search_path": "/srv",
	})
	require.NoError(t, err)

	require.NotNil(t, mock.req)
	assert.True(t, mock.req.SmartCase)
	assert.Equal(t, "/srv", mock.req.SearchPath)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "match", decoded[0]["type"])
}

func TestSearchTextAdapter_ToolErrorPropagates(t *testing.T) {
	boom := errors.New("rg exploded")
	tool := NewSearchTextAdapter(&mockSearcher{err: boom})

	_, err := tool.Execute(context.Background(), map[string]any{"pattern": "x"})
	assert.ErrorIs(t, err, boom)
}
