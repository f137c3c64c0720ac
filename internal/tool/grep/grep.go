// Package grep wraps the ripgrep command-line tool. It requests JSON
// Lines output, decodes every line, and keeps only "match" events, in
// emission order and with their fields untouched.
package grep

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/chiral-sh/chiral/internal/config"
	"github.com/chiral-sh/chiral/internal/tool/shell"
)

// homeResolver supplies the fallback base path when a request has none.
type homeResolver interface {
	UserHomeDir() (string, error)
}

// commandExecutor defines the interface for running the rg process.
type commandExecutor interface {
	Start(ctx context.Context, command []string, opts shell.ProcessOptions) (shell.Process, io.Reader, io.Reader, error)
}

// Searcher handles text search operations by shelling out to rg.
// The executable path is fixed at construction.
type Searcher struct {
	executable string
	executor   commandExecutor
	home       homeResolver
	config     *config.Config
}

// NewSearcher creates a new Searcher with injected dependencies.
func NewSearcher(executor commandExecutor, home homeResolver, cfg *config.Config) *Searcher {
	return &Searcher{
		executable: cfg.Search.RgPath,
		executor:   executor,
		home:       home,
		config:     cfg,
	}
}

// Run executes a text search and returns the match events rg reports.
// Non-match events (begin, end, context, summary) are discarded; match
// events keep every field rg emitted. A line that does not decode as
// JSON fails the whole call.
//
// rg exit status 1 means no matches and is not an error; status 2 and
// above is a command failure.
func (s *Searcher) Run(ctx context.Context, req *SearchRequest) ([]MatchEvent, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	basePath, err := s.basePath(req.SearchPath)
	if err != nil {
		return nil, err
	}

	cmd := []string{s.executable}
	if req.CaseSensitive {
		cmd = append(cmd, "--case-sensitive")
	} else {
		cmd = append(cmd, "--ignore-case")
	}
	// Optional flags are present exactly once when enabled, absent otherwise.
	if req.SmartCase {
		cmd = append(cmd, "--smart-case")
	}
	if req.FollowSymlinks {
		cmd = append(cmd, "--follow")
	}
	if req.SearchHidden {
		cmd = append(cmd, "--hidden")
	}
	cmd = append(cmd, "--json", "--no-stats", req.Pattern, basePath)

	proc, stdout, stderr, err := s.executor.Start(ctx, cmd, shell.ProcessOptions{})
	if err != nil {
		return nil, &shell.CommandError{Cmd: s.executable, Stage: "start", Cause: err}
	}

	stderrDone := make(chan struct{})
	go func() {
		defer close(stderrDone)
		_, _ = io.Copy(io.Discard, stderr)
	}()

	matches := []MatchEvent{}
	scanner := bufio.NewScanner(stdout)
	// rg emits one event per line; lines can get long when minified
	// sources match, so the token limit is configurable.
	buf := make([]byte, 0, s.config.Search.InitialScannerBufferSize)
	scanner.Buffer(buf, s.config.Search.MaxScanTokenSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var event map[string]any
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			_ = proc.Kill()
			<-stderrDone
			_ = proc.Wait()
			return nil, &DecodeError{Line: lineNo, Cause: err}
		}

		if event["type"] == "match" {
			matches = append(matches, MatchEvent(event))
		}
	}

	if err := scanner.Err(); err != nil {
		<-stderrDone
		_ = proc.Wait()
		return nil, &shell.CommandError{Cmd: s.executable, Stage: "read output", Cause: err}
	}

	<-stderrDone
	if err := proc.Wait(); err != nil {
		if shell.ExitCode(err) == 1 {
			return matches, nil
		}
		return nil, &shell.CommandError{Cmd: s.executable, Stage: "execution", Cause: err}
	}

	return matches, nil
}

func (s *Searcher) basePath(requested string) (string, error) {
	if requested != "" {
		return requested, nil
	}
	if p := s.config.Search.DefaultSearchPath; p != "" {
		return p, nil
	}
	home, err := s.home.UserHomeDir()
	if err != nil {
		return "", &HomeDirError{Cause: err}
	}
	return home, nil
}
