// Package finder wraps the fd command-line tool. It builds an argument
// list from a typed request, runs fd, and returns the reported paths in
// the order fd emits them. All matching and traversal is fd's job; this
// package only forwards the caller's intent.
package finder

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/chiral-sh/chiral/internal/config"
	"github.com/chiral-sh/chiral/internal/tool/shell"
)

// homeResolver supplies the fallback base path when a request has none.
type homeResolver interface {
	UserHomeDir() (string, error)
}

// commandExecutor defines the interface for running the fd process.
type commandExecutor interface {
	Start(ctx context.Context, command []string, opts shell.ProcessOptions) (shell.Process, io.Reader, io.Reader, error)
}

// Finder handles file search operations by shelling out to fd.
// The executable path is fixed at construction so multiple Finders can
// pin different fd builds independently.
type Finder struct {
	executable string
	executor   commandExecutor
	home       homeResolver
	config     *config.Config
}

// NewFinder creates a new Finder with injected dependencies.
func NewFinder(executor commandExecutor, home homeResolver, cfg *config.Config) *Finder {
	return &Finder{
		executable: cfg.Search.FdPath,
		executor:   executor,
		home:       home,
		config:     cfg,
	}
}

// Run executes a file search and returns the matched paths in emission
// order, trailing line terminators stripped. No deduplication, sorting or
// limiting is applied.
//
// fd exit status 1 is treated as a successful search with whatever was
// emitted (fd uses it for "nothing matched" and partial traversal
// failures); status 2 and above is a command failure.
func (f *Finder) Run(ctx context.Context, req *FindRequest) ([]string, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	basePath, err := f.basePath(req.SearchPath)
	if err != nil {
		return nil, err
	}

	cmd := []string{f.executable}
	if req.CaseSensitive {
		cmd = append(cmd, "--case-sensitive")
	} else {
		cmd = append(cmd, "--ignore-case")
	}
	cmd = append(cmd, "--absolute-path")

	types := req.Types
	if len(types) == 0 {
		types = AllEntryTypes
	}
	// Disabled filters are omitted outright, never passed as empty
	// placeholder arguments.
	for _, t := range types {
		cmd = append(cmd, "--type", string(t))
	}

	cmd = append(cmd, "--search-path", basePath, "--color=never", req.Pattern)

	proc, stdout, stderr, err := f.executor.Start(ctx, cmd, shell.ProcessOptions{})
	if err != nil {
		return nil, &shell.CommandError{Cmd: f.executable, Stage: "start", Cause: err}
	}

	// Drain stderr so fd can never block on a full pipe; its content is
	// not part of the contract.
	stderrDone := make(chan struct{})
	go func() {
		defer close(stderrDone)
		_, _ = io.Copy(io.Discard, stderr)
	}()

	matches := []string{}
	scanner := bufio.NewScanner(stdout)
	buf := make([]byte, 0, f.config.Search.InitialScannerBufferSize)
	scanner.Buffer(buf, f.config.Search.MaxScanTokenSize)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		matches = append(matches, line)
	}

	if err := scanner.Err(); err != nil {
		<-stderrDone
		_ = proc.Wait()
		return nil, &shell.CommandError{Cmd: f.executable, Stage: "read output", Cause: err}
	}

	<-stderrDone
	if err := proc.Wait(); err != nil {
		if shell.ExitCode(err) == 1 {
			return matches, nil
		}
		return nil, &shell.CommandError{Cmd: f.executable, Stage: "execution", Cause: err}
	}

	return matches, nil
}

func (f *Finder) basePath(requested string) (string, error) {
	if requested != "" {
		return requested, nil
	}
	if p := f.config.Search.DefaultSearchPath; p != "" {
		return p, nil
	}
	home, err := f.home.UserHomeDir()
	if err != nil {
		return "", &HomeDirError{Cause: err}
	}
	return home, nil
}
