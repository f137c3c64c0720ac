// Package main is the entry point for the chiral search CLI.
package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/chiral-sh/chiral/internal/cli"
	"github.com/chiral-sh/chiral/internal/config"
	"github.com/chiral-sh/chiral/internal/tool/finder"
	"github.com/chiral-sh/chiral/internal/tool/fsutil"
	"github.com/chiral-sh/chiral/internal/tool/grep"
	"github.com/chiral-sh/chiral/internal/tool/shell"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}

	// Check that the underlying search tools are installed before
	// accepting any command.
	if _, err := exec.LookPath(cfg.Search.FdPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: fd (%s) is not installed or not in PATH\n", cfg.Search.FdPath)
		fmt.Fprintf(os.Stderr, "Please install fd: https://github.com/sharkdp/fd\n")
		os.Exit(1)
	}
	if _, err := exec.LookPath(cfg.Search.RgPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: ripgrep (%s) is not installed or not in PATH\n", cfg.Search.RgPath)
		fmt.Fprintf(os.Stderr, "Please install ripgrep: https://github.com/BurntSushi/ripgrep\n")
		os.Exit(1)
	}

	executor := shell.NewOSCommandExecutor()
	osFS := fsutil.NewOSFileSystem()

	app := &cli.App{
		Config:   cfg,
		Finder:   finder.NewFinder(executor, osFS, cfg),
		Searcher: grep.NewSearcher(executor, osFS, cfg),
		Out:      os.Stdout,
	}

	if err := cli.NewRootCmd(app).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
