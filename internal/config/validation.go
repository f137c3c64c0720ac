package config

import (
	"fmt"
	"strings"
)

// Validate checks config values for correctness.
// Returns an error listing every invalid value.
func (c *Config) Validate() error {
	var errs []string

	if c.Search.FdPath == "" {
		errs = append(errs, "search.fd_path must not be empty")
	}
	if c.Search.RgPath == "" {
		errs = append(errs, "search.rg_path must not be empty")
	}
	if c.Search.MaxScanTokenSize < 1 {
		errs = append(errs, "search.max_scan_token_size must be >= 1")
	}
	if c.Search.InitialScannerBufferSize < 1 {
		errs = append(errs, "search.initial_scanner_buffer_size must be >= 1")
	}
	if c.Search.InitialScannerBufferSize > c.Search.MaxScanTokenSize {
		errs = append(errs, "search.initial_scanner_buffer_size must be <= search.max_scan_token_size")
	}

	if c.UI.DebounceMs < 0 {
		errs = append(errs, "ui.debounce_ms must be >= 0")
	}
	if c.UI.VisibleResults < 1 {
		errs = append(errs, "ui.visible_results must be >= 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}
