package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Search SearchConfig `json:"search"`
	UI     UIConfig     `json:"ui"`
}

// SearchConfig configures the fd and rg wrappers.
type SearchConfig struct {
	// FdPath is the executable used for file searches. It may be a bare
	// name resolved via PATH or an absolute path (e.g. a pinned version).
	FdPath string `json:"fd_path"` // Default: "fd"
	// RgPath is the executable used for text searches.
	RgPath string `json:"rg_path"` // Default: "rg"
	// DefaultSearchPath is used when a request has no base path.
	// Empty means the caller's home directory, resolved at call time.
	DefaultSearchPath string `json:"default_search_path"` // Default: ""

	// Scanner sizing for draining subprocess output.
	MaxScanTokenSize         int `json:"max_scan_token_size"`         // Default: 10 * 1024 * 1024 (10MB)
	InitialScannerBufferSize int `json:"initial_scanner_buffer_size"` // Default: 64 * 1024 (64KB)
}

// UIConfig configures the interactive TUI.
type UIConfig struct {
	// Editor opens selected matches. Empty means auto-detect
	// ($EDITOR, then code-like editors on PATH).
	Editor string `json:"editor"` // Default: ""

	DebounceMs     int `json:"debounce_ms"`     // Default: 250
	VisibleResults int `json:"visible_results"` // Default: 10
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			FdPath:                   "fd",
			RgPath:                   "rg",
			DefaultSearchPath:        "",
			MaxScanTokenSize:         10 * 1024 * 1024,
			InitialScannerBufferSize: 64 * 1024,
		},
		UI: UIConfig{
			Editor:         "",
			DebounceMs:     250,
			VisibleResults: 10,
		},
	}
}
