package grep

// SearchRequest represents the parameters for one text search.
type SearchRequest struct {
	// Pattern is the rg regex pattern. Required.
	Pattern string `json:"pattern" mapstructure:"pattern"`
	// SearchPath is the base directory. Empty means the configured
	// default, falling back to the caller's home directory.
	SearchPath string `json:"search_path,omitempty" mapstructure:"search_path"`

	// CaseSensitive matches case exactly; the default is insensitive.
	CaseSensitive bool `json:"case_sensitive,omitempty" mapstructure:"case_sensitive"`
	// SmartCase lets rg pick sensitivity from the pattern's casing.
	SmartCase bool `json:"smart_case,omitempty" mapstructure:"smart_case"`
	// FollowSymlinks traverses symbolic links.
	FollowSymlinks bool `json:"follow_symlinks,omitempty" mapstructure:"follow_symlinks"`
	// SearchHidden includes hidden files and directories.
	SearchHidden bool `json:"search_hidden,omitempty" mapstructure:"search_hidden"`
}

// Validate checks the request for well-formedness.
func (r *SearchRequest) Validate() error {
	if r.Pattern == "" {
		return &PatternRequiredError{}
	}
	return nil
}

// MatchEvent is one decoded "match" event from rg's JSON Lines output.
// The event is passed through verbatim: its schema is ripgrep's contract,
// not ours, so it stays an open map. The accessor methods pull out the
// well-known fields and return zero values when the shape is unexpected.
type MatchEvent map[string]any

func (e MatchEvent) section(key string) map[string]any {
	m, _ := e[key].(map[string]any)
	return m
}

func nestedText(m map[string]any, key string) string {
	inner, _ := m[key].(map[string]any)
	s, _ := inner["text"].(string)
	return s
}

// Path returns the file the match was found in.
func (e MatchEvent) Path() string {
	return nestedText(e.section("data"), "path")
}

// LineNumber returns the 1-based line number of the match.
func (e MatchEvent) LineNumber() int {
	n, _ := e.section("data")["line_number"].(float64)
	return int(n)
}

// LineText returns the matched line as rg emitted it.
func (e MatchEvent) LineText() string {
	return nestedText(e.section("data"), "lines")
}

// Column returns the 1-based column of the first submatch, or 1 when
// the event carries no submatch offsets.
func (e MatchEvent) Column() int {
	subs, _ := e.section("data")["submatches"].([]any)
	if len(subs) == 0 {
		return 1
	}
	first, _ := subs[0].(map[string]any)
	start, _ := first["start"].(float64)
	return int(start) + 1
}
