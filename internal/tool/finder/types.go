package finder

// EntryType selects which filesystem entry kinds a file search reports.
type EntryType string

const (
	EntryFile      EntryType = "file"
	EntryDirectory EntryType = "directory"
	EntrySymlink   EntryType = "symlink"
)

// AllEntryTypes is the default filter set: everything fd can report
// for the kinds this tool exposes.
var AllEntryTypes = []EntryType{EntryFile, EntryDirectory, EntrySymlink}

// FindRequest represents the parameters for one file search.
type FindRequest struct {
	// Pattern is the fd search pattern. Required.
	Pattern string `json:"pattern" mapstructure:"pattern"`
	// SearchPath is the base directory. Empty means the configured
	// default, falling back to the caller's home directory.
	SearchPath string `json:"search_path,omitempty" mapstructure:"search_path"`
	// CaseSensitive matches case exactly; the default is insensitive.
	CaseSensitive bool `json:"case_sensitive,omitempty" mapstructure:"case_sensitive"`
	// Types restricts results to the given entry kinds.
	// Empty means all of file, directory and symlink.
	Types []EntryType `json:"types,omitempty" mapstructure:"types"`
}

// Validate checks the request for well-formedness.
func (r *FindRequest) Validate() error {
	if r.Pattern == "" {
		return &PatternRequiredError{}
	}
	for _, t := range r.Types {
		switch t {
		case EntryFile, EntryDirectory, EntrySymlink:
		default:
			return &UnknownEntryTypeError{Value: string(t)}
		}
	}
	return nil
}
