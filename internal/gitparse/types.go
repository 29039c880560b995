package gitparse

// FileStatus classifies how a file changed within a diff.
type FileStatus int

const (
	// StatusModified is the default for a diff section until a header
	// line says otherwise.
	StatusModified FileStatus = iota
	StatusAdded
	StatusDeleted
	StatusRenamed
)

func (s FileStatus) String() string {
	switch s {
	case StatusAdded:
		return "added"
	case StatusDeleted:
		return "deleted"
	case StatusRenamed:
		return "renamed"
	default:
		return "modified"
	}
}

// MarshalText renders the status as its lowercase name in JSON output.
func (s FileStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// LineKind classifies a single line within a hunk.
type LineKind int

const (
	LineContext LineKind = iota
	LineAdded
	LineRemoved
)

func (k LineKind) String() string {
	switch k {
	case LineAdded:
		return "added"
	case LineRemoved:
		return "removed"
	default:
		return "context"
	}
}

// MarshalText renders the kind as its lowercase name in JSON output.
func (k LineKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// FileDiff is one changed file within a diff, in the order its section
// appeared. OldPath is set exactly when Status is StatusRenamed. Binary
// files never carry hunks.
type FileDiff struct {
	Path    string     `json:"path"`
	Status  FileStatus `json:"status"`
	OldPath string     `json:"old_path,omitempty"`
	Hunks   []DiffHunk `json:"hunks"`
	Binary  bool       `json:"binary"`
}

// DiffHunk is one contiguous change region. Lines appear exactly in the
// order they were read.
type DiffHunk struct {
	OldStart int        `json:"old_start"`
	OldLines int        `json:"old_lines"`
	NewStart int        `json:"new_start"`
	NewLines int        `json:"new_lines"`
	Header   string     `json:"header"`
	Lines    []DiffLine `json:"lines"`
}

// DiffLine is one line of a hunk with its leading marker stripped.
type DiffLine struct {
	Kind    LineKind `json:"kind"`
	Content string   `json:"content"`
}

// DiffStats aggregates line counts across a set of file diffs.
type DiffStats struct {
	FilesChanged int `json:"files_changed"`
	Insertions   int `json:"insertions"`
	Deletions    int `json:"deletions"`
}

// CommitInfo is one commit from the log. Message holds the full body and
// may be empty; Timestamp is unix seconds and zero when unparsable.
type CommitInfo struct {
	Hash        string `json:"hash"`
	ShortHash   string `json:"short_hash"`
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
	Timestamp   int64  `json:"timestamp"`
	Summary     string `json:"summary"`
	Message     string `json:"message"`
}

// WorktreeStatus aggregates porcelain status lines into counters.
// IsClean is true exactly when all four counters are zero.
type WorktreeStatus struct {
	Modified   int  `json:"modified"`
	Staged     int  `json:"staged"`
	Untracked  int  `json:"untracked"`
	Conflicted int  `json:"conflicted"`
	IsClean    bool `json:"is_clean"`
}
