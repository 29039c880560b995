// Package history tracks recently accessed worktrees.
// This powers `grove path` with no arguments and recency ordering of the
// interactive worktree picker.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"
)

// maxEntries caps the history file size; the oldest entries are evicted first.
const maxEntries = 50

// Entry is a single tracked worktree.
type Entry struct {
	Path        string    `json:"path"`
	RepoName    string    `json:"repo_name"`
	Branch      string    `json:"branch"`
	AccessCount int       `json:"access_count"`
	LastAccess  time.Time `json:"last_access"`
}

// History holds all tracked worktrees.
type History struct {
	Entries []Entry `json:"entries"`
}

// Load reads the history from the given file.
// Returns an empty history if the file doesn't exist.
func Load(path string) (*History, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &History{}, nil
		}
		return nil, fmt.Errorf("read history: %w", err)
	}

	var h History
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("parse history: %w", err)
	}

	return &h, nil
}

// Save writes the history to the given file atomically.
func (h *History) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

// FindByPath returns the entry for the given worktree path, or nil.
func (h *History) FindByPath(path string) *Entry {
	for i := range h.Entries {
		if h.Entries[i].Path == path {
			return &h.Entries[i]
		}
	}
	return nil
}

// RemoveByPath drops the entry for the given worktree path.
// Returns false if no entry matched.
func (h *History) RemoveByPath(path string) bool {
	for i := range h.Entries {
		if h.Entries[i].Path == path {
			h.Entries = slices.Delete(h.Entries, i, i+1)
			return true
		}
	}
	return false
}

// RemoveStale drops entries whose worktree path no longer exists on disk.
// Returns the number of entries removed.
func (h *History) RemoveStale() int {
	kept := h.Entries[:0]
	removed := 0
	for _, e := range h.Entries {
		if _, err := os.Stat(e.Path); err != nil {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	h.Entries = kept
	return removed
}

// SortByRecency orders entries most recently accessed first.
func (h *History) SortByRecency() {
	slices.SortFunc(h.Entries, func(a, b Entry) int {
		return b.LastAccess.Compare(a.LastAccess)
	})
}

// RecordAccess marks the given worktree as accessed now.
// Existing entries have their access count incremented; new entries evict
// the oldest once the cap is reached.
func RecordAccess(path, repoName, branch, historyFile string) error {
	h, err := Load(historyFile)
	if err != nil {
		return err
	}

	if e := h.FindByPath(path); e != nil {
		e.AccessCount++
		e.LastAccess = time.Now()
		e.RepoName = repoName
		e.Branch = branch
	} else {
		h.Entries = append(h.Entries, Entry{
			Path:        path,
			RepoName:    repoName,
			Branch:      branch,
			AccessCount: 1,
			LastAccess:  time.Now(),
		})
	}

	for len(h.Entries) > maxEntries {
		oldest := 0
		for i := range h.Entries {
			if h.Entries[i].LastAccess.Before(h.Entries[oldest].LastAccess) {
				oldest = i
			}
		}
		h.Entries = slices.Delete(h.Entries, oldest, oldest+1)
	}

	return h.Save(historyFile)
}

// GetMostRecent returns the path of the most recently accessed worktree.
// Returns empty string if no history exists.
func GetMostRecent(historyFile string) (string, error) {
	h, err := Load(historyFile)
	if err != nil {
		return "", err
	}

	var best *Entry
	for i := range h.Entries {
		if best == nil || h.Entries[i].LastAccess.After(best.LastAccess) {
			best = &h.Entries[i]
		}
	}
	if best == nil {
		return "", nil
	}
	return best.Path, nil
}
