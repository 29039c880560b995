package styles

import (
	"fmt"
	"strings"
)

// Symbols holds the icon/symbol set based on nerdfont configuration
type Symbols struct {
	Main       string // marks the main worktree
	Clean      string // worktree with no local changes
	Dirty      string // worktree with uncommitted changes
	Staged     string // staged file count prefix
	Modified   string // modified file count prefix
	Untracked  string // untracked file count prefix
	Conflicted string // conflicted file count prefix
}

// Default symbols (no patched font required)
var defaultSymbols = Symbols{
	Main:       "*",
	Clean:      "✓",
	Dirty:      "●",
	Staged:     "+",
	Modified:   "!",
	Untracked:  "?",
	Conflicted: "✕",
}

// Nerd font symbols
var nerdfontSymbols = Symbols{
	Main:       "", // nf-fa-home
	Clean:      "", // nf-fa-check
	Dirty:      "", // nf-oct-dot_fill
	Staged:     "+",
	Modified:   "!",
	Untracked:  "?",
	Conflicted: "✕",
}

// useNerdfont tracks whether nerd font symbols are enabled
var useNerdfont bool

// currentSymbols holds the active symbol set
var currentSymbols = defaultSymbols

// SetNerdfont enables or disables nerd font symbols
func SetNerdfont(enabled bool) {
	useNerdfont = enabled
	if enabled {
		currentSymbols = nerdfontSymbols
	} else {
		currentSymbols = defaultSymbols
	}
}

// NerdfontEnabled returns whether nerd font symbols are enabled
func NerdfontEnabled() bool {
	return useNerdfont
}

// CurrentSymbols returns the current symbol set
func CurrentSymbols() Symbols {
	return currentSymbols
}

// MainSymbol returns the marker for the main worktree
func MainSymbol() string {
	return currentSymbols.Main
}

// CleanSymbol returns the styled marker for a clean worktree
func CleanSymbol() string {
	return SuccessStyle.Render(currentSymbols.Clean)
}

// DirtySymbol returns the styled marker for a dirty worktree
func DirtySymbol() string {
	return WarningStyle.Render(currentSymbols.Dirty)
}

// FormatChangeCounts returns a styled "+N !M ?K" change summary.
// Zero counts are omitted; returns empty string when everything is clean.
func FormatChangeCounts(staged, modified, untracked int) string {
	var parts []string
	if staged > 0 {
		parts = append(parts, SuccessStyle.Render(fmt.Sprintf("%s%d", currentSymbols.Staged, staged)))
	}
	if modified > 0 {
		parts = append(parts, WarningStyle.Render(fmt.Sprintf("%s%d", currentSymbols.Modified, modified)))
	}
	if untracked > 0 {
		parts = append(parts, MutedStyle.Render(fmt.Sprintf("%s%d", currentSymbols.Untracked, untracked)))
	}
	return strings.Join(parts, " ")
}
