package format

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DefaultWorktreeFormat is the default format for worktree folder names.
const DefaultWorktreeFormat = "{repo}-{branch}"

// ValidPlaceholders lists all supported placeholders.
var ValidPlaceholders = []string{"{repo}", "{branch}", "{origin}"}

// FormatParams contains the values for placeholder substitution.
type FormatParams struct {
	RepoName   string // folder name of the repo on disk
	BranchName string // branch name as provided
	Origin     string // repo name from the origin URL (callers fall back to RepoName)
}

// placeholderRegex matches {placeholder-name} patterns.
var placeholderRegex = regexp.MustCompile(`\{[a-z-]+\}`)

// ValidateFormat checks if a format string is valid.
// Returns an error if format contains unknown placeholders or none at all.
func ValidateFormat(format string) error {
	for _, match := range placeholderRegex.FindAllString(format, -1) {
		if !isValidPlaceholder(match) {
			return fmt.Errorf("unknown placeholder %q in format %q (valid: %s)",
				match, format, strings.Join(ValidPlaceholders, ", "))
		}
	}

	for _, p := range ValidPlaceholders {
		if strings.Contains(format, p) {
			return nil
		}
	}
	return fmt.Errorf("format %q must contain at least one placeholder (%s)",
		format, strings.Join(ValidPlaceholders, ", "))
}

func isValidPlaceholder(placeholder string) bool {
	for _, valid := range ValidPlaceholders {
		if placeholder == valid {
			return true
		}
	}
	return false
}

// FormatWorktreeName applies the format template to generate a worktree
// folder name. Substituted values are sanitized for use in paths.
func FormatWorktreeName(format string, params FormatParams) string {
	replacer := strings.NewReplacer(
		"{repo}", SanitizeForPath(params.RepoName),
		"{branch}", SanitizeForPath(params.BranchName),
		"{origin}", SanitizeForPath(params.Origin),
	)
	return replacer.Replace(format)
}

// SanitizeForPath replaces characters that are problematic in file paths.
// Replaces: / \ : * ? " < > | with -
func SanitizeForPath(name string) string {
	replacer := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"\"", "-",
		"<", "-",
		">", "-",
		"|", "-",
	)
	return replacer.Replace(name)
}

// PathExistsFunc reports whether a path already exists.
type PathExistsFunc func(path string) bool

// UniqueWorktreePath returns basePath unchanged when it is free, or the
// first "-N" suffixed variant that does not exist yet.
func UniqueWorktreePath(basePath string, exists PathExistsFunc) string {
	if !exists(basePath) {
		return basePath
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", basePath, i)
		if !exists(candidate) {
			return candidate
		}
	}
}

// Truncate shortens s to at most max runes, ending in "..." when cut.
// Values of max below 4 return s unchanged since there is no room for
// the ellipsis.
func Truncate(s string, max int) string {
	if max < 4 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// RelativeTime renders t relative to the current time.
func RelativeTime(t time.Time) string {
	return RelativeTimeFrom(t, time.Now())
}

// RelativeTimeFrom renders t relative to now: "just now" under ten
// seconds, then seconds/minutes/hours, "yesterday", days, and from one
// week on the plain date.
func RelativeTimeFrom(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}

	d := now.Sub(t)
	switch {
	case d < 10*time.Second:
		return "just now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}

	days := int(d.Hours() / 24)
	switch {
	case days == 1:
		return "yesterday"
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	}
	return t.Format("2006-01-02")
}
