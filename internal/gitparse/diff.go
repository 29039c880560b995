package gitparse

import (
	"strconv"
	"strings"
)

// ParseDiff scans unified diff text and returns one FileDiff per
// "diff --git" section, in the order the sections appear. Empty input
// returns an empty list.
//
// The scan holds at most one pending file and one pending hunk. A new
// section flushes both; a new hunk header flushes the pending hunk; end
// of input flushes whatever remains. Header lines that cannot open a
// hunk are skipped, and lines outside any hunk are ignored.
func ParseDiff(text string) []FileDiff {
	var (
		files  []FileDiff
		file   FileDiff
		hunk   DiffHunk
		inFile bool
		inHunk bool
	)

	flushHunk := func() {
		if !inHunk {
			return
		}
		file.Hunks = append(file.Hunks, hunk)
		hunk = DiffHunk{}
		inHunk = false
	}
	flushFile := func() {
		flushHunk()
		if !inFile {
			return
		}
		files = append(files, file)
		file = FileDiff{}
		inFile = false
	}

	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "diff --git "):
			flushFile()
			file = FileDiff{Path: sectionPath(line)}
			inFile = true

		case !inFile:
			// Preamble before the first section.

		case strings.HasPrefix(line, "new file mode"):
			file.Status = StatusAdded

		case strings.HasPrefix(line, "deleted file mode"):
			file.Status = StatusDeleted

		case strings.HasPrefix(line, "rename from "):
			file.OldPath = strings.TrimPrefix(line, "rename from ")
			file.Status = StatusRenamed

		case strings.HasPrefix(line, "Binary files"):
			file.Binary = true

		case strings.HasPrefix(line, "@@ "):
			flushHunk()
			oldStart, oldLines, newStart, newLines, ok := ParseHunkHeader(line)
			if !ok {
				continue
			}
			hunk = DiffHunk{
				OldStart: oldStart,
				OldLines: oldLines,
				NewStart: newStart,
				NewLines: newLines,
				Header:   line,
			}
			inHunk = true

		case inHunk && len(line) > 0:
			switch line[0] {
			case '+':
				hunk.Lines = append(hunk.Lines, DiffLine{Kind: LineAdded, Content: line[1:]})
			case '-':
				hunk.Lines = append(hunk.Lines, DiffLine{Kind: LineRemoved, Content: line[1:]})
			case ' ':
				hunk.Lines = append(hunk.Lines, DiffLine{Kind: LineContext, Content: line[1:]})
			}
		}
	}

	flushFile()
	return files
}

// sectionPath extracts the post-image path from a "diff --git a/x b/y"
// line, falling back to the pre-image name when the b/ marker is missing.
func sectionPath(line string) string {
	if _, after, ok := strings.Cut(line, " b/"); ok {
		return after
	}
	if _, after, ok := strings.Cut(line, " a/"); ok {
		path, _, _ := strings.Cut(after, " ")
		return path
	}
	return ""
}

// ParseHunkHeader parses a header of the form
// "@@ -<oldStart>[,<oldLines>] +<newStart>[,<newLines>] @@", optionally
// followed by function context after the closing "@@". An omitted count
// defaults to 1. ok is false when the two range tokens are missing or do
// not parse; the caller skips such hunks.
func ParseHunkHeader(line string) (oldStart, oldLines, newStart, newLines int, ok bool) {
	body, _, _ := strings.Cut(strings.TrimPrefix(line, "@@ "), " @@")
	tokens := strings.Split(body, " ")
	if len(tokens) < 2 {
		return 0, 0, 0, 0, false
	}
	oldStart, oldLines, ok = parseRange(strings.TrimPrefix(tokens[0], "-"))
	if !ok {
		return 0, 0, 0, 0, false
	}
	newStart, newLines, ok = parseRange(strings.TrimPrefix(tokens[1], "+"))
	if !ok {
		return 0, 0, 0, 0, false
	}
	return oldStart, oldLines, newStart, newLines, true
}

// parseRange parses "start[,lines]" with a default count of 1.
func parseRange(s string) (start, lines int, ok bool) {
	parts := strings.Split(s, ",")
	start, err := strconv.Atoi(parts[0])
	if err != nil || start < 0 {
		return 0, 0, false
	}
	lines = 1
	if len(parts) > 1 {
		lines, err = strconv.Atoi(parts[1])
		if err != nil || lines < 0 {
			return 0, 0, false
		}
	}
	return start, lines, true
}
