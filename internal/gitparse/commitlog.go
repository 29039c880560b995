package gitparse

import (
	"strconv"
	"strings"
)

// LogFormat is the git log --format string the commit-log parser is
// pinned to: full hash, short hash, author name, author email, unix
// timestamp, subject, and full body, joined by the unit separator and
// terminated by the record separator. Pass it to git verbatim.
const LogFormat = "%H%x1f%h%x1f%an%x1f%ae%x1f%ct%x1f%s%x1f%B%x1e"

const (
	recordSep = "\x1e"
	fieldSep  = "\x1f"
)

// ParseCommitLog splits separator-delimited log output into commits,
// preserving input order. Records are split on the record separator and
// fields on the unit separator; blank records and records with fewer
// than six fields are dropped silently. The optional seventh field holds
// the full message body, trimmed of surrounding whitespace. A timestamp
// that fails to parse becomes zero rather than rejecting the record.
func ParseCommitLog(text string) []CommitInfo {
	var commits []CommitInfo

	for _, record := range strings.Split(text, recordSep) {
		record = strings.TrimSpace(record)
		if record == "" {
			continue
		}

		fields := strings.Split(record, fieldSep)
		if len(fields) < 6 {
			continue
		}

		timestamp, err := strconv.ParseInt(fields[4], 10, 64)
		if err != nil {
			timestamp = 0
		}

		message := ""
		if len(fields) > 6 {
			message = strings.TrimSpace(fields[6])
		}

		commits = append(commits, CommitInfo{
			Hash:        fields[0],
			ShortHash:   fields[1],
			AuthorName:  fields[2],
			AuthorEmail: fields[3],
			Timestamp:   timestamp,
			Summary:     fields[5],
			Message:     message,
		})
	}

	return commits
}
