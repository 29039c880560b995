package static

import (
	"fmt"
	"strings"
	"time"

	"github.com/grovekit/grove/internal/gitparse"
	"github.com/grovekit/grove/internal/ui/styles"
)

// RenderDiff renders parsed file diffs with theme colors: additions
// green, deletions red, hunk headers in the info color and file headers
// bold. Binary files and renames are annotated. Writing the result
// through a colorprofile writer strips the colors on non-TTY output.
func RenderDiff(files []gitparse.FileDiff) string {
	var b strings.Builder

	for i, f := range files {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(renderFileHeader(f))
		b.WriteByte('\n')

		if f.Binary {
			b.WriteString(styles.MutedStyle.Render("Binary file differs"))
			b.WriteByte('\n')
			continue
		}

		for _, h := range f.Hunks {
			b.WriteString(styles.InfoStyle.Render(h.Header))
			b.WriteByte('\n')
			for _, l := range h.Lines {
				switch l.Kind {
				case gitparse.LineAdded:
					b.WriteString(styles.SuccessStyle.Render("+" + l.Content))
				case gitparse.LineRemoved:
					b.WriteString(styles.ErrorStyle.Render("-" + l.Content))
				default:
					b.WriteString(" " + l.Content)
				}
				b.WriteByte('\n')
			}
		}
	}

	return b.String()
}

func renderFileHeader(f gitparse.FileDiff) string {
	header := styles.Bold.Render(f.Path)

	switch f.Status {
	case gitparse.StatusAdded:
		header += styles.SuccessStyle.Render(" (new file)")
	case gitparse.StatusDeleted:
		header += styles.ErrorStyle.Render(" (deleted)")
	case gitparse.StatusRenamed:
		if f.OldPath != "" {
			header += styles.MutedStyle.Render(" (renamed from " + f.OldPath + ")")
		} else {
			header += styles.MutedStyle.Render(" (renamed)")
		}
	}
	if f.Binary {
		header += styles.MutedStyle.Render(" (binary)")
	}

	return header
}

// RenderFileStats renders one line per file with its insertion and
// deletion counts, followed by the totals line. Binary files show a
// marker instead of counts.
func RenderFileStats(files []gitparse.FileDiff) string {
	if len(files) == 0 {
		return ""
	}

	var b strings.Builder
	for _, f := range files {
		b.WriteString(" ")
		b.WriteString(renderFileHeader(f))

		if f.Binary {
			b.WriteByte('\n')
			continue
		}

		var ins, del int
		for _, h := range f.Hunks {
			for _, l := range h.Lines {
				switch l.Kind {
				case gitparse.LineAdded:
					ins++
				case gitparse.LineRemoved:
					del++
				}
			}
		}
		if ins > 0 {
			b.WriteString(" " + styles.SuccessStyle.Render(fmt.Sprintf("+%d", ins)))
		}
		if del > 0 {
			b.WriteString(" " + styles.ErrorStyle.Render(fmt.Sprintf("-%d", del)))
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(RenderDiffStats(gitparse.ComputeStats(files)))
	b.WriteByte('\n')

	return b.String()
}

// RenderDiffStats renders a one-line change summary in git's style:
// "3 files changed, 4 insertions(+), 2 deletions(-)". Zero insertion
// and deletion parts are omitted; no changes renders as empty.
func RenderDiffStats(stats gitparse.DiffStats) string {
	if stats.FilesChanged == 0 {
		return ""
	}

	noun := "files"
	if stats.FilesChanged == 1 {
		noun = "file"
	}
	parts := []string{fmt.Sprintf("%d %s changed", stats.FilesChanged, noun)}

	if stats.Insertions > 0 {
		parts = append(parts, styles.SuccessStyle.Render(fmt.Sprintf("%d insertions(+)", stats.Insertions)))
	}
	if stats.Deletions > 0 {
		parts = append(parts, styles.ErrorStyle.Render(fmt.Sprintf("%d deletions(-)", stats.Deletions)))
	}

	return strings.Join(parts, ", ")
}

// RenderCommit renders a commit header in git log style: hash line,
// author, date and the indented message body.
func RenderCommit(c gitparse.CommitInfo) string {
	var b strings.Builder

	b.WriteString(styles.WarningStyle.Render("commit " + c.Hash))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Author: %s <%s>\n", c.AuthorName, c.AuthorEmail)
	fmt.Fprintf(&b, "Date:   %s\n", time.Unix(c.Timestamp, 0).Format("Mon Jan 2 15:04:05 2006 -0700"))
	b.WriteByte('\n')

	message := c.Message
	if message == "" {
		message = c.Summary
	}
	for _, line := range strings.Split(strings.TrimRight(message, "\n"), "\n") {
		b.WriteString("    ")
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String()
}
