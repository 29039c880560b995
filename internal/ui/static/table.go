// Package static provides non-interactive terminal output components.
//
// This package contains components for rendering formatted output
// that does not require user interaction: worktree tables, diffs and
// commit headers. Colored output is downsampled (or stripped) by the
// colorprofile writer the commands print through.
package static

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/grovekit/grove/internal/format"
	"github.com/grovekit/grove/internal/git"
	"github.com/grovekit/grove/internal/gitparse"
	"github.com/grovekit/grove/internal/ui/styles"
)

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// maxSubjectLen bounds the SUBJECT column so long commit messages do
// not push the rest of the table off screen.
const maxSubjectLen = 40

// WorktreeHeaders returns the table headers for worktree listings.
func WorktreeHeaders(withStatus bool) []string {
	headers := []string{"NAME", "BRANCH", "HEAD", "SUBJECT", "AGE"}
	if withStatus {
		headers = append(headers, "STATUS")
	}
	return headers
}

// WorktreeRow builds one table row for a worktree listing.
// The main worktree is marked; a detached HEAD shows in place of the
// branch name. The status cell is only built when withStatus is set.
func WorktreeRow(wt git.Worktree, withStatus bool) []string {
	name := wt.Name
	if wt.IsMain {
		name = name + " " + styles.PrimaryStyle.Render(styles.MainSymbol())
	}

	branch := wt.Head.Branch
	if branch == "" {
		branch = styles.MutedStyle.Render("(detached)")
	}

	row := []string{
		name,
		branch,
		wt.Head.CommitSHA,
		format.Truncate(wt.Head.CommitMessage, maxSubjectLen),
		format.RelativeTime(time.Unix(wt.LastCommit, 0)),
	}
	if withStatus {
		row = append(row, StatusCell(wt.Status))
	}
	return row
}

// StatusCell renders the change summary for one worktree.
// A nil status (load failure or not yet attached) renders as "-".
func StatusCell(st *gitparse.WorktreeStatus) string {
	if st == nil {
		return styles.MutedStyle.Render("-")
	}
	if st.IsClean {
		return styles.CleanSymbol()
	}

	cell := styles.FormatChangeCounts(st.Staged, st.Modified, st.Untracked)
	if st.Conflicted > 0 {
		conflict := styles.ErrorStyle.Render(fmt.Sprintf("%s%d", styles.CurrentSymbols().Conflicted, st.Conflicted))
		if cell != "" {
			cell += " "
		}
		cell += conflict
	}
	return cell
}

// BranchHeaders returns the table headers for branch listings.
func BranchHeaders() []string {
	return []string{"BRANCH", "TYPE", "CHECKED OUT"}
}

// BranchRow builds one table row for a branch listing.
func BranchRow(b git.BranchInfo) []string {
	kind := "local"
	if b.IsRemote {
		kind = styles.MutedStyle.Render("remote")
	}

	checkedOut := ""
	if b.IsCheckedOut {
		checkedOut = styles.CleanSymbol()
	}

	return []string{b.Name, kind, checkedOut}
}
