package gitparse

import "strings"

// conflictCodes are the unmerged index/worktree column pairs git reports
// while a merge or rebase has unresolved paths.
var conflictCodes = map[string]bool{
	"UU": true,
	"AA": true,
	"DD": true,
	"AU": true,
	"UA": true,
	"DU": true,
	"UD": true,
}

// ParseStatus aggregates porcelain status output into counters.
//
// The first two bytes of each line are the index and worktree columns.
// Exactly one counter is incremented per line: conflict pairs win over
// everything, "??" counts as untracked, a staged index code (M, A, D, R,
// C) counts as staged, and otherwise a modified or deleted worktree code
// counts as modified. Lines shorter than two bytes and codes matching no
// rule contribute nothing. Empty input is clean.
func ParseStatus(text string) WorktreeStatus {
	var status WorktreeStatus

	for _, line := range strings.Split(text, "\n") {
		if len(line) < 2 {
			continue
		}
		index, worktree := line[0], line[1]

		switch {
		case conflictCodes[line[:2]]:
			status.Conflicted++
		case index == '?' && worktree == '?':
			status.Untracked++
		case index == 'M' || index == 'A' || index == 'D' || index == 'R' || index == 'C':
			status.Staged++
		case worktree == 'M' || worktree == 'D':
			status.Modified++
		}
	}

	status.IsClean = status.Modified == 0 && status.Staged == 0 &&
		status.Untracked == 0 && status.Conflicted == 0
	return status
}
