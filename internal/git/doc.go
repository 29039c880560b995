// Package git runs repository queries by shelling out to the git CLI.
//
// All operations call the git binary directly rather than linking a Go
// git library. This keeps behavior consistent with the user's own git
// installation and configuration. Raw command output is handed to
// [github.com/grovekit/grove/internal/gitparse] for parsing; this
// package owns process invocation, error surfacing, and the fan-out
// across worktrees.
//
// # Inspection
//
//   - [ListWorktrees]: enumerate a repository's worktrees with head info
//   - [AttachStatuses]: populate worktree status counters concurrently
//   - [Status]: porcelain status counters for one worktree
//   - [CommitHistory]: a page of commit records
//   - [GetCommitDiff], [GetWorkingDiff]: parsed diffs with stats
//   - [ListBranches]: local and remote branches with checkout markers
//
// # Management
//
//   - [AddWorktree]: create a worktree, optionally on a new branch
//   - [RemoveWorktree]: remove a worktree, optionally forced
//   - [PruneWorktrees]: drop stale worktree bookkeeping
//
// Every call takes a context and returns an error carrying git's stderr
// when the underlying command fails. Per-worktree failures during batch
// loads degrade to [LoadWarning] values instead of aborting the batch.
package git
