//go:build integration

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/grovekit/grove/internal/log"
	"github.com/grovekit/grove/internal/output"
)

// testContext returns a context carrying a discarded logger and a
// printer writing into the returned buffer, mirroring what Execute
// sets up for real runs.
func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(io.Discard, false, false))
	ctx = output.WithPrinter(ctx, &buf)
	return ctx, &buf
}

// resolvePath resolves symlinks in a path. Needed on macOS where /var
// is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// setupTestRepo creates a git repo with an initial commit in dir/name.
// The default branch is pinned to main regardless of host git config.
func setupTestRepo(t *testing.T, dir, name string) string {
	t.Helper()

	dir = resolvePath(t, dir)

	repoPath := filepath.Join(dir, name)
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	runGitCommand(t, repoPath, "git", "init", "-b", "main")
	runGitCommand(t, repoPath, "git", "config", "user.email", "test@test.com")
	runGitCommand(t, repoPath, "git", "config", "user.name", "Test User")
	runGitCommand(t, repoPath, "git", "config", "commit.gpgsign", "false")

	readmePath := filepath.Join(repoPath, "README.md")
	if err := os.WriteFile(readmePath, []byte("# "+name+"\n"), 0644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}

	runGitCommand(t, repoPath, "git", "add", "README.md")
	runGitCommand(t, repoPath, "git", "commit", "-m", "Initial commit")

	return repoPath
}

// setupWorktree creates a worktree with a new branch.
func setupWorktree(t *testing.T, repoPath, worktreePath, branch string) {
	t.Helper()
	runGitCommand(t, repoPath, "git", "worktree", "add", "-b", branch, worktreePath)
}

// createBranch creates a branch without checking it out.
func createBranch(t *testing.T, repoPath, branch string) {
	t.Helper()
	runGitCommand(t, repoPath, "git", "branch", branch)
}

// makeDirty creates an uncommitted untracked file in a worktree.
func makeDirty(t *testing.T, worktreePath string) {
	t.Helper()

	filePath := filepath.Join(worktreePath, "dirty.txt")
	if err := os.WriteFile(filePath, []byte("uncommitted changes\n"), 0644); err != nil {
		t.Fatalf("failed to create dirty file: %v", err)
	}
}

// makeCommitInWorktree creates a file and commits it.
func makeCommitInWorktree(t *testing.T, worktreePath, filename string) {
	t.Helper()

	filePath := filepath.Join(worktreePath, filename)
	if err := os.WriteFile(filePath, []byte("content for "+filename+"\n"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	runGitCommand(t, worktreePath, "git", "add", filename)
	runGitCommand(t, worktreePath, "git", "commit", "-m", "Add "+filename)
}

// makeCommitInWorktreeWithDate creates a commit with a fixed author and
// committer date (RFC 3339, e.g. "2024-01-15T12:00:00Z").
func makeCommitInWorktreeWithDate(t *testing.T, worktreePath, filename, date string) {
	t.Helper()

	filePath := filepath.Join(worktreePath, filename)
	if err := os.WriteFile(filePath, []byte("content for "+filename+"\n"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	runGitCommand(t, worktreePath, "git", "add", filename)

	cmd := exec.Command("git", "commit", "-m", "Add "+filename, "--date", date)
	cmd.Dir = worktreePath
	cmd.Env = append(os.Environ(), "GIT_COMMITTER_DATE="+date)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to run git commit: %v\n%s", err, out)
	}
}

// appendToFile appends a line to a tracked file so it shows as
// modified.
func appendToFile(t *testing.T, path, line string) {
	t.Helper()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer f.Close()
	if _, err := f.WriteString(line + "\n"); err != nil {
		t.Fatalf("failed to append to %s: %v", path, err)
	}
}

// runGitCommand runs a command and fails the test on error.
func runGitCommand(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run %v: %v\n%s", args, err, out)
	}
	return string(out)
}
