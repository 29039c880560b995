//go:build integration

package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

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

// makeCommit creates a file in dir and commits it.
func makeCommit(t *testing.T, dir, filename string) {
	t.Helper()

	filePath := filepath.Join(dir, filename)
	if err := os.WriteFile(filePath, []byte("content for "+filename+"\n"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	runGitCommand(t, dir, "git", "add", filename)
	runGitCommand(t, dir, "git", "commit", "-m", "Add "+filename)
}

// makeCommitWithDate creates a commit with a fixed author and committer
// date (RFC 3339, e.g. "2024-01-15T12:00:00Z").
func makeCommitWithDate(t *testing.T, dir, filename, date string) {
	t.Helper()

	filePath := filepath.Join(dir, filename)
	if err := os.WriteFile(filePath, []byte("content for "+filename+"\n"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	runGitCommand(t, dir, "git", "add", filename)

	cmd := exec.Command("git", "commit", "-m", "Add "+filename, "--date", date)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_COMMITTER_DATE="+date)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to run git commit: %v\n%s", err, out)
	}
}

// makeDirty creates an uncommitted untracked file in a worktree.
func makeDirty(t *testing.T, worktreePath string) {
	t.Helper()

	filePath := filepath.Join(worktreePath, "dirty.txt")
	if err := os.WriteFile(filePath, []byte("uncommitted changes\n"), 0644); err != nil {
		t.Fatalf("failed to create dirty file: %v", err)
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
