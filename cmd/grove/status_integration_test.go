//go:build integration

package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

func TestStatus_Clean(t *testing.T) {
	t.Parallel()

	repoDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, repoDir, "myrepo")

	ctx, buf := testContext(t)
	if err := runStatus(ctx, repoPath, "", false); err != nil {
		t.Fatalf("grove status failed: %v", err)
	}

	if !strings.Contains(buf.String(), "clean") {
		t.Errorf("expected 'clean', got: %s", buf.String())
	}
}

func TestStatus_Dirty(t *testing.T) {
	t.Parallel()

	repoDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, repoDir, "myrepo")

	makeDirty(t, repoPath)                                          // untracked
	appendToFile(t, filepath.Join(repoPath, "README.md"), "change") // modified

	ctx, buf := testContext(t)
	if err := runStatus(ctx, repoPath, "", false); err != nil {
		t.Fatalf("grove status failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "modified") {
		t.Errorf("expected 'modified' line, got: %s", out)
	}
	if !strings.Contains(out, "untracked") {
		t.Errorf("expected 'untracked' line, got: %s", out)
	}
	if strings.Contains(out, "staged") {
		t.Errorf("zero counters should be omitted, got: %s", out)
	}
}

func TestStatus_PathArgument(t *testing.T) {
	t.Parallel()

	worktreeDir := resolvePath(t, t.TempDir())
	repoDir := resolvePath(t, t.TempDir())

	repoPath := setupTestRepo(t, repoDir, "myrepo")
	worktreePath := filepath.Join(worktreeDir, "myrepo-feature")
	setupWorktree(t, repoPath, worktreePath, "feature")
	makeDirty(t, worktreePath)

	// Status of the worktree, addressed from the main repo.
	ctx, buf := testContext(t)
	if err := runStatus(ctx, repoPath, worktreePath, false); err != nil {
		t.Fatalf("grove status <path> failed: %v", err)
	}
	if !strings.Contains(buf.String(), "untracked") {
		t.Errorf("expected 'untracked', got: %s", buf.String())
	}

	// The main repo itself stays clean.
	ctx2, buf2 := testContext(t)
	if err := runStatus(ctx2, repoPath, "", false); err != nil {
		t.Fatalf("grove status failed: %v", err)
	}
	if !strings.Contains(buf2.String(), "clean") {
		t.Errorf("expected main repo to be clean, got: %s", buf2.String())
	}
}

func TestStatus_JSON(t *testing.T) {
	t.Parallel()

	repoDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, repoDir, "myrepo")

	makeDirty(t, repoPath)
	runGitCommand(t, repoPath, "git", "add", "dirty.txt") // staged

	ctx, buf := testContext(t)
	if err := runStatus(ctx, repoPath, "", true); err != nil {
		t.Fatalf("grove status --json failed: %v", err)
	}

	var status map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &status); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}

	if status["is_clean"] != false {
		t.Error("expected is_clean false")
	}
	if status["staged"].(float64) != 1 {
		t.Errorf("expected 1 staged file, got %v", status["staged"])
	}
	if status["untracked"].(float64) != 0 {
		t.Errorf("expected 0 untracked files after staging, got %v", status["untracked"])
	}
}

func TestStatus_OutsideRepoFails(t *testing.T) {
	t.Parallel()

	dir := resolvePath(t, t.TempDir())

	ctx, _ := testContext(t)
	if err := runStatus(ctx, dir, "", false); err == nil {
		t.Fatal("expected error outside a repository")
	}
}
