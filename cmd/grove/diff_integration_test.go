//go:build integration

package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiff_NoChanges(t *testing.T) {
	t.Parallel()

	repoDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, repoDir, "myrepo")

	ctx, buf := testContext(t)
	if err := runDiff(ctx, repoPath, "", diffOptions{}); err != nil {
		t.Fatalf("grove diff failed: %v", err)
	}

	if !strings.Contains(buf.String(), "No changes") {
		t.Errorf("expected 'No changes', got: %s", buf.String())
	}
}

func TestDiff_UnstagedModification(t *testing.T) {
	t.Parallel()

	repoDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, repoDir, "myrepo")
	appendToFile(t, filepath.Join(repoPath, "README.md"), "new line")

	ctx, buf := testContext(t)
	if err := runDiff(ctx, repoPath, "", diffOptions{}); err != nil {
		t.Fatalf("grove diff failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Unstaged changes:") {
		t.Errorf("expected unstaged section, got: %s", out)
	}
	if strings.Contains(out, "Staged changes:") {
		t.Errorf("no staged section expected, got: %s", out)
	}
	if !strings.Contains(out, "README.md") {
		t.Errorf("expected changed file, got: %s", out)
	}
	if !strings.Contains(out, "+new line") {
		t.Errorf("expected added line, got: %s", out)
	}
}

func TestDiff_StagedAndUnstagedSections(t *testing.T) {
	t.Parallel()

	repoDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, repoDir, "myrepo")

	// Staged: a new committed-to-be file. Unstaged: README edit.
	makeDirty(t, repoPath)
	runGitCommand(t, repoPath, "git", "add", "dirty.txt")
	appendToFile(t, filepath.Join(repoPath, "README.md"), "new line")

	ctx, buf := testContext(t)
	if err := runDiff(ctx, repoPath, "", diffOptions{}); err != nil {
		t.Fatalf("grove diff failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Staged changes:") {
		t.Errorf("expected staged section, got: %s", out)
	}
	if !strings.Contains(out, "Unstaged changes:") {
		t.Errorf("expected unstaged section, got: %s", out)
	}
	if !strings.Contains(out, "dirty.txt") || !strings.Contains(out, "README.md") {
		t.Errorf("expected both files, got: %s", out)
	}
	if !strings.Contains(out, "2 files changed") {
		t.Errorf("expected combined stats, got: %s", out)
	}
}

func TestDiff_StagedOnly(t *testing.T) {
	t.Parallel()

	repoDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, repoDir, "myrepo")

	makeDirty(t, repoPath)
	runGitCommand(t, repoPath, "git", "add", "dirty.txt")
	appendToFile(t, filepath.Join(repoPath, "README.md"), "new line")

	ctx, buf := testContext(t)
	if err := runDiff(ctx, repoPath, "", diffOptions{json: true, staged: true}); err != nil {
		t.Fatalf("grove diff --staged failed: %v", err)
	}

	var diff map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &diff); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}

	staged := diff["staged_files"].([]interface{})
	if len(staged) != 1 {
		t.Fatalf("expected 1 staged file, got %d", len(staged))
	}
	unstaged := diff["unstaged_files"].([]interface{})
	if len(unstaged) != 0 {
		t.Errorf("expected no unstaged files with --staged, got %d", len(unstaged))
	}

	// Stats cover the index only.
	stats := diff["stats"].(map[string]interface{})
	if stats["files_changed"].(float64) != 1 {
		t.Errorf("expected staged-only stats, got %v", stats["files_changed"])
	}
}

func TestDiff_UntrackedListedAsNewFile(t *testing.T) {
	t.Parallel()

	repoDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, repoDir, "myrepo")
	makeDirty(t, repoPath)

	ctx, buf := testContext(t)
	if err := runDiff(ctx, repoPath, "", diffOptions{json: true}); err != nil {
		t.Fatalf("grove diff --json failed: %v", err)
	}

	var diff map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &diff); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}

	unstaged := diff["unstaged_files"].([]interface{})
	if len(unstaged) != 1 {
		t.Fatalf("expected 1 unstaged file, got %d", len(unstaged))
	}
	file := unstaged[0].(map[string]interface{})
	if file["path"] != "dirty.txt" {
		t.Errorf("expected dirty.txt, got %v", file["path"])
	}
	if file["status"] != "added" {
		t.Errorf("untracked files should appear as added, got %v", file["status"])
	}
}

func TestDiff_Stat(t *testing.T) {
	t.Parallel()

	repoDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, repoDir, "myrepo")
	appendToFile(t, filepath.Join(repoPath, "README.md"), "new line")

	ctx, buf := testContext(t)
	if err := runDiff(ctx, repoPath, "", diffOptions{stat: true}); err != nil {
		t.Fatalf("grove diff --stat failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "README.md +1") {
		t.Errorf("expected per-file stat, got: %s", out)
	}
	if strings.Contains(out, "+new line") {
		t.Errorf("stat mode should not include the diff body, got: %s", out)
	}
}
