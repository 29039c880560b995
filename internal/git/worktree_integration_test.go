//go:build integration

package git

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestListWorktrees_OrderAndMainFlag(t *testing.T) {
	t.Parallel()

	tmpDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, tmpDir, "test-repo")

	wtOld := filepath.Join(tmpDir, "wt-old")
	setupWorktree(t, repoPath, wtOld, "old")
	makeCommitWithDate(t, wtOld, "old.txt", "2024-01-15T12:00:00Z")

	wtNew := filepath.Join(tmpDir, "wt-new")
	setupWorktree(t, repoPath, wtNew, "new")
	makeCommitWithDate(t, wtNew, "new.txt", "2024-06-15T12:00:00Z")

	worktrees, warnings, err := ListWorktrees(context.Background(), repoPath)
	if err != nil {
		t.Fatalf("ListWorktrees failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %+v", warnings)
	}
	if len(worktrees) != 3 {
		t.Fatalf("expected 3 worktrees, got %d", len(worktrees))
	}

	// The main worktree was committed to just now, so it sorts first.
	wantNames := []string{"test-repo", "wt-new", "wt-old"}
	for i, want := range wantNames {
		if worktrees[i].Name != want {
			t.Errorf("worktrees[%d].Name = %q, want %q", i, worktrees[i].Name, want)
		}
	}

	main := worktrees[0]
	if !main.IsMain {
		t.Error("expected first worktree to be main")
	}
	if main.Head.Branch != "main" {
		t.Errorf("main branch = %q, want main", main.Head.Branch)
	}
	if main.Head.CommitSHA == "" || main.Head.CommitMessage != "Initial commit" {
		t.Errorf("unexpected main head: %+v", main.Head)
	}
	if main.Status != nil {
		t.Error("expected Status to stay nil before AttachStatuses")
	}

	for _, wt := range worktrees[1:] {
		if wt.IsMain {
			t.Errorf("worktree %s unexpectedly marked main", wt.Name)
		}
	}
	if worktrees[1].LastCommit <= worktrees[2].LastCommit {
		t.Errorf("expected newest-first order, got %d <= %d", worktrees[1].LastCommit, worktrees[2].LastCommit)
	}
}

func TestListWorktrees_BrokenWorktreeWarns(t *testing.T) {
	t.Parallel()

	tmpDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, tmpDir, "test-repo")
	wtPath := filepath.Join(tmpDir, "wt-feature")
	setupWorktree(t, repoPath, wtPath, "feature")

	// Deleting the directory behind git's back leaves a stale entry.
	if err := os.RemoveAll(wtPath); err != nil {
		t.Fatal(err)
	}

	worktrees, warnings, err := ListWorktrees(context.Background(), repoPath)
	if err != nil {
		t.Fatalf("ListWorktrees failed: %v", err)
	}
	if len(worktrees) != 1 {
		t.Fatalf("expected 1 surviving worktree, got %d", len(worktrees))
	}
	if worktrees[0].Name != "test-repo" {
		t.Errorf("surviving worktree = %q, want test-repo", worktrees[0].Name)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %+v", warnings)
	}
	if warnings[0].Path != wtPath || warnings[0].Err == nil {
		t.Errorf("unexpected warning: %+v", warnings[0])
	}
}

func TestListWorktrees_DetachedHead(t *testing.T) {
	t.Parallel()

	tmpDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, tmpDir, "test-repo")
	wtPath := filepath.Join(tmpDir, "wt-detached")
	runGitCommand(t, repoPath, "git", "worktree", "add", "--detach", wtPath)

	worktrees, _, err := ListWorktrees(context.Background(), repoPath)
	if err != nil {
		t.Fatalf("ListWorktrees failed: %v", err)
	}

	for _, wt := range worktrees {
		if wt.Name != "wt-detached" {
			continue
		}
		if wt.Head.Branch != "" {
			t.Errorf("expected empty branch for detached HEAD, got %q", wt.Head.Branch)
		}
		if wt.Head.CommitSHA == "" {
			t.Error("expected commit SHA for detached HEAD")
		}
		return
	}
	t.Fatal("detached worktree not listed")
}

func TestStatus(t *testing.T) {
	t.Parallel()

	tmpDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, tmpDir, "test-repo")

	ctx := context.Background()
	status, err := Status(ctx, repoPath)
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if !status.IsClean {
		t.Errorf("expected clean status, got %+v", status)
	}

	makeDirty(t, repoPath)
	appendToFile(t, filepath.Join(repoPath, "README.md"), "extra line")

	status, err = Status(ctx, repoPath)
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if status.IsClean {
		t.Error("expected dirty status")
	}
	if status.Untracked != 1 || status.Modified != 1 || status.Staged != 0 {
		t.Errorf("unexpected counters: %+v", status)
	}

	runGitCommand(t, repoPath, "git", "add", "README.md")
	status, err = Status(ctx, repoPath)
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if status.Staged != 1 || status.Modified != 0 {
		t.Errorf("unexpected counters after staging: %+v", status)
	}
}

func TestAttachStatuses(t *testing.T) {
	t.Parallel()

	tmpDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, tmpDir, "test-repo")
	wtPath := filepath.Join(tmpDir, "wt-feature")
	setupWorktree(t, repoPath, wtPath, "feature")
	makeDirty(t, wtPath)

	ctx := context.Background()
	worktrees, _, err := ListWorktrees(ctx, repoPath)
	if err != nil {
		t.Fatalf("ListWorktrees failed: %v", err)
	}

	warnings := AttachStatuses(ctx, worktrees)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %+v", warnings)
	}

	byName := map[string]*Worktree{}
	for i := range worktrees {
		byName[worktrees[i].Name] = &worktrees[i]
	}

	main := byName["test-repo"]
	if main.Status == nil || !main.Status.IsClean {
		t.Errorf("expected clean main status, got %+v", main.Status)
	}
	feature := byName["wt-feature"]
	if feature.Status == nil || feature.Status.IsClean || feature.Status.Untracked != 1 {
		t.Errorf("expected dirty feature status, got %+v", feature.Status)
	}
}

func TestAddWorktree_NewBranch(t *testing.T) {
	t.Parallel()

	tmpDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, tmpDir, "test-repo")
	wtPath := filepath.Join(tmpDir, "wt-feature")

	wt, err := AddWorktree(context.Background(), repoPath, AddOptions{Path: wtPath, NewBranch: "feature"})
	if err != nil {
		t.Fatalf("AddWorktree failed: %v", err)
	}

	if wt.Path != wtPath || wt.Name != "wt-feature" {
		t.Errorf("unexpected worktree identity: %+v", wt)
	}
	if wt.Head.Branch != "feature" {
		t.Errorf("expected branch feature, got %q", wt.Head.Branch)
	}
	if wt.IsMain {
		t.Error("new worktree must not be main")
	}

	head := strings.TrimSpace(runGitCommand(t, wtPath, "git", "rev-parse", "--abbrev-ref", "HEAD"))
	if head != "feature" {
		t.Errorf("git reports branch %q, want feature", head)
	}
}

func TestAddWorktree_DetachedAtCommitIsh(t *testing.T) {
	t.Parallel()

	tmpDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, tmpDir, "test-repo")
	makeCommit(t, repoPath, "extra.txt")
	wtPath := filepath.Join(tmpDir, "wt-pinned")

	wt, err := AddWorktree(context.Background(), repoPath, AddOptions{Path: wtPath, Detach: true, CommitIsh: "main~1"})
	if err != nil {
		t.Fatalf("AddWorktree failed: %v", err)
	}

	if wt.Head.Branch != "" {
		t.Errorf("expected detached HEAD, got branch %q", wt.Head.Branch)
	}
	want := strings.TrimSpace(runGitCommand(t, repoPath, "git", "rev-parse", "--short", "main~1"))
	if wt.Head.CommitSHA != want {
		t.Errorf("expected HEAD at %s, got %s", want, wt.Head.CommitSHA)
	}
}

func TestAddWorktree_OccupiedPathFails(t *testing.T) {
	t.Parallel()

	tmpDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, tmpDir, "test-repo")
	wtPath := filepath.Join(tmpDir, "taken")
	if err := os.MkdirAll(wtPath, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(wtPath, "file.txt"), []byte("x\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := AddWorktree(context.Background(), repoPath, AddOptions{Path: wtPath, NewBranch: "feature"})
	if err == nil {
		t.Fatal("expected error for occupied path")
	}
}

func TestRemoveWorktree(t *testing.T) {
	t.Parallel()

	tmpDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, tmpDir, "test-repo")
	wtPath := filepath.Join(tmpDir, "wt-feature")
	setupWorktree(t, repoPath, wtPath, "feature")
	makeDirty(t, wtPath)

	ctx := context.Background()
	if err := RemoveWorktree(ctx, repoPath, wtPath, false); err == nil {
		t.Fatal("expected git to refuse removing a dirty worktree")
	}

	if err := RemoveWorktree(ctx, repoPath, wtPath, true); err != nil {
		t.Fatalf("forced RemoveWorktree failed: %v", err)
	}
	if _, err := os.Stat(wtPath); !os.IsNotExist(err) {
		t.Errorf("expected worktree directory to be gone, stat err: %v", err)
	}
}

func TestPrune(t *testing.T) {
	t.Parallel()

	tmpDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, tmpDir, "test-repo")
	wtPath := filepath.Join(tmpDir, "wt-stale")
	setupWorktree(t, repoPath, wtPath, "stale")
	if err := os.RemoveAll(wtPath); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	dry, err := PruneDryRun(ctx, repoPath)
	if err != nil {
		t.Fatalf("PruneDryRun failed: %v", err)
	}
	if dry.PrunedCount != 1 || len(dry.Messages) != 1 {
		t.Fatalf("expected 1 prunable worktree, got %+v", dry)
	}
	if !strings.Contains(dry.Messages[0], "wt-stale") {
		t.Errorf("expected message to name the worktree, got %q", dry.Messages[0])
	}

	// Dry run must not touch the bookkeeping.
	if got := worktreeCount(t, repoPath); got != 2 {
		t.Fatalf("expected 2 registered worktrees after dry run, got %d", got)
	}

	result, err := PruneWorktrees(ctx, repoPath)
	if err != nil {
		t.Fatalf("PruneWorktrees failed: %v", err)
	}
	if result.PrunedCount != 1 {
		t.Errorf("expected 1 pruned worktree, got %+v", result)
	}
	if got := worktreeCount(t, repoPath); got != 1 {
		t.Errorf("expected 1 registered worktree after prune, got %d", got)
	}
}

func TestPrune_NothingToDo(t *testing.T) {
	t.Parallel()

	tmpDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, tmpDir, "test-repo")

	result, err := PruneWorktrees(context.Background(), repoPath)
	if err != nil {
		t.Fatalf("PruneWorktrees failed: %v", err)
	}
	if result.PrunedCount != 0 || len(result.Messages) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

// worktreeCount returns how many worktrees git has registered.
func worktreeCount(t *testing.T, repoPath string) int {
	t.Helper()

	out := runGitCommand(t, repoPath, "git", "worktree", "list", "--porcelain")
	count := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "worktree ") {
			count++
		}
	}
	return count
}
