package git

import (
	"context"
	"fmt"
	"strconv"

	"github.com/grovekit/grove/internal/gitparse"
)

// CommitHistory returns up to limit commits reachable from HEAD of the
// worktree at path, skipping the first skip. The record-separated log
// format keeps multi-line bodies intact.
func CommitHistory(ctx context.Context, path string, limit, skip int) ([]gitparse.CommitInfo, error) {
	args := []string{"log", "--format=" + gitparse.LogFormat}
	if skip > 0 {
		args = append(args, "--skip="+strconv.Itoa(skip))
	}
	args = append(args, "-n"+strconv.Itoa(limit))

	out, err := outputGit(ctx, path, args...)
	if err != nil {
		return nil, fmt.Errorf("commit history: %w", err)
	}
	return gitparse.ParseCommitLog(string(out)), nil
}
