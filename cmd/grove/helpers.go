package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"

	"github.com/grovekit/grove/internal/git"
)

// resolveDir turns an optional positional path argument into an
// absolute directory, defaulting to base when the argument is empty.
func resolveDir(base, arg string) string {
	if arg == "" {
		return base
	}
	if !filepath.IsAbs(arg) {
		arg = filepath.Join(base, arg)
	}
	return filepath.Clean(arg)
}

// worktreeRoot resolves the root of the worktree containing the
// optional path argument.
func worktreeRoot(ctx context.Context, base, arg string) (string, error) {
	return git.RepoRoot(ctx, resolveDir(base, arg))
}

// mainRepo resolves the main repository for the optional path argument,
// which may point anywhere inside a linked worktree.
func mainRepo(ctx context.Context, base, arg string) (string, error) {
	return git.MainRepoPath(ctx, resolveDir(base, arg))
}

// colorWriter wraps w so styled output is downsampled to what the
// destination supports; pipes and files get plain text.
func colorWriter(w io.Writer) io.Writer {
	return colorprofile.NewWriter(w, os.Environ())
}

// stdinIsTTY reports whether interactive prompts can be shown.
func stdinIsTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
