// Package cmd executes external commands with stderr-aware errors.
//
// The helpers wrap [os/exec] to capture stderr and surface it as the
// error message, making command failures readable for users. Every
// invocation is reported with its duration through the context logger
// when verbose output is enabled.
//
// # Usage
//
//	out, err := cmd.OutputContext(ctx, repoPath, "git", "status", "--porcelain")
//	if err != nil {
//	    // err carries the trimmed stderr text when git printed any
//	    return fmt.Errorf("status: %w", err)
//	}
//
// # Design Notes
//
// grove shells out to the git CLI rather than linking a Go git library.
// This is simpler, more reliable, and keeps behavior consistent with the
// user's own git configuration (SSH keys, credential helpers, aliases).
package cmd
