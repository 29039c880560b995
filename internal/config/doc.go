// Package config handles loading and validation of grove configuration.
//
// Configuration is read from ~/.config/grove/config.toml. A missing file
// is not an error: defaults apply.
//
// # Configuration Sources (highest priority first)
//
//   - GROVE_WORKTREE_DIR env var: Target directory for new worktrees
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - worktree_dir: Base directory for new worktrees (must be absolute or ~/...)
//   - log_limit: Number of commits shown by log commands (default: 20)
//   - theme: Color theme name (none, default, dracula, nord, gruvbox, catppuccin)
//   - nerd_font: Use nerd-font glyphs in status symbols
//
// # Path Validation
//
// Directory paths must be absolute or start with ~ (no relative paths like "."
// or "..") to avoid confusion about the working directory.
//
// The package also owns the locations of grove's other state files: the
// repository registry (repos.json) and the worktree access history
// (history.json), both living next to the config file.
package config
