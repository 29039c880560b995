package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
)

// Config holds the grove configuration.
type Config struct {
	WorktreeDir string `toml:"worktree_dir"`
	LogLimit    int    `toml:"log_limit"`
	Theme       string `toml:"theme"`
	NerdFont    bool   `toml:"nerd_font"`
}

// DefaultWorktreeDir is where new worktrees are created unless configured.
const DefaultWorktreeDir = "~/worktrees"

// DefaultLogLimit is the number of commits shown by log commands unless configured.
const DefaultLogLimit = 20

// ValidThemeNames lists the accepted values for the theme setting.
var ValidThemeNames = []string{"none", "default", "dracula", "nord", "gruvbox", "catppuccin"}

// Default returns the default configuration.
func Default() Config {
	return Config{
		WorktreeDir: DefaultWorktreeDir,
		LogLimit:    DefaultLogLimit,
		Theme:       "default",
	}
}

func isValidThemeName(name string) bool {
	return slices.Contains(ValidThemeNames, name)
}

// ValidatePath checks that the path is absolute or starts with ~.
// Returns error if path is relative (like "." or "..").
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	// Allow ~ paths
	if path[0] == '~' {
		return nil
	}
	// Must be absolute
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// dir returns the grove config directory (~/.config/grove).
func dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "grove"), nil
}

// Path returns the path to the config file.
func Path() (string, error) {
	d, err := dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "config.toml"), nil
}

// RegistryPath returns the path to the repository registry file.
func RegistryPath() (string, error) {
	d, err := dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "repos.json"), nil
}

// HistoryPath returns the path to the worktree access history file.
func HistoryPath() (string, error) {
	d, err := dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "history.json"), nil
}

// Load reads config from ~/.config/grove/config.toml.
// Returns Default() (expanded) if the file doesn't exist.
// Returns error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return loadFrom(path)
}

func loadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Default(), fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnvOverrides(&cfg)

	// Empty values fall back to defaults
	if cfg.WorktreeDir == "" {
		cfg.WorktreeDir = DefaultWorktreeDir
	}
	if cfg.LogLimit == 0 {
		cfg.LogLimit = DefaultLogLimit
	}
	if cfg.Theme == "" {
		cfg.Theme = "default"
	}

	if err := validate(&cfg); err != nil {
		return Default(), err
	}

	// Expand ~ (shell doesn't expand in config files)
	expanded, err := expandPath(cfg.WorktreeDir)
	if err != nil {
		return Default(), fmt.Errorf("expand worktree_dir: %w", err)
	}
	cfg.WorktreeDir = expanded

	return cfg, nil
}

// applyEnvOverrides applies GROVE_* environment variables on top of file settings.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GROVE_WORKTREE_DIR"); v != "" {
		cfg.WorktreeDir = v
	}
}

func validate(cfg *Config) error {
	if err := ValidatePath(cfg.WorktreeDir, "worktree_dir"); err != nil {
		return err
	}
	if cfg.LogLimit < 0 {
		return fmt.Errorf("invalid log_limit %d: must be positive", cfg.LogLimit)
	}
	if !isValidThemeName(cfg.Theme) {
		return fmt.Errorf("invalid theme %q: must be one of none, default, dracula, nord, gruvbox, catppuccin", cfg.Theme)
	}
	return nil
}

const defaultConfig = `# grove configuration

# Base directory for new worktrees
# Must be an absolute path or start with ~ (no relative paths like "." or "..")
# Examples: "/Users/you/worktrees" or "~/worktrees"
# worktree_dir = "~/worktrees"

# Number of commits shown by "grove log" (and the commit picker)
# log_limit = 20

# Color theme for tables, status glyphs and diffs
# One of: none, default, dracula, nord, gruvbox, catppuccin
# "none" disables colors entirely
# theme = "default"

# Use nerd-font glyphs for worktree and status symbols
# Requires a patched font (https://www.nerdfonts.com)
# nerd_font = false
`

// Init creates a default config file at ~/.config/grove/config.toml.
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	// Check if file already exists (skip if force)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
