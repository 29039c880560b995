// Package registry manages the repository registry at ~/.config/grove/repos.json
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// Repo represents a registered git repository
type Repo struct {
	Name string `json:"name"` // Display name
	Path string `json:"path"` // Absolute path to the main repo
}

// Registry holds all registered repos
type Registry struct {
	Repos []Repo `json:"repos"`
}

// Load reads the registry from the given file.
// Returns an empty registry if the file doesn't exist.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Registry{Repos: []Repo{}}, nil
		}
		return nil, fmt.Errorf("read registry: %w", err)
	}

	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse registry: %w", err)
	}

	return &reg, nil
}

// Save writes the registry to the given file atomically.
func (r *Registry) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create registry directory: %w", err)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal registry: %w", err)
	}

	// Write to temp file first for atomic operation
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write registry: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) // Clean up temp file on failure
		return fmt.Errorf("save registry: %w", err)
	}

	return nil
}

// Add registers a new repo. Returns error if path or name is already registered.
func (r *Registry) Add(repo Repo) error {
	// Normalize path
	absPath, err := filepath.Abs(repo.Path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	repo.Path = absPath

	for _, existing := range r.Repos {
		if existing.Path == repo.Path {
			return fmt.Errorf("repo already registered: %s", repo.Path)
		}
	}

	for _, existing := range r.Repos {
		if existing.Name == repo.Name {
			return fmt.Errorf("repo name already exists: %s", repo.Name)
		}
	}

	r.Repos = append(r.Repos, repo)
	return nil
}

// Remove unregisters a repo by name or path
func (r *Registry) Remove(nameOrPath string) error {
	for i, repo := range r.Repos {
		if repo.Name == nameOrPath || repo.Path == nameOrPath {
			r.Repos = slices.Delete(r.Repos, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("repo not found: %s", nameOrPath)
}

// FindByName looks up a repo by name
func (r *Registry) FindByName(name string) (*Repo, error) {
	for i := range r.Repos {
		if r.Repos[i].Name == name {
			return &r.Repos[i], nil
		}
	}
	return nil, fmt.Errorf("repo not found: %s", name)
}

// FindByPath looks up a repo by path
func (r *Registry) FindByPath(path string) (*Repo, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	for i := range r.Repos {
		if r.Repos[i].Path == absPath {
			return &r.Repos[i], nil
		}
	}
	return nil, fmt.Errorf("repo not registered: %s", path)
}

// AllRepoNames returns all repo names, sorted
func (r *Registry) AllRepoNames() []string {
	names := make([]string, len(r.Repos))
	for i, repo := range r.Repos {
		names[i] = repo.Name
	}
	slices.Sort(names)
	return names
}
