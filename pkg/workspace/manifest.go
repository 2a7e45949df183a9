package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Member is one workspace package
type Member struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// Manifest is the workspace manifest (workspace.yaml): the workspace name
// plus its ordered member list.
type Manifest struct {
	Name    string   `yaml:"name"`
	Members []Member `yaml:"members"`
}

// NewManifest creates a manifest seeded with the default members of a fresh
// workspace.
func NewManifest(name string) *Manifest {
	return &Manifest{
		Name: name,
		Members: []Member{
			{Name: "scraper", Path: "packages/scraper"},
			{Name: "utils", Path: "packages/utils"},
		},
	}
}

// Load reads a manifest from path
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if m.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidManifest)
	}
	return &m, nil
}

// Save writes the manifest to path
func (m *Manifest) Save(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Member returns the named member
func (m *Manifest) Member(name string) (Member, error) {
	for _, member := range m.Members {
		if member.Name == name {
			return member, nil
		}
	}
	return Member{}, fmt.Errorf("%w: %s", ErrMemberNotFound, name)
}

// AddMember appends a member to the manifest
func (m *Manifest) AddMember(name, path string) error {
	if name == "" {
		return fmt.Errorf("%w: member name is required", ErrInvalidManifest)
	}
	if _, err := m.Member(name); err == nil {
		return fmt.Errorf("%w: %s", ErrMemberExists, name)
	}
	if path == "" {
		path = filepath.Join("packages", name)
	}
	m.Members = append(m.Members, Member{Name: name, Path: path})
	return nil
}

// RemoveMember removes the named member from the manifest. The member's
// directory is left on disk.
func (m *Manifest) RemoveMember(name string) error {
	for i, member := range m.Members {
		if member.Name == name {
			m.Members = append(m.Members[:i], m.Members[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrMemberNotFound, name)
}

// Validate checks that every member directory exists under root and carries
// a package manifest.
func (m *Manifest) Validate(root string) error {
	for _, member := range m.Members {
		dir := filepath.Join(root, member.Path)
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("%w: member %s has no directory at %s", ErrInvalidManifest, member.Name, member.Path)
		}
		if _, err := os.Stat(filepath.Join(dir, "pyproject.toml")); err != nil {
			return fmt.Errorf("%w: member %s has no pyproject.toml", ErrInvalidManifest, member.Name)
		}
	}
	return nil
}
