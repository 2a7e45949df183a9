// Package workspace manages the package-manager workspace manifest and the
// member package skeletons it references.
//
// The manifest lists member packages by name and path. Members are plain
// directories under packages/; a valid member carries its own package
// manifest (pyproject.toml for the Python workspaces this tool scaffolds).
package workspace
