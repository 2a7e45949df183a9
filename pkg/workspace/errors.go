package workspace

import "errors"

// Package-level error definitions
var (
	// ErrMemberNotFound indicates the named member is not in the manifest
	ErrMemberNotFound = errors.New("workspace member not found")

	// ErrMemberExists indicates a member with the same name already exists
	ErrMemberExists = errors.New("workspace member already exists")

	// ErrManifestNotFound indicates no manifest file exists at the given path
	ErrManifestNotFound = errors.New("workspace manifest not found")

	// ErrInvalidManifest indicates the manifest failed validation
	ErrInvalidManifest = errors.New("invalid workspace manifest")
)

// IsNotFound returns true if the error is ErrMemberNotFound
func IsNotFound(err error) bool {
	return errors.Is(err, ErrMemberNotFound)
}

// IsManifestMissing returns true if the error is ErrManifestNotFound
func IsManifestMissing(err error) bool {
	return errors.Is(err, ErrManifestNotFound)
}
