package envcompose

import (
	"errors"
	"fmt"
	"io/fs"
)

// Package-level error definitions following the workspace manager pattern
var (
	// ErrLayerNotFound indicates a layer path does not exist
	ErrLayerNotFound = errors.New("layer file not found")

	// ErrPermission indicates a layer is unreadable or the output is unwritable
	ErrPermission = errors.New("permission denied")
)

// IsNotFound returns true if the error is ErrLayerNotFound
func IsNotFound(err error) bool {
	return errors.Is(err, ErrLayerNotFound)
}

// IsPermission returns true if the error is ErrPermission
func IsPermission(err error) bool {
	return errors.Is(err, ErrPermission)
}

// classify maps an OS-level file error onto the package taxonomy, keeping
// the offending path in the message.
func classify(err error, path string) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrLayerNotFound, path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrPermission, path)
	default:
		return fmt.Errorf("%s: %w", path, err)
	}
}
