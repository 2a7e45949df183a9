package provision

import "errors"

// Package-level error definitions
var (
	// ErrNoClient indicates the Dagger client is not initialized
	ErrNoClient = errors.New("dagger client not initialized")

	// ErrInvalidSpec indicates an invalid build specification
	ErrInvalidSpec = errors.New("invalid build specification")

	// ErrExecFailed indicates command execution failed
	ErrExecFailed = errors.New("command execution failed")
)
