// Package provision builds and runs devcontainers from composed environment
// artifacts.
//
// The build pipeline is fixed: base image, apt packages, uv, workspace copy,
// environment injection. The composed artifact is parsed here - duplicate
// keys resolve last-wins at this boundary, never in the composer that wrote
// the file.
package provision
