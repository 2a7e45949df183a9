// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the devkit process configuration. Every field has a working
// default; nothing is required to run inside a checked-out workspace.
type Config struct {
	// ProjectRoot is the workspace checkout devkit operates on.
	ProjectRoot string `env:"PROJECT_ROOT" envDefault:"."`

	// EnvDir holds the layered environment files.
	EnvDir string `env:"DEVKIT_ENV_DIR" envDefault:".devcontainer/env"`

	// OutputFile is where the combined environment artifact is written,
	// relative to ProjectRoot unless absolute.
	OutputFile string `env:"DEVKIT_ENV_FILE" envDefault:".devcontainer/devcontainer.env"`

	// ProfileFile is the profile configuration, relative to ProjectRoot.
	ProfileFile string `env:"DEVKIT_PROFILES" envDefault:"devkit.yaml"`

	// ManifestFile is the workspace manifest, relative to ProjectRoot.
	ManifestFile string `env:"DEVKIT_WORKSPACE" envDefault:"workspace.yaml"`

	// BaseImage is the devcontainer base image when a profile names none.
	BaseImage string `env:"DEVKIT_BASE_IMAGE" envDefault:"python:3.12-slim-bookworm"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"DEVKIT_LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from the process environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
