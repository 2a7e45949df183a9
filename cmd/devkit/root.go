// Package main implements the devkit CLI: layered environment composition,
// devcontainer builds, and workspace management for a uv-based Python
// workspace.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/23min/devkit/internal/config"
	"github.com/23min/devkit/pkg/envcompose"
	"github.com/23min/devkit/pkg/profile"
)

var (
	// Global flags
	profileName string

	cfg    *config.Config
	logger *slog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "devkit",
	Short: "devkit - layered devcontainer environments",
	Long: `devkit assembles layered environment files into one combined artifact,
builds the devcontainer that consumes it, and manages the package workspace
inside.

Layers concatenate in profile order and are never merged by key: if two
layers declare the same variable, both lines survive, and whatever loads the
artifact decides which one wins.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger = newLogger(cfg.LogLevel)
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&profileName, "profile", "", "environment profile (defaults to the profile file's default)")
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

// resolvePath anchors relative paths at the project root
func resolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cfg.ProjectRoot, path)
}

// currentProfile resolves the active profile: the --profile flag, falling
// back to the profile file's default. A missing profile file means the
// built-in common/development/feature layering.
func currentProfile() (*profile.Profile, error) {
	f, err := profile.LoadFile(resolvePath(cfg.ProfileFile))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		f = profile.DefaultFile()
	}

	reg, err := profile.FromFile(f)
	if err != nil {
		return nil, err
	}

	name := profileName
	if name == "" {
		name = f.Default
	}
	if name == "" {
		return nil, fmt.Errorf("no profile selected and the profile file names no default")
	}
	return reg.Get(name)
}

func profileLayers(p *profile.Profile) []envcompose.Layer {
	return p.LayerSet(resolvePath(cfg.EnvDir))
}

func profileOutput(p *profile.Profile) string {
	out := p.Output
	if out == "" {
		out = cfg.OutputFile
	}
	return resolvePath(out)
}

func baseImage(p *profile.Profile) string {
	if p.BaseImage != "" {
		return p.BaseImage
	}
	return cfg.BaseImage
}
