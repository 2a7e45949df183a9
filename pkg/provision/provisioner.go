package provision

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"dagger.io/dagger"
	"github.com/google/uuid"
)

// DefaultBaseImage is used when a build spec names no image
const DefaultBaseImage = "python:3.12-slim-bookworm"

// hostExcludes are never uploaded into the container
var hostExcludes = []string{
	".git/",
	".venv/",
	"venv/",
	"__pycache__/",
	"*.pyc",
	".pytest_cache/",
	".mypy_cache/",
	".ruff_cache/",
	"node_modules/",
	"dist/",
	"build/",
	".DS_Store",
}

// BuildSpec configures a devcontainer build
type BuildSpec struct {
	Name         string
	BaseImage    string
	AptPackages  []string
	WorkspaceDir string            // host directory copied to /workspace (writable)
	Mounts       map[string]string // host path -> container path, read-only
	EnvFile      string            // composed environment artifact, may be empty
}

// Environment is a built devcontainer
type Environment struct {
	ID        string
	Name      string
	Container *dagger.Container
	Spec      *BuildSpec
	CreatedAt time.Time
}

// Provisioner builds devcontainers
type Provisioner struct {
	client *dagger.Client
	logger *slog.Logger
}

// New creates a new provisioner
func New(client *dagger.Client, logger *slog.Logger) *Provisioner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provisioner{client: client, logger: logger}
}

// Build runs the devcontainer build pipeline and returns the built
// environment. The container is fully configured but not started; Exec runs
// commands against it.
func (p *Provisioner) Build(ctx context.Context, spec *BuildSpec) (*Environment, error) {
	if p.client == nil {
		return nil, ErrNoClient
	}
	if spec == nil || spec.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidSpec)
	}
	if spec.BaseImage == "" {
		spec.BaseImage = DefaultBaseImage
	}

	p.logger.Info("building devcontainer", "name", spec.Name, "image", spec.BaseImage)

	container := p.client.Container().From(spec.BaseImage)

	if len(spec.AptPackages) > 0 {
		install := "apt-get update && apt-get install -y " + strings.Join(spec.AptPackages, " ")
		container = container.WithExec([]string{"sh", "-c", install})
	}

	// uv drives the workspace; pip is only used to get uv itself.
	container = container.WithExec([]string{"pip", "install", "--no-cache-dir", "uv"})

	if spec.EnvFile != "" {
		vars, err := ReadEnvFile(spec.EnvFile)
		if err != nil {
			return nil, err
		}
		// Sorted for a deterministic layer sequence.
		keys := make([]string, 0, len(vars))
		for key := range vars {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			container = container.WithEnvVariable(key, vars[key])
		}
		p.logger.Info("injected environment", "file", spec.EnvFile, "vars", len(vars))
	}

	for source, target := range spec.Mounts {
		dir := p.client.Host().Directory(source, dagger.HostDirectoryOpts{
			Exclude: hostExcludes,
		})
		container = container.WithMountedDirectory(target, dir)
	}

	if spec.WorkspaceDir != "" {
		dir := p.client.Host().Directory(spec.WorkspaceDir, dagger.HostDirectoryOpts{
			Exclude: hostExcludes,
		})
		container = container.
			WithDirectory("/workspace", dir).
			WithWorkdir("/workspace").
			WithExec([]string{"uv", "sync"})
	} else {
		container = container.WithWorkdir("/workspace")
	}

	env := &Environment{
		ID:        uuid.NewString(),
		Name:      spec.Name,
		Container: container,
		Spec:      spec,
		CreatedAt: time.Now(),
	}

	p.logger.Info("devcontainer ready", "name", env.Name, "id", env.ID)
	return env, nil
}
