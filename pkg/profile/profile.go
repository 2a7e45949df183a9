package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/23min/devkit/pkg/envcompose"
)

// Profile describes one environment: the ordered layers that feed it, the
// combined artifact they produce, and the image that consumes it.
type Profile struct {
	Name      string   `yaml:"name"`
	BaseImage string   `yaml:"base_image,omitempty"`
	Layers    []string `yaml:"layers"`
	Output    string   `yaml:"output"`
	CreatedAt string   `yaml:"created_at,omitempty"`
}

// LayerSet resolves the profile's layer file names against dir, preserving
// declaration order.
func (p *Profile) LayerSet(dir string) []envcompose.Layer {
	layers := make([]envcompose.Layer, 0, len(p.Layers))
	for _, name := range p.Layers {
		layers = append(layers, envcompose.Layer{
			Name: trimExt(name),
			Path: filepath.Join(dir, name),
		})
	}
	return layers
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}

// File is the on-disk profile configuration (devkit.yaml).
type File struct {
	Default  string    `yaml:"default"`
	Profiles []Profile `yaml:"profiles"`
}

// LoadFile reads profile configuration from path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse profile file %s: %w", path, err)
	}
	return &f, nil
}

// DefaultFile returns the built-in configuration used when no devkit.yaml
// exists: the conventional common -> development -> feature layering.
func DefaultFile() *File {
	return &File{
		Default: "development",
		Profiles: []Profile{
			{
				Name:   "development",
				Layers: []string{"common.env", "development.env", "feature.env"},
				Output: "devcontainer.env",
			},
		},
	}
}
