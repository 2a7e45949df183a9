package envcompose

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Layer is one environment-definition source. Contents are opaque text;
// identity is the file path.
type Layer struct {
	Name string
	Path string
}

// DefaultLayers returns the conventional layer ordering rooted at dir:
// common, then the environment-specific file, then the feature-specific
// file. Later layers are appended after earlier ones, never merged.
func DefaultLayers(dir string) []Layer {
	return []Layer{
		{Name: "common", Path: filepath.Join(dir, "common.env")},
		{Name: "development", Path: filepath.Join(dir, "development.env")},
		{Name: "feature", Path: filepath.Join(dir, "feature.env")},
	}
}

// Composer concatenates environment layers into a combined artifact.
type Composer struct {
	logger *slog.Logger
}

// New creates a new composer
func New(logger *slog.Logger) *Composer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{logger: logger}
}

// Compose truncates outputPath and appends each layer's full contents in
// input order, byte for byte. Duplicate keys across layers are kept as-is
// and line order within a layer is preserved.
//
// The write is not atomic: a layer error part way through leaves outputPath
// holding exactly the layers already written. Callers that need the previous
// artifact back must keep their own copy.
func (c *Composer) Compose(layers []Layer, outputPath string) error {
	out, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return classify(err, outputPath)
	}

	for _, layer := range layers {
		if err := appendLayer(out, layer); err != nil {
			out.Close()
			return err
		}
		c.logger.Debug("appended layer", "layer", layer.Name, "path", layer.Path)
	}

	if err := out.Close(); err != nil {
		return classify(err, outputPath)
	}

	c.logger.Info("combined environment written", "path", outputPath, "layers", len(layers))
	return nil
}

func appendLayer(w io.Writer, layer Layer) error {
	in, err := os.Open(layer.Path)
	if err != nil {
		return classify(err, layer.Path)
	}
	defer in.Close()

	if _, err := io.Copy(w, in); err != nil {
		return fmt.Errorf("append layer %s: %w", layer.Name, err)
	}
	return nil
}
