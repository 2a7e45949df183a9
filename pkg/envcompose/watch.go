package envcompose

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch composes once, then recomposes whenever a layer file is written or
// recreated, until ctx is cancelled. Editors that replace files on save show
// up as Create events, so both are handled.
func (c *Composer) Watch(ctx context.Context, layers []Layer, outputPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	for _, layer := range layers {
		// Watch the directory, not the file: replace-on-save renames the
		// inode out from under a file watch.
		if err := watcher.Add(filepath.Dir(layer.Path)); err != nil {
			return classify(err, layer.Path)
		}
	}

	if err := c.Compose(layers, outputPath); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("stopping watch", "output", outputPath)
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !isLayerPath(layers, event.Name) {
				continue
			}
			c.logger.Info("layer changed, recomposing", "path", event.Name)
			if err := c.Compose(layers, outputPath); err != nil {
				// A half-saved layer can vanish briefly; the next event
				// will recompose. Keep watching.
				c.logger.Error("recompose failed", "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.logger.Error("watch error", "error", err)
		}
	}
}

func isLayerPath(layers []Layer, path string) bool {
	for _, layer := range layers {
		if layer.Path == path {
			return true
		}
	}
	return false
}
