package envcompose

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatch_RecomposesOnLayerChange(t *testing.T) {
	dir := t.TempDir()
	layers := []Layer{
		writeLayer(t, dir, "common.env", "A=1\n"),
		writeLayer(t, dir, "development.env", "B=2\n"),
	}
	out := filepath.Join(dir, "combined.env")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- New(nil).Watch(ctx, layers, out)
	}()

	// Wait for the initial composition.
	waitForContent(t, out, "A=1\nB=2\n")

	if err := os.WriteFile(layers[0].Path, []byte("A=changed\n"), 0o644); err != nil {
		t.Fatalf("failed to rewrite layer: %v", err)
	}
	waitForContent(t, out, "A=changed\nB=2\n")

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watch returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatch_FailsWhenLayerDirMissing(t *testing.T) {
	dir := t.TempDir()
	layers := []Layer{{Name: "common", Path: filepath.Join(dir, "nope", "common.env")}}

	err := New(nil).Watch(context.Background(), layers, filepath.Join(dir, "combined.env"))
	if err == nil {
		t.Fatal("expected error for missing layer directory")
	}
}

func waitForContent(t *testing.T, path, want string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if data, err := os.ReadFile(path); err == nil && string(data) == want {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	data, _ := os.ReadFile(path)
	t.Fatalf("output never reached %q, last content %q", want, string(data))
}
