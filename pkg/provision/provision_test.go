package provision

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestBuild_RequiresClient(t *testing.T) {
	p := New(nil, nil)

	_, err := p.Build(context.Background(), &BuildSpec{Name: "dev"})
	if !errors.Is(err, ErrNoClient) {
		t.Errorf("expected ErrNoClient, got %v", err)
	}
}

func TestExec_Validation(t *testing.T) {
	p := New(nil, nil)

	if _, err := p.Exec(context.Background(), nil, nil); !errors.Is(err, ErrNoClient) {
		t.Errorf("expected ErrNoClient, got %v", err)
	}
}

func TestReadEnvFile_LastDeclarationWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "devcontainer.env")
	// A combined artifact with a duplicate key across layers.
	content := "A=1\nB=2\nA=3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	vars, err := ReadEnvFile(path)
	if err != nil {
		t.Fatalf("failed to read env file: %v", err)
	}

	// Override semantics live here at the consumer, not in the composer.
	if vars["A"] != "3" {
		t.Errorf("expected later A=3 to win, got %q", vars["A"])
	}
	if vars["B"] != "2" {
		t.Errorf("expected B=2, got %q", vars["B"])
	}
}

func TestReadEnvFile_Missing(t *testing.T) {
	if _, err := ReadEnvFile(filepath.Join(t.TempDir(), "nope.env")); err == nil {
		t.Error("expected error for missing env file")
	}
}
