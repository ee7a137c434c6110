package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"pontutor/internal/platform/config"
	apperrors "pontutor/internal/platform/errors"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadFileMissingIsEmpty(t *testing.T) {
	t.Parallel()
	f, err := config.LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Dataset != "" || f.Print.Command != nil {
		t.Fatalf("expected zero file, got %+v", f)
	}
}

func TestLoadFileSections(t *testing.T) {
	t.Parallel()
	path := writeFile(t, `
dataset = "/srv/district.yaml"

[log]
file = "/var/log/pontutor.log"
level = "debug"

[print]
dir = "/srv/prints"
command = ""
`)
	f, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if f.Dataset != "/srv/district.yaml" || f.Log.Level != "debug" || f.Print.Dir != "/srv/prints" {
		t.Fatalf("unexpected file %+v", f)
	}
	if f.Print.Command == nil || *f.Print.Command != "" {
		t.Fatalf("expected explicit empty print command")
	}
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "[print]\nprinter = \"lp\"\n")
	if _, err := config.LoadFile(path); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLoadFileRejectsBrokenTOML(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "[log\n")
	if _, err := config.LoadFile(path); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
