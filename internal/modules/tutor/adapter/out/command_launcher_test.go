package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	tutorout "pontutor/internal/modules/tutor/adapter/out"
	apperrors "pontutor/internal/platform/errors"
)

func TestCommandLauncherDisabled(t *testing.T) {
	t.Parallel()
	line, err := tutorout.NewCommandLauncher(nil).Print(context.Background(), "/tmp/x.md")
	if err != nil || line != "" {
		t.Fatalf("empty argv should be a no-op, got %q %v", line, err)
	}
}

func TestCommandLauncherMissingBinary(t *testing.T) {
	t.Parallel()
	_, err := tutorout.NewCommandLauncher([]string{"pontutor-no-such-printer"}).Print(context.Background(), "/tmp/x.md")
	if !errors.Is(err, apperrors.ErrPrintUnavailable) {
		t.Fatalf("expected print unavailable, got %v", err)
	}
}

func TestCommandLauncherAppendsPath(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX shell")
	}
	dir := t.TempDir()
	marker := filepath.Join(dir, "printed")
	launcher := tutorout.NewCommandLauncher([]string{"sh", "-c", `cp "$0" "` + marker + `"`})
	src := filepath.Join(dir, "page.md")
	if err := os.WriteFile(src, []byte("page"), 0o644); err != nil {
		t.Fatalf("write page: %v", err)
	}
	line, err := launcher.Print(context.Background(), src)
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	if !strings.HasPrefix(line, "sh -c") || !strings.HasSuffix(line, src) {
		t.Fatalf("unexpected command line %q", line)
	}
	if b, err := os.ReadFile(marker); err != nil || string(b) != "page" {
		t.Fatalf("command did not receive the path: %q %v", b, err)
	}
}

func TestFileSnapshotStoreCreatesDir(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "nested", "prints")
	path, err := tutorout.NewFileSnapshotStore(dir).Write(context.Background(), "../escape.md", "hello")
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("snapshot must stay inside the print dir, got %s", path)
	}
	if b, _ := os.ReadFile(path); string(b) != "hello" {
		t.Fatalf("unexpected content %q", b)
	}
}
