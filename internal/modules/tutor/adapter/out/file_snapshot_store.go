package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tutorout "pontutor/internal/modules/tutor/port/out"
)

type FileSnapshotStore struct {
	dir string
}

func NewFileSnapshotStore(dir string) tutorout.SnapshotStore {
	return &FileSnapshotStore{dir: dir}
}

func (s *FileSnapshotStore) Write(_ context.Context, name, content string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create print dir: %w", err)
	}
	path := filepath.Join(s.dir, filepath.Base(name))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
