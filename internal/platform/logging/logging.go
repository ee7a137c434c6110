package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"pontutor/internal/platform/config"
)

// New returns the process logger. The TUI owns the terminal, so output goes to
// cfg.LogPath when set and is discarded otherwise. The returned closer releases
// the log file.
func New(cfg config.Config) (hclog.Logger, io.Closer, error) {
	var out io.Writer = io.Discard
	var closer io.Closer = nopCloser{}
	if cfg.LogPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = f
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "pontutor",
		Level:  hclog.LevelFromString(cfg.LogLevel),
		Output: out,
	}), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
