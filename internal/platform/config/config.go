package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultLogLevel     = "info"
	DefaultPrintCommand = "lp"
)

// Options carries raw flag values; zero values select defaults.
type Options struct {
	DatasetPath  string
	LogPath      string
	LogLevel     string
	PrintDir     string
	PrintCommand string
}

type Config struct {
	// DatasetPath is empty when the embedded dataset is used.
	DatasetPath  string
	LogPath      string
	LogLevel     string `validate:"oneof=trace debug info warn error off"`
	PrintDir     string `validate:"required"`
	PrintCommand []string
}

var validate = validator.New()

func New(opts Options) (Config, error) {
	cfg := Config{
		DatasetPath: strings.TrimSpace(opts.DatasetPath),
		LogPath:     strings.TrimSpace(opts.LogPath),
		LogLevel:    strings.ToLower(strings.TrimSpace(opts.LogLevel)),
		PrintDir:    strings.TrimSpace(opts.PrintDir),
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.PrintDir == "" {
		cfg.PrintDir = filepath.Join(os.TempDir(), "pontutor")
	}
	cfg.PrintCommand = strings.Fields(opts.PrintCommand)
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
