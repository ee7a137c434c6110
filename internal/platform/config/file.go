package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	apperrors "pontutor/internal/platform/errors"
)

// File is the optional config.toml. Command-line flags win over it.
type File struct {
	Dataset string       `toml:"dataset"`
	Log     LogSection   `toml:"log"`
	Print   PrintSection `toml:"print"`
}

type LogSection struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type PrintSection struct {
	Dir string `toml:"dir"`
	// Command is a pointer so an explicit "" (save only) differs from unset.
	Command *string `toml:"command"`
}

// Dir returns the pontutor config directory.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "pontutor")
}

func DefaultFilePath() string {
	return filepath.Join(Dir(), "config.toml")
}

// LoadFile reads a config file. A missing file is not an error.
func LoadFile(path string) (File, error) {
	var f File
	if path == "" {
		return f, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return f, fmt.Errorf("read config %s: %w", path, err)
	}
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return File{}, fmt.Errorf("%w: config %s: %v", apperrors.ErrInvalidInput, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return File{}, fmt.Errorf("%w: config %s: unknown key %s", apperrors.ErrInvalidInput, path, undecoded[0])
	}
	return f, nil
}
