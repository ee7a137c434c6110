package out

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	tutorout "pontutor/internal/modules/tutor/port/out"
	apperrors "pontutor/internal/platform/errors"
)

// CommandLauncher prints by running argv with the file path appended, e.g.
// "lp /tmp/pontutor/page.md". An empty argv disables printing.
type CommandLauncher struct {
	argv []string
}

func NewCommandLauncher(argv []string) tutorout.PrintLauncher {
	cp := make([]string, len(argv))
	copy(cp, argv)
	return &CommandLauncher{argv: cp}
}

func (l *CommandLauncher) Print(ctx context.Context, path string) (string, error) {
	if len(l.argv) == 0 {
		return "", nil
	}
	args := append(append([]string{}, l.argv[1:]...), path)
	cmd := exec.CommandContext(ctx, l.argv[0], args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	line := strings.Join(append([]string{l.argv[0]}, args...), " ")
	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%s: %w", l.argv[0], apperrors.ErrPrintUnavailable)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("run %s: %w: %s", line, err, msg)
		}
		return "", fmt.Errorf("run %s: %w", line, err)
	}
	return line, nil
}
