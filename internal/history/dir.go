package history

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrDirectory is returned when the history directory cannot be resolved.
var ErrDirectory = errors.New("history directory unavailable")

// DirResolver locates the directory that holds per-conversation records.
type DirResolver interface {
	DirPath(ctx context.Context) (string, error)
}

// DataDir resolves to <BaseDir>/history, creating it on first use.
type DataDir struct {
	BaseDir string
}

func (d DataDir) DirPath(ctx context.Context) (string, error) {
	if d.BaseDir == "" {
		return "", fmt.Errorf("%w: no base directory configured", ErrDirectory)
	}
	return ensureDir(ctx, filepath.Join(d.BaseDir, "history"))
}

// Dir resolves to the directory itself, creating it on first use.
type Dir string

func (d Dir) DirPath(ctx context.Context) (string, error) {
	if d == "" {
		return "", fmt.Errorf("%w: no directory configured", ErrDirectory)
	}
	return ensureDir(ctx, string(d))
}

func ensureDir(ctx context.Context, dir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrDirectory, err)
	}

	return dir, nil
}
