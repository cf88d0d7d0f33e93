package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/erg0nix/chatmeta/internal/history"
)

var (
	// ErrIO wraps failures reading or writing a metadata file.
	ErrIO = errors.New("metadata i/o failed")
	// ErrEncode wraps failures serializing a metadata record.
	ErrEncode = errors.New("metadata encode failed")
)

// Store loads and writes one metadata file per conversation. Operations on the same
// file are serialized and writes replace the file atomically.
type Store struct {
	Dirs   history.DirResolver
	Logger *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStore(dirs history.DirResolver) *Store {
	return &Store{Dirs: dirs}
}

type loadOutcome int

const (
	outcomeLoaded loadOutcome = iota
	outcomeAbsent
	outcomeUnreadable
	outcomeCorrupt
)

func (o loadOutcome) String() string {
	switch o {
	case outcomeLoaded:
		return "loaded"
	case outcomeAbsent:
		return "absent"
	case outcomeUnreadable:
		return "unreadable"
	case outcomeCorrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

// Load returns the stored metadata for kind. A missing, unreadable, or corrupt file
// yields the zero Metadata; only directory resolution can fail.
func (s *Store) Load(ctx context.Context, kind history.Kind) (Metadata, error) {
	path, err := s.Path(ctx, kind)
	if err != nil {
		return Metadata{}, err
	}

	unlock := s.lock(path)
	defer unlock()

	return s.read(path), nil
}

// Save rewrites the record for kind, deriving the unread and reference fields from messages.
func (s *Store) Save(ctx context.Context, kind history.Kind, messages []Message, readMarker *ReadMarker) error {
	data, err := json.Marshal(fromMessages(messages, readMarker))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	path, err := s.Path(ctx, kind)
	if err != nil {
		return err
	}

	unlock := s.lock(path)
	defer unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	return writeFileAtomic(path, data)
}

// Update advances the stored read marker to readMarker. A stored marker at or after
// readMarker is left alone; the other fields are carried over unchanged.
func (s *Store) Update(ctx context.Context, kind history.Kind, readMarker ReadMarker) error {
	path, err := s.Path(ctx, kind)
	if err != nil {
		return err
	}

	unlock := s.lock(path)
	defer unlock()

	metadata := s.read(path)
	if metadata.ReadMarker != nil && !metadata.ReadMarker.Before(readMarker) {
		return nil
	}

	metadata.ReadMarker = &readMarker

	data, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return writeFileAtomic(path, data)
}

func (s *Store) read(path string) Metadata {
	metadata, outcome, err := decodeFile(path)

	switch outcome {
	case outcomeAbsent:
		s.logger().Debug("no metadata file, using defaults", "path", path)
	case outcomeUnreadable, outcomeCorrupt:
		s.logger().Warn("discarding metadata file", "path", path, "outcome", outcome, "error", err)
	}

	return metadata
}

func decodeFile(path string) (Metadata, loadOutcome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Metadata{}, outcomeAbsent, nil
		}
		return Metadata{}, outcomeUnreadable, err
	}

	var metadata Metadata
	if err := json.Unmarshal(data, &metadata); err != nil {
		return Metadata{}, outcomeCorrupt, err
	}

	return metadata, outcomeLoaded, nil
}

func (s *Store) lock(path string) func() {
	s.mu.Lock()
	if s.locks == nil {
		s.locks = make(map[string]*sync.Mutex)
	}
	pathLock, ok := s.locks[path]
	if !ok {
		pathLock = &sync.Mutex{}
		s.locks[path] = pathLock
	}
	s.mu.Unlock()

	pathLock.Lock()
	return pathLock.Unlock
}

func (s *Store) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrIO, err)
	}
	tmpPath := tmp.Name()

	cleanup := func(err error) error {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: write %s: %w", ErrIO, path, err)
	}

	if _, err := tmp.Write(data); err != nil {
		return cleanup(err)
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: write %s: %w", ErrIO, path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: replace %s: %w", ErrIO, path, err)
	}

	return nil
}
