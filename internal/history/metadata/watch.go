package metadata

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/erg0nix/chatmeta/internal/history"
)

// Watch calls fn with the freshly loaded metadata every time the file for kind is
// written, until ctx is done. The directory is watched rather than the file because
// writes land through a rename.
func (s *Store) Watch(ctx context.Context, kind history.Kind, fn func(Metadata)) error {
	path, err := s.Path(ctx, kind)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	name := filepath.Base(path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			metadata, err := s.Load(ctx, kind)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			fn(metadata)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger().Warn("metadata watcher error", "path", path, "error", err)
		}
	}
}
