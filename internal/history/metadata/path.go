package metadata

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/erg0nix/chatmeta/internal/history"
)

// FileName hashes the kind's composite name so user-controlled channel and nick
// names never reach the filesystem. Distinct kinds whose names collide share a file.
func FileName(kind history.Kind) string {
	return strconv.FormatUint(xxhash.Sum64String(compositeName(kind)), 10) + ".json"
}

func compositeName(kind history.Kind) string {
	switch k := kind.(type) {
	case history.Server:
		return k.Server.String() + "-metadata"
	case history.Channel:
		return k.Server.String() + "channel" + k.Channel.String() + "-metadata"
	case history.Query:
		return k.Server.String() + "nickname" + k.Nick.String() + "-metadata"
	case history.Logs:
		return "logs-metadata"
	case history.Highlights:
		return "highlights-metadata"
	default:
		panic(fmt.Sprintf("metadata: unhandled kind %T", kind))
	}
}

// Path returns the metadata file for kind inside the resolved history directory.
func (s *Store) Path(ctx context.Context, kind history.Kind) (string, error) {
	dir, err := s.Dirs.DirPath(ctx)
	if err != nil {
		if errors.Is(err, history.ErrDirectory) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", history.ErrDirectory, err)
	}
	return filepath.Join(dir, FileName(kind)), nil
}
