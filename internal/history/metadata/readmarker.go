package metadata

import (
	"fmt"
	"time"

	"github.com/erg0nix/chatmeta/internal/core"
)

const timestampLayout = "2006-01-02T15:04:05.000Z"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// ReadMarker is the instant of the most recent message the user has seen.
type ReadMarker struct {
	t time.Time
}

func NewReadMarker(t time.Time) ReadMarker {
	return ReadMarker{t: t.UTC()}
}

// ParseReadMarker accepts any RFC3339 timestamp and normalizes it to UTC.
func ParseReadMarker(s string) (ReadMarker, error) {
	t, err := parseTimestamp(s)
	if err != nil {
		return ReadMarker{}, fmt.Errorf("parse read marker: %w", err)
	}
	return ReadMarker{t: t}, nil
}

// LatestReadMarker returns the server time of the newest message that may anchor the
// read position. Status lines never do; the logs buffer does, so it keeps its own backlog.
func LatestReadMarker(messages []Message) (ReadMarker, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Source() == core.SourceInternalStatus {
			continue
		}
		return NewReadMarker(messages[i].ServerTime()), true
	}
	return ReadMarker{}, false
}

func (m ReadMarker) Time() time.Time {
	return m.t
}

// Compare returns -1, 0, or +1 as m is before, equal to, or after other.
func (m ReadMarker) Compare(other ReadMarker) int {
	return m.t.Compare(other.t)
}

func (m ReadMarker) Before(other ReadMarker) bool {
	return m.Compare(other) < 0
}

func (m ReadMarker) Equal(other ReadMarker) bool {
	return m.Compare(other) == 0
}

// String renders RFC3339 with millisecond precision and a Z designator.
func (m ReadMarker) String() string {
	return formatTimestamp(m.t)
}

func (m ReadMarker) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *ReadMarker) UnmarshalText(text []byte) error {
	parsed, err := ParseReadMarker(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
