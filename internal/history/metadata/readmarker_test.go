package metadata

import (
	"testing"
	"time"

	"github.com/erg0nix/chatmeta/internal/core"
)

func TestLatestReadMarker(t *testing.T) {
	tests := []struct {
		name     string
		messages []Message
		want     time.Time
		ok       bool
	}{
		{"empty", nil, time.Time{}, false},
		{
			"only status",
			msgs(
				testMessage{at: at(1), source: core.SourceInternalStatus},
				testMessage{at: at(2), source: core.SourceInternalStatus},
			),
			time.Time{}, false,
		},
		{
			"status then other",
			msgs(
				testMessage{at: at(1), source: core.SourceInternalStatus},
				testMessage{at: at(2), source: core.SourceUser},
			),
			at(2), true,
		},
		{
			"other then trailing status",
			msgs(
				testMessage{at: at(1), source: core.SourceServer},
				testMessage{at: at(2), source: core.SourceInternalStatus},
			),
			at(1), true,
		},
		{
			"logs alone",
			msgs(testMessage{at: at(1), source: core.SourceInternalLogs}),
			at(1), true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LatestReadMarker(tt.messages)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && !got.Time().Equal(tt.want) {
				t.Errorf("got %v, want %v", got.Time(), tt.want)
			}
		})
	}
}

func TestReadMarker_String(t *testing.T) {
	ts := time.Date(2024, 12, 31, 23, 59, 59, 987654321, time.FixedZone("X", 2*3600))

	if got, want := NewReadMarker(ts).String(), "2024-12-31T21:59:59.987Z"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if got, want := NewReadMarker(baseTime).String(), "2025-02-12T12:30:45.000Z"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseReadMarker(t *testing.T) {
	marker, err := ParseReadMarker("2025-02-12T14:30:45.5+02:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := baseTime.Add(500 * time.Millisecond)
	if !marker.Time().Equal(want) {
		t.Errorf("got %v, want %v", marker.Time(), want)
	}
	if marker.Time().Location() != time.UTC {
		t.Errorf("expected UTC, got %v", marker.Time().Location())
	}

	for _, input := range []string{"", "yesterday", "2025-02-12", "2025-02-12 12:30:45Z"} {
		if _, err := ParseReadMarker(input); err == nil {
			t.Errorf("ParseReadMarker(%q): expected error", input)
		}
	}
}

func TestReadMarker_TextRoundTrip(t *testing.T) {
	original := NewReadMarker(baseTime.Add(123 * time.Millisecond))

	text, err := original.MarshalText()
	if err != nil {
		t.Fatal(err)
	}

	var decoded ReadMarker
	if err := decoded.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}

	if !decoded.Equal(original) {
		t.Errorf("got %s, want %s", decoded, original)
	}
}

func TestReadMarker_Ordering(t *testing.T) {
	earlier := NewReadMarker(at(1))
	later := NewReadMarker(at(2))

	if earlier.Compare(later) != -1 || later.Compare(earlier) != 1 || earlier.Compare(earlier) != 0 {
		t.Fatal("unexpected Compare results")
	}
	if !earlier.Before(later) || later.Before(earlier) {
		t.Fatal("unexpected Before results")
	}
}
