package metadata

import (
	"testing"
	"time"

	"github.com/erg0nix/chatmeta/internal/core"
)

type testMessage struct {
	at           time.Time
	source       core.Source
	id           string
	triggers     bool
	canReference bool
}

func (m testMessage) ServerTime() time.Time { return m.at }
func (m testMessage) Source() core.Source   { return m.source }
func (m testMessage) TriggersUnread() bool  { return m.triggers }
func (m testMessage) CanReference() bool    { return m.canReference }

func (m testMessage) References() MessageReferences {
	return MessageReferences{Timestamp: m.at, ID: m.id}
}

var baseTime = time.Date(2025, 2, 12, 12, 30, 45, 0, time.UTC)

func at(seconds int) time.Time {
	return baseTime.Add(time.Duration(seconds) * time.Second)
}

func msgs(messages ...testMessage) []Message {
	return Messages(messages)
}

func markerPtr(m ReadMarker) *ReadMarker {
	return &m
}

func assertMetadataEqual(t *testing.T, got, want Metadata) {
	t.Helper()

	switch {
	case (got.ReadMarker == nil) != (want.ReadMarker == nil):
		t.Errorf("ReadMarker: got %v, want %v", got.ReadMarker, want.ReadMarker)
	case got.ReadMarker != nil && !got.ReadMarker.Equal(*want.ReadMarker):
		t.Errorf("ReadMarker: got %s, want %s", got.ReadMarker, want.ReadMarker)
	}

	switch {
	case (got.LastTriggersUnread == nil) != (want.LastTriggersUnread == nil):
		t.Errorf("LastTriggersUnread: got %v, want %v", got.LastTriggersUnread, want.LastTriggersUnread)
	case got.LastTriggersUnread != nil && !got.LastTriggersUnread.Equal(*want.LastTriggersUnread):
		t.Errorf("LastTriggersUnread: got %v, want %v", *got.LastTriggersUnread, *want.LastTriggersUnread)
	}

	switch {
	case (got.ChathistoryReferences == nil) != (want.ChathistoryReferences == nil):
		t.Errorf("ChathistoryReferences: got %v, want %v", got.ChathistoryReferences, want.ChathistoryReferences)
	case got.ChathistoryReferences != nil:
		if !got.ChathistoryReferences.Equal(*want.ChathistoryReferences) {
			t.Errorf("ChathistoryReferences.Timestamp: got %v, want %v",
				got.ChathistoryReferences.Timestamp, want.ChathistoryReferences.Timestamp)
		}
		if got.ChathistoryReferences.ID != want.ChathistoryReferences.ID {
			t.Errorf("ChathistoryReferences.ID: got %q, want %q",
				got.ChathistoryReferences.ID, want.ChathistoryReferences.ID)
		}
	}
}
