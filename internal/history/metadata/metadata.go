// Package metadata persists per-conversation bookkeeping: the read marker, the last
// message that triggers an unread indicator, and a reference for resuming history.
package metadata

import (
	"encoding/json"
	"time"

	"github.com/erg0nix/chatmeta/internal/core"
)

// Message is the view of a buffered message the selectors need.
type Message interface {
	ServerTime() time.Time
	Source() core.Source
	TriggersUnread() bool
	CanReference() bool
	References() MessageReferences
}

// Messages adapts a slice of concrete messages for the selector functions.
func Messages[M Message](messages []M) []Message {
	out := make([]Message, len(messages))
	for i, message := range messages {
		out[i] = message
	}
	return out
}

// Metadata is the record stored for one conversation. The zero value has every field absent.
type Metadata struct {
	ReadMarker            *ReadMarker
	LastTriggersUnread    *time.Time
	ChathistoryReferences *MessageReferences
}

// LatestTriggersUnread returns the server time of the newest message that should mark
// the conversation unread.
func LatestTriggersUnread(messages []Message) (time.Time, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].TriggersUnread() {
			return messages[i].ServerTime().UTC(), true
		}
	}
	return time.Time{}, false
}

// LatestCanReference returns the references of the newest message usable as a history anchor.
func LatestCanReference(messages []Message) (MessageReferences, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].CanReference() {
			return messages[i].References(), true
		}
	}
	return MessageReferences{}, false
}

func fromMessages(messages []Message, readMarker *ReadMarker) Metadata {
	metadata := Metadata{ReadMarker: readMarker}

	if ts, ok := LatestTriggersUnread(messages); ok {
		metadata.LastTriggersUnread = &ts
	}

	if refs, ok := LatestCanReference(messages); ok {
		metadata.ChathistoryReferences = &refs
	}

	return metadata
}

type metadataJSON struct {
	ReadMarker            *ReadMarker        `json:"read_marker,omitempty"`
	LastTriggersUnread    *string            `json:"last_triggers_unread,omitempty"`
	ChathistoryReferences *MessageReferences `json:"chathistory_references,omitempty"`
}

func (m Metadata) MarshalJSON() ([]byte, error) {
	out := metadataJSON{
		ReadMarker:            m.ReadMarker,
		ChathistoryReferences: m.ChathistoryReferences,
	}
	if m.LastTriggersUnread != nil {
		ts := formatTimestamp(*m.LastTriggersUnread)
		out.LastTriggersUnread = &ts
	}
	return json.Marshal(out)
}

func (m *Metadata) UnmarshalJSON(data []byte) error {
	var in metadataJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	decoded := Metadata{
		ReadMarker:            in.ReadMarker,
		ChathistoryReferences: in.ChathistoryReferences,
	}

	if in.LastTriggersUnread != nil {
		ts, err := parseTimestamp(*in.LastTriggersUnread)
		if err != nil {
			return err
		}
		decoded.LastTriggersUnread = &ts
	}

	*m = decoded
	return nil
}
