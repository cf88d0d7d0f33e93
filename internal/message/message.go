// Package message is the buffered chat message model and its JSONL log file.
package message

import (
	"time"

	"github.com/erg0nix/chatmeta/internal/core"
	"github.com/erg0nix/chatmeta/internal/history/metadata"
)

type Message struct {
	Time     time.Time   `json:"server_time"`
	Kind     core.Source `json:"source"`
	ID       string      `json:"id,omitempty"`
	Nick     core.Nick   `json:"nick,omitempty"`
	Text     string      `json:"text"`
	FromSelf bool        `json:"from_self,omitempty"`
}

func (m Message) ServerTime() time.Time {
	return m.Time
}

func (m Message) Source() core.Source {
	return m.Kind
}

// TriggersUnread reports whether someone else said something the user has not seen.
func (m Message) TriggersUnread() bool {
	if m.FromSelf {
		return false
	}
	return m.Kind == core.SourceUser || m.Kind == core.SourceAction
}

// CanReference reports whether the server knows this message and can resume history from it.
func (m Message) CanReference() bool {
	return !m.Kind.IsInternal()
}

func (m Message) References() metadata.MessageReferences {
	return metadata.MessageReferences{
		Timestamp: m.Time.UTC(),
		ID:        m.ID,
	}
}
