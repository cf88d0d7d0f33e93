package metadata

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/erg0nix/chatmeta/internal/isupport"
)

// MessageReferences locates a message for resuming CHATHISTORY queries.
// Equality and ordering consider Timestamp only; ID is carried along.
type MessageReferences struct {
	Timestamp time.Time
	ID        string
}

func (r MessageReferences) HasID() bool {
	return r.ID != ""
}

func (r MessageReferences) Equal(other MessageReferences) bool {
	return r.Timestamp.Equal(other.Timestamp)
}

func (r MessageReferences) Compare(other MessageReferences) int {
	return r.Timestamp.Compare(other.Timestamp)
}

// MessageReference returns the first type in preferred that r can satisfy.
// The order of preferred decides, not the kind of reference.
func (r MessageReferences) MessageReference(preferred []isupport.MessageReferenceType) isupport.MessageReference {
	for _, referenceType := range preferred {
		switch referenceType {
		case isupport.MessageReferenceMessageID:
			if r.HasID() {
				return isupport.MessageID(r.ID)
			}
		case isupport.MessageReferenceTimestamp:
			return isupport.Timestamp(r.Timestamp)
		}
	}
	return isupport.None{}
}

type referencesJSON struct {
	Timestamp string  `json:"timestamp"`
	ID        *string `json:"id,omitempty"`
}

func (r MessageReferences) MarshalJSON() ([]byte, error) {
	out := referencesJSON{Timestamp: formatTimestamp(r.Timestamp)}
	if r.HasID() {
		id := r.ID
		out.ID = &id
	}
	return json.Marshal(out)
}

func (r *MessageReferences) UnmarshalJSON(data []byte) error {
	var in referencesJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	if in.Timestamp == "" {
		return errors.New("message references: missing timestamp")
	}

	ts, err := parseTimestamp(in.Timestamp)
	if err != nil {
		return err
	}

	r.Timestamp = ts
	r.ID = ""
	if in.ID != nil {
		r.ID = *in.ID
	}
	return nil
}
