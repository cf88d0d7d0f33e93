// Package isupport models the server capabilities used to resume history queries.
package isupport

import (
	"strings"
	"time"
)

// MessageReferenceType is a kind of reference a server accepts in CHATHISTORY requests.
type MessageReferenceType int

const (
	MessageReferenceMessageID MessageReferenceType = iota
	MessageReferenceTimestamp
)

func (t MessageReferenceType) String() string {
	switch t {
	case MessageReferenceMessageID:
		return "msgid"
	case MessageReferenceTimestamp:
		return "timestamp"
	default:
		return "unknown"
	}
}

// ParseMessageReferenceTypes parses a MSGREFTYPES token value such as "msgid,timestamp".
// Order is preserved and unknown types are skipped.
func ParseMessageReferenceTypes(value string) []MessageReferenceType {
	var types []MessageReferenceType
	seen := map[MessageReferenceType]bool{}

	for _, token := range strings.Split(value, ",") {
		var t MessageReferenceType
		switch strings.ToLower(strings.TrimSpace(token)) {
		case "msgid":
			t = MessageReferenceMessageID
		case "timestamp":
			t = MessageReferenceTimestamp
		default:
			continue
		}

		if seen[t] {
			continue
		}
		seen[t] = true
		types = append(types, t)
	}

	return types
}

// DefaultMessageReferenceTypes is used when a server does not advertise MSGREFTYPES.
func DefaultMessageReferenceTypes() []MessageReferenceType {
	return []MessageReferenceType{MessageReferenceTimestamp}
}

// MessageReference is a resolved CHATHISTORY reference: MessageID, Timestamp, or None.
type MessageReference interface {
	// String renders the reference as a CHATHISTORY parameter.
	String() string
	isMessageReference()
}

type MessageID string

func (id MessageID) String() string {
	return "msgid=" + string(id)
}

func (MessageID) isMessageReference() {}

type Timestamp time.Time

func (ts Timestamp) Time() time.Time {
	return time.Time(ts)
}

func (ts Timestamp) String() string {
	return "timestamp=" + time.Time(ts).UTC().Format("2006-01-02T15:04:05.000Z")
}

func (Timestamp) isMessageReference() {}

// None means no usable reference exists; CHATHISTORY spells it "*".
type None struct{}

func (None) String() string {
	return "*"
}

func (None) isMessageReference() {}
