package core

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Source classifies where a buffered message came from.
type Source int

const (
	SourceUser Source = iota
	SourceAction
	SourceServer
	SourceInternalStatus
	SourceInternalLogs
)

var sourceNames = map[Source]string{
	SourceUser:           "user",
	SourceAction:         "action",
	SourceServer:         "server",
	SourceInternalStatus: "internal_status",
	SourceInternalLogs:   "internal_logs",
}

func (s Source) String() string {
	if name, ok := sourceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("source(%d)", int(s))
}

// IsInternal reports whether the message was produced by the client rather than a server.
func (s Source) IsInternal() bool {
	return s == SourceInternalStatus || s == SourceInternalLogs
}

// ParseSource maps a source name back to its Source value.
func ParseSource(name string) (Source, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for source, sourceName := range sourceNames {
		if sourceName == name {
			return source, nil
		}
	}
	return 0, fmt.Errorf("unknown message source %q", name)
}

func (s Source) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Source) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}

	source, err := ParseSource(name)
	if err != nil {
		return err
	}

	*s = source
	return nil
}
