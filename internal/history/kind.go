// Package history identifies conversations and resolves where their records live on disk.
package history

import (
	"fmt"
	"strings"

	"github.com/erg0nix/chatmeta/internal/core"
)

// Kind identifies one conversation: Server, Channel, Query, Logs, or Highlights.
type Kind interface {
	// String renders the kind in the form accepted by ParseKind.
	String() string
	isKind()
}

type Server struct {
	Server core.Server
}

type Channel struct {
	Server  core.Server
	Channel core.Channel
}

type Query struct {
	Server core.Server
	Nick   core.Nick
}

type Logs struct{}

type Highlights struct{}

func (Server) isKind()     {}
func (Channel) isKind()    {}
func (Query) isKind()      {}
func (Logs) isKind()       {}
func (Highlights) isKind() {}

func (k Server) String() string {
	return "server:" + k.Server.String()
}

func (k Channel) String() string {
	return "channel:" + k.Server.String() + "/" + k.Channel.String()
}

func (k Query) String() string {
	return "query:" + k.Server.String() + "/" + k.Nick.String()
}

func (Logs) String() string {
	return "logs"
}

func (Highlights) String() string {
	return "highlights"
}

// ParseKind parses "server:<s>", "channel:<s>/<chan>", "query:<s>/<nick>", "logs", or "highlights".
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)

	switch strings.ToLower(s) {
	case "logs":
		return Logs{}, nil
	case "highlights":
		return Highlights{}, nil
	}

	prefix, rest, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("parse kind %q: missing prefix", s)
	}

	switch strings.ToLower(prefix) {
	case "server":
		server := core.NormalizeName(rest)
		if server == "" {
			return nil, fmt.Errorf("parse kind %q: empty server", s)
		}
		return Server{Server: core.Server(server)}, nil
	case "channel", "query":
		server, target, ok := strings.Cut(rest, "/")
		server = core.NormalizeName(server)
		target = core.NormalizeName(target)
		if !ok || server == "" || target == "" {
			return nil, fmt.Errorf("parse kind %q: expected %s:<server>/<target>", s, prefix)
		}
		if strings.EqualFold(prefix, "channel") {
			return Channel{Server: core.Server(server), Channel: core.Channel(target)}, nil
		}
		return Query{Server: core.Server(server), Nick: core.Nick(target)}, nil
	default:
		return nil, fmt.Errorf("parse kind %q: unknown prefix %q", s, prefix)
	}
}
