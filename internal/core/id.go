// Package core holds small value types shared by the history and message packages.
package core

import "strings"

// Server names the network a conversation lives on.
type Server string

func (s Server) String() string {
	return string(s)
}

// Nick is a user nickname.
type Nick string

func (n Nick) String() string {
	return string(n)
}

// Channel is an IRC channel name including its prefix.
type Channel string

func (c Channel) String() string {
	return string(c)
}

// NormalizeName trims whitespace around a server, channel, or nick.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}
