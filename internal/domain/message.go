package domain

import (
	"maps"
	"time"
)

// Message is a broadcast chat message. Identity fields are copied from the
// sender's session at send time; Reactions maps an acting userID to its
// single active reaction value.
type Message struct {
	ID           string            `json:"id"`
	Sender       string            `json:"sender"`
	SenderConnID string            `json:"senderId"`
	SenderUserID string            `json:"senderUserId"`
	Body         string            `json:"message"`
	Room         string            `json:"room"`
	CreatedAt    time.Time         `json:"timestamp"`
	Reactions    map[string]string `json:"reactions,omitempty"`
}

// Clone copies the message with an independent Reactions map. Snapshots
// handed outside the state container must not alias the stored map, which
// keeps mutating under later reactions.
func (m *Message) Clone() Message {
	out := *m
	out.Reactions = maps.Clone(m.Reactions)
	return out
}

type TypingEntry struct {
	Name      string
	Room      string
	StartedAt time.Time
}
