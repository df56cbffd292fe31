package core

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/moti-254/chat-service/internal/domain"
	"github.com/moti-254/chat-service/internal/protocol"
)

// SendMessage appends a broadcast message to the bounded history and
// delivers it to the target room. Connections outside the room receive a
// truncated preview notification instead. Unknown connIDs no-op.
func (c *Core) SendMessage(connID, body, room string) *domain.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.session(connID)
	if s == nil {
		return nil
	}
	if room == "" {
		room = DefaultRoom
	}

	m := &domain.Message{
		ID:           uuid.New().String(),
		Sender:       s.Name,
		SenderConnID: connID,
		SenderUserID: s.UserID,
		Body:         body,
		Room:         room,
		CreatedAt:    time.Now(),
	}
	c.history.append(m)

	c.hub.RoomCast(room, protocol.Event{Type: protocol.TypeReceiveMessage, Payload: m.Clone()})

	preview := protocol.Event{
		Type: protocol.TypeNotification,
		Payload: protocol.NotificationPayload{
			Sender:  s.Name,
			Room:    room,
			Preview: truncate(body, c.opt.PreviewLen),
		},
	}
	for id, other := range c.sessions {
		if id == connID || other.Room == room {
			continue
		}
		c.hub.Unicast(id, preview)
	}

	out := m.Clone()
	return &out
}

// AddReaction sets the acting user's reaction on a message, replacing any
// earlier reaction by the same user, and rebroadcasts the updated message
// to every connection so reaction state stays consistent across rooms.
// Unknown connIDs and evicted/unknown message ids no-op.
func (c *Core) AddReaction(connID, messageID, reaction string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.session(connID)
	if s == nil {
		return
	}
	m := c.history.lookup(messageID)
	if m == nil {
		slog.Debug("reaction for unknown message", "conn", connID, "message", messageID)
		return
	}
	if m.Reactions == nil {
		m.Reactions = make(map[string]string)
	}
	m.Reactions[s.UserID] = reaction

	c.hub.BroadcastExcept("", protocol.Event{Type: protocol.TypeMessageUpdated, Payload: m.Clone()})
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
