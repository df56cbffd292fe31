package core

import (
	"time"

	"github.com/moti-254/chat-service/internal/domain"
	"github.com/moti-254/chat-service/internal/protocol"
)

// SetTyping upserts or removes the typing entry for connID and sends the
// recomputed per-room name list to that room only. Entries persist until an
// explicit stop or disconnect; there is no server-side expiry.
func (c *Core) SetTyping(connID string, isTyping bool, room string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.session(connID)
	if s == nil {
		return
	}
	if room == "" {
		room = DefaultRoom
	}

	if isTyping {
		c.typing[connID] = domain.TypingEntry{
			Name:      s.Name,
			Room:      room,
			StartedAt: time.Now(),
		}
	} else {
		delete(c.typing, connID)
	}

	c.hub.RoomCast(room, protocol.TypingUsers(c.typingNames(room)))
}
