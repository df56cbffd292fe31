package core

import (
	"log/slog"
	"time"

	"github.com/moti-254/chat-service/internal/domain"
	"github.com/moti-254/chat-service/internal/protocol"
)

// Join registers a session for connID and places it in the default room.
// Everyone receives the refreshed presence list and a join notice; the
// joiner alone receives the suggested room list and recent history.
// Empty name/userID are stored as-is: identity is client-asserted and the
// registry never rejects it.
func (c *Core) Join(connID, name, userID string) domain.Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := &domain.Session{
		ConnID:   connID,
		Name:     name,
		UserID:   userID,
		Room:     DefaultRoom,
		Online:   true,
		LastSeen: time.Now(),
	}
	c.sessions[connID] = s
	c.hub.SetRoom(connID, DefaultRoom)

	c.hub.BroadcastExcept("", protocol.UserList(c.sessionList()))
	c.hub.BroadcastExcept("", protocol.Event{
		Type: protocol.TypeUserJoined,
		Payload: protocol.UserEventPayload{
			Username: name,
			ConnID:   connID,
			UserID:   userID,
		},
	})

	c.hub.Unicast(connID, protocol.Event{Type: protocol.TypeRoomList, Payload: c.opt.Rooms})
	c.hub.Unicast(connID, protocol.Event{
		Type:    protocol.TypeMessageHistory,
		Payload: c.history.last(c.opt.JoinHistory),
	})

	slog.Info("user joined", "conn", connID, "user", userID, "name", name)
	return *s
}

// Disconnect removes the session and any typing entry for connID, then
// refreshes global presence and typing state. Calling it for an absent
// connID is a no-op.
func (c *Core) Disconnect(connID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.sessions[connID]
	if !ok {
		delete(c.typing, connID)
		return
	}
	delete(c.sessions, connID)
	delete(c.typing, connID)

	c.hub.BroadcastExcept("", protocol.Event{
		Type: protocol.TypeUserLeft,
		Payload: protocol.UserEventPayload{
			Username: s.Name,
			ConnID:   connID,
			UserID:   s.UserID,
		},
	})
	c.hub.BroadcastExcept("", protocol.UserList(c.sessionList()))
	c.hub.BroadcastExcept("", protocol.TypingUsers(c.typingNames("")))

	slog.Info("user left", "conn", connID, "user", s.UserID, "name", s.Name)
}

// session resolves connID; a nil return means the event referenced a
// connection the registry does not know. Caller must hold c.mu.
func (c *Core) session(connID string) *domain.Session {
	return c.sessions[connID]
}

// sessionsByUser returns every live session with the given userID; a user
// may hold several simultaneous connections. Caller must hold c.mu.
func (c *Core) sessionsByUser(userID string) []*domain.Session {
	var out []*domain.Session
	for _, s := range c.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out
}
