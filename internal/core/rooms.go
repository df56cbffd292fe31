package core

import (
	"github.com/moti-254/chat-service/internal/protocol"
)

// ChangeRoom moves the session into room. Any room name is accepted; rooms
// exist implicitly the moment a session references them. Members already in
// the room are told about the arrival; the mover gets a direct ack.
func (c *Core) ChangeRoom(connID, room string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.session(connID)
	if s == nil {
		return
	}
	if room == "" {
		room = DefaultRoom
	}

	s.Room = room
	c.hub.SetRoom(connID, room)

	notice := protocol.Event{
		Type: protocol.TypeUserJoinedRoom,
		Payload: protocol.RoomEventPayload{
			Username: s.Name,
			Room:     room,
		},
	}
	for id, other := range c.sessions {
		if id != connID && other.Room == room {
			c.hub.Unicast(id, notice)
		}
	}

	c.hub.Unicast(connID, protocol.Event{Type: protocol.TypeRoomJoined, Payload: room})
}

// Rooms returns the fixed suggested room list handed to new joiners. It is
// informational only and does not constrain ChangeRoom.
func (c *Core) Rooms() []string {
	out := make([]string, len(c.opt.Rooms))
	copy(out, c.opt.Rooms)
	return out
}
