package ws

import (
	"sync"

	"github.com/moti-254/chat-service/internal/protocol"
)

type Conn interface {
	ID() string
	Enqueue(ev protocol.Event) bool
	Close() error
}

// Hub indexes live connections by id and by room and implements the core's
// addressing primitives. Sends are best-effort: a connection with a full
// outbound buffer drops the event rather than stalling the fanout.
type Hub struct {
	mu     sync.RWMutex
	conns  map[string]Conn
	rooms  map[string]map[string]Conn // room -> connID -> conn
	roomOf map[string]string
}

func NewHub() *Hub {
	return &Hub{
		conns:  make(map[string]Conn),
		rooms:  make(map[string]map[string]Conn),
		roomOf: make(map[string]string),
	}
}

func (h *Hub) Add(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.conns[c.ID()] = c
}

func (h *Hub) Remove(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.conns, connID)
	h.leaveRoomLocked(connID)
}

// SetRoom moves connID into room, leaving its previous room. An empty room
// only removes the previous assignment.
func (h *Hub) SetRoom(connID, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.conns[connID]; !ok {
		return
	}
	h.leaveRoomLocked(connID)
	if room == "" {
		return
	}

	rs, ok := h.rooms[room]
	if !ok {
		rs = make(map[string]Conn)
		h.rooms[room] = rs
	}
	rs[connID] = h.conns[connID]
	h.roomOf[connID] = room
}

func (h *Hub) leaveRoomLocked(connID string) {
	prev, ok := h.roomOf[connID]
	if !ok {
		return
	}
	delete(h.roomOf, connID)
	if rs, ok := h.rooms[prev]; ok {
		delete(rs, connID)
		if len(rs) == 0 {
			delete(h.rooms, prev)
		}
	}
}

func (h *Hub) Unicast(connID string, ev protocol.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if c, ok := h.conns[connID]; ok {
		c.Enqueue(ev)
	}
}

func (h *Hub) RoomCast(room string, ev protocol.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.rooms[room] {
		c.Enqueue(ev)
	}
}

// BroadcastExcept delivers to every connection except connID; an empty
// connID addresses all of them.
func (h *Hub) BroadcastExcept(connID string, ev protocol.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, c := range h.conns {
		if id == connID {
			continue
		}
		c.Enqueue(ev)
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.conns)
}
