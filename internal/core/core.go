// Package core owns all mutable chat state: the session registry, the
// bounded message history, the typing set and the private conversation
// logs. Every mutation runs under one mutex so that cross-store operations
// (a disconnect touches both the registry and the typing set) are observed
// atomically.
package core

import (
	"sync"
	"time"

	"github.com/moti-254/chat-service/internal/domain"
	"github.com/moti-254/chat-service/internal/protocol"
)

// Hub is the addressing capability the core needs from the transport.
// BroadcastExcept("") delivers to every live connection. SetRoom keeps the
// hub's room index in step with the registry; the registry stays the source
// of truth for membership.
type Hub interface {
	Unicast(connID string, ev protocol.Event)
	RoomCast(room string, ev protocol.Event)
	BroadcastExcept(connID string, ev protocol.Event)
	SetRoom(connID, room string)
}

const DefaultRoom = "general"

type Options struct {
	HistoryCap  int      // bound on stored broadcast messages
	JoinHistory int      // history entries replayed to a new joiner
	PreviewLen  int      // preview length for cross-room notifications
	Rooms       []string // suggested room list sent to new joiners
}

func (o *Options) normalize() {
	if o.HistoryCap <= 0 {
		o.HistoryCap = 1000
	}
	if o.JoinHistory <= 0 {
		o.JoinHistory = 100
	}
	if o.PreviewLen <= 0 {
		o.PreviewLen = 50
	}
	if len(o.Rooms) == 0 {
		o.Rooms = []string{"general", "random", "tech", "gaming"}
	}
}

type Core struct {
	mu  sync.Mutex
	hub Hub
	opt Options

	sessions map[string]*domain.Session
	history  *history
	typing   map[string]domain.TypingEntry
	private  map[string][]domain.PrivateMessage

	startedAt time.Time
}

func New(hub Hub, opt Options) *Core {
	opt.normalize()
	return &Core{
		hub:       hub,
		opt:       opt,
		sessions:  make(map[string]*domain.Session),
		history:   newHistory(opt.HistoryCap),
		typing:    make(map[string]domain.TypingEntry),
		private:   make(map[string][]domain.PrivateMessage),
		startedAt: time.Now(),
	}
}

// sessionList snapshots the registry for a user_list event.
// Caller must hold c.mu.
func (c *Core) sessionList() []domain.Session {
	out := make([]domain.Session, 0, len(c.sessions))
	for _, s := range c.sessions {
		out = append(out, *s)
	}
	return out
}

// typingNames returns display names of sessions typing in room; an empty
// room matches every entry. Caller must hold c.mu.
func (c *Core) typingNames(room string) []string {
	out := make([]string, 0, len(c.typing))
	for _, t := range c.typing {
		if room == "" || t.Room == room {
			out = append(out, t.Name)
		}
	}
	return out
}
