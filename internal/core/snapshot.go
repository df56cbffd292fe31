package core

import (
	"time"

	"github.com/moti-254/chat-service/internal/domain"
)

// Stats is a point-in-time view of the core's state, consumed by the
// read-only health and metrics endpoints.
type Stats struct {
	Sessions             int
	OnlineSessions       int
	HistoryLen           int
	MessagesLastHour     int
	SuggestedRooms       int
	ActiveRooms          int
	PrivateConversations int
	Uptime               time.Duration
}

func (c *Core) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	online := 0
	for _, s := range c.sessions {
		if s.Online {
			online++
		}
	}

	hourAgo := time.Now().Add(-time.Hour)
	lastHour := 0
	for _, m := range c.history.msgs {
		if m.CreatedAt.After(hourAgo) {
			lastHour++
		}
	}

	// rooms seen in the most recent history window
	active := make(map[string]struct{})
	for _, m := range c.history.last(c.opt.JoinHistory) {
		active[m.Room] = struct{}{}
	}

	return Stats{
		Sessions:             len(c.sessions),
		OnlineSessions:       online,
		HistoryLen:           c.history.len(),
		MessagesLastHour:     lastHour,
		SuggestedRooms:       len(c.opt.Rooms),
		ActiveRooms:          len(active),
		PrivateConversations: len(c.private),
		Uptime:               time.Since(c.startedAt),
	}
}

// Users snapshots the session registry.
func (c *Core) Users() []domain.Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.sessionList()
}

// MessagesPage returns up to limit messages, newest first, skipping the
// newest offset entries, optionally filtered to one room.
func (c *Core) MessagesPage(room string, limit, offset int) []domain.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	var filtered []*domain.Message
	if room == "" {
		filtered = c.history.msgs
	} else {
		for _, m := range c.history.msgs {
			if m.Room == room {
				filtered = append(filtered, m)
			}
		}
	}

	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	end := len(filtered) - offset
	if end < 0 {
		end = 0
	}
	start := end - limit
	if start < 0 {
		start = 0
	}

	out := make([]domain.Message, 0, end-start)
	for i := end - 1; i >= start; i-- {
		out = append(out, filtered[i].Clone())
	}
	return out
}
