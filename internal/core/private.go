package core

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/moti-254/chat-service/internal/domain"
	"github.com/moti-254/chat-service/internal/protocol"
)

// SendPrivate appends a direct message to the canonical-pair conversation
// log and delivers it to every live connection of the recipient userID,
// plus back to the sender's own connection. With no live recipient the
// message is stored but not delivered; there is no offline queue and no
// failure signal to the sender.
func (c *Core) SendPrivate(connID, toUserID, body string) *domain.PrivateMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.session(connID)
	if s == nil {
		return nil
	}

	pm := domain.PrivateMessage{
		ID:         uuid.New().String(),
		From:       s.Name,
		FromUserID: s.UserID,
		ToUserID:   toUserID,
		Body:       body,
		CreatedAt:  time.Now(),
		IsPrivate:  true,
	}
	key := domain.PairKey(s.UserID, toUserID)
	c.private[key] = append(c.private[key], pm)

	ev := protocol.Event{Type: protocol.TypePrivateMessage, Payload: pm}
	recipients := c.sessionsByUser(toUserID)
	for _, r := range recipients {
		c.hub.Unicast(r.ConnID, ev)
	}
	c.hub.Unicast(connID, ev)

	if len(recipients) == 0 {
		slog.Debug("private message stored with no live recipient",
			"from", s.UserID, "to", toUserID)
	}

	return &pm
}

// PrivateHistory returns the conversation log for the unordered pair
// (a, b) in append order. PrivateHistory(a, b) and PrivateHistory(b, a)
// are the same log.
func (c *Core) PrivateHistory(a, b string) []domain.PrivateMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	log := c.private[domain.PairKey(a, b)]
	out := make([]domain.PrivateMessage, len(log))
	copy(out, log)
	return out
}
