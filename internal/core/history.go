package core

import "github.com/moti-254/chat-service/internal/domain"

// history is the append-only, capacity-bounded log of broadcast messages.
// Appending at capacity evicts the oldest entry, so len never exceeds cap.
type history struct {
	cap  int
	msgs []*domain.Message
	byID map[string]*domain.Message
}

func newHistory(capacity int) *history {
	return &history{
		cap:  capacity,
		byID: make(map[string]*domain.Message),
	}
}

func (h *history) append(m *domain.Message) {
	if len(h.msgs) >= h.cap {
		evicted := h.msgs[0]
		h.msgs = h.msgs[1:]
		delete(h.byID, evicted.ID)
	}
	h.msgs = append(h.msgs, m)
	h.byID[m.ID] = m
}

// lookup returns nil when the id was evicted or never existed.
func (h *history) lookup(id string) *domain.Message {
	return h.byID[id]
}

func (h *history) len() int {
	return len(h.msgs)
}

// last returns clones of the newest n entries in append order.
func (h *history) last(n int) []domain.Message {
	if n > len(h.msgs) {
		n = len(h.msgs)
	}
	out := make([]domain.Message, 0, n)
	for _, m := range h.msgs[len(h.msgs)-n:] {
		out = append(out, m.Clone())
	}
	return out
}
