package ws

import (
	"testing"

	"github.com/moti-254/chat-service/internal/protocol"
)

type stubConn struct {
	id     string
	events []protocol.Event
	full   bool
}

func (c *stubConn) ID() string { return c.id }

func (c *stubConn) Enqueue(ev protocol.Event) bool {
	if c.full {
		return false
	}
	c.events = append(c.events, ev)
	return true
}

func (c *stubConn) Close() error { return nil }

func TestHubUnicast(t *testing.T) {
	h := NewHub()
	a := &stubConn{id: "a"}
	b := &stubConn{id: "b"}
	h.Add(a)
	h.Add(b)

	h.Unicast("a", protocol.Event{Type: "x"})
	if len(a.events) != 1 || len(b.events) != 0 {
		t.Fatalf("events a=%d b=%d, want 1/0", len(a.events), len(b.events))
	}

	h.Unicast("missing", protocol.Event{Type: "x"}) // must not panic
}

func TestHubRoomCastFollowsSetRoom(t *testing.T) {
	h := NewHub()
	a := &stubConn{id: "a"}
	b := &stubConn{id: "b"}
	h.Add(a)
	h.Add(b)
	h.SetRoom("a", "general")
	h.SetRoom("b", "random")

	h.RoomCast("general", protocol.Event{Type: "x"})
	if len(a.events) != 1 || len(b.events) != 0 {
		t.Fatalf("events a=%d b=%d, want 1/0", len(a.events), len(b.events))
	}

	// moving rooms removes the old assignment
	h.SetRoom("a", "random")
	h.RoomCast("general", protocol.Event{Type: "y"})
	if len(a.events) != 1 {
		t.Fatalf("a still receives old room casts: %d", len(a.events))
	}
	h.RoomCast("random", protocol.Event{Type: "z"})
	if len(a.events) != 2 || len(b.events) != 1 {
		t.Fatalf("events a=%d b=%d, want 2/1", len(a.events), len(b.events))
	}
}

func TestHubBroadcastExcept(t *testing.T) {
	h := NewHub()
	a := &stubConn{id: "a"}
	b := &stubConn{id: "b"}
	c := &stubConn{id: "c"}
	h.Add(a)
	h.Add(b)
	h.Add(c)

	h.BroadcastExcept("b", protocol.Event{Type: "x"})
	if len(a.events) != 1 || len(b.events) != 0 || len(c.events) != 1 {
		t.Fatalf("events a=%d b=%d c=%d, want 1/0/1", len(a.events), len(b.events), len(c.events))
	}

	h.BroadcastExcept("", protocol.Event{Type: "y"})
	if len(a.events) != 2 || len(b.events) != 1 || len(c.events) != 2 {
		t.Fatalf("empty-except broadcast missed someone: a=%d b=%d c=%d",
			len(a.events), len(b.events), len(c.events))
	}
}

func TestHubRemoveDropsRoomMembership(t *testing.T) {
	h := NewHub()
	a := &stubConn{id: "a"}
	h.Add(a)
	h.SetRoom("a", "general")

	h.Remove("a")
	if h.Len() != 0 {
		t.Fatalf("len = %d after remove", h.Len())
	}
	h.RoomCast("general", protocol.Event{Type: "x"})
	h.Unicast("a", protocol.Event{Type: "x"})
	if len(a.events) != 0 {
		t.Fatalf("removed conn received %d events", len(a.events))
	}

	h.Remove("a") // idempotent
}

func TestHubFullConnDoesNotBlockOthers(t *testing.T) {
	h := NewHub()
	slow := &stubConn{id: "slow", full: true}
	fast := &stubConn{id: "fast"}
	h.Add(slow)
	h.Add(fast)

	h.BroadcastExcept("", protocol.Event{Type: "x"})
	if len(fast.events) != 1 {
		t.Fatalf("fast conn events = %d, want 1", len(fast.events))
	}
}
