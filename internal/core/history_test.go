package core

import (
	"fmt"
	"testing"

	"github.com/moti-254/chat-service/internal/domain"
)

func TestHistoryNeverExceedsCap(t *testing.T) {
	h := newHistory(3)
	for i := 1; i <= 10; i++ {
		h.append(&domain.Message{ID: fmt.Sprintf("id%d", i), Body: fmt.Sprintf("m%d", i)})
		if h.len() > 3 {
			t.Fatalf("after %d appends len = %d, exceeds cap", i, h.len())
		}
	}
	if h.len() != 3 {
		t.Fatalf("len = %d, want 3", h.len())
	}
	if h.msgs[0].Body != "m8" || h.msgs[2].Body != "m10" {
		t.Fatalf("surviving window = %q..%q, want m8..m10", h.msgs[0].Body, h.msgs[2].Body)
	}
}

func TestHistoryLookupAfterEviction(t *testing.T) {
	h := newHistory(2)
	h.append(&domain.Message{ID: "a"})
	h.append(&domain.Message{ID: "b"})
	h.append(&domain.Message{ID: "c"})

	if h.lookup("a") != nil {
		t.Fatal("evicted id still resolvable")
	}
	if h.lookup("b") == nil || h.lookup("c") == nil {
		t.Fatal("surviving ids not resolvable")
	}
	if h.lookup("never") != nil {
		t.Fatal("unknown id resolvable")
	}
}

func TestHistoryLast(t *testing.T) {
	h := newHistory(10)
	for i := 1; i <= 5; i++ {
		h.append(&domain.Message{ID: fmt.Sprintf("id%d", i), Body: fmt.Sprintf("m%d", i)})
	}

	last := h.last(3)
	if len(last) != 3 || last[0].Body != "m3" || last[2].Body != "m5" {
		t.Fatalf("last(3) = %+v", last)
	}
	if got := h.last(100); len(got) != 5 {
		t.Fatalf("last(100) = %d entries, want 5", len(got))
	}
}

func TestHistoryLastCopiesReactions(t *testing.T) {
	h := newHistory(10)
	stored := &domain.Message{ID: "a", Reactions: map[string]string{"u1": "👍"}}
	h.append(stored)

	got := h.last(1)
	stored.Reactions["u1"] = "🔥"
	stored.Reactions["u2"] = "🎉"

	if got[0].Reactions["u1"] != "👍" || len(got[0].Reactions) != 1 {
		t.Fatalf("replay snapshot shares the stored map: %v", got[0].Reactions)
	}
}
