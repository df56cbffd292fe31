package domain

import (
	"sort"
	"strings"
	"time"
)

// PrivateMessage is a direct message between two userIDs. Conversations are
// keyed by the unordered pair of participants, see PairKey.
type PrivateMessage struct {
	ID         string    `json:"id"`
	From       string    `json:"from"`
	FromUserID string    `json:"fromUserId"`
	ToUserID   string    `json:"toUserId"`
	Body       string    `json:"message"`
	CreatedAt  time.Time `json:"timestamp"`
	IsPrivate  bool      `json:"isPrivate"`
}

// PairKey returns the canonical conversation key for two userIDs.
// PairKey(a, b) == PairKey(b, a) for all a, b.
func PairKey(a, b string) string {
	pair := []string{a, b}
	sort.Strings(pair)
	return strings.Join(pair, "_")
}
