package domain

import "time"

// Session binds a live transport connection to a display identity.
// ConnID is owned by the transport and unique per connection; UserID is
// client-supplied and stable across reconnects, so several sessions may
// share one UserID.
type Session struct {
	ConnID   string    `json:"id"`
	Name     string    `json:"username"`
	UserID   string    `json:"userId"`
	Room     string    `json:"room"`
	Online   bool      `json:"isOnline"`
	LastSeen time.Time `json:"lastSeen"`
}
