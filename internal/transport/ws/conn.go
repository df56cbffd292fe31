package ws

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/moti-254/chat-service/internal/protocol"
)

const sendBuffer = 256

// wsConn wraps a websocket connection with a buffered outbound queue.
// Writers never block on a slow peer: Enqueue drops when the buffer is
// full and the write loop is the only goroutine touching the socket.
type wsConn struct {
	id   string
	conn *websocket.Conn

	send      chan protocol.Event
	closed    chan struct{}
	closeOnce sync.Once
}

func newWsConn(c *websocket.Conn) *wsConn {
	return &wsConn{
		id:     uuid.New().String(),
		conn:   c,
		send:   make(chan protocol.Event, sendBuffer),
		closed: make(chan struct{}),
	}
}

func (c *wsConn) ID() string { return c.id }

// Enqueue queues ev for delivery. It reports false when the connection is
// closed or its buffer is full; the event is dropped in both cases.
func (c *wsConn) Enqueue(ev protocol.Event) bool {
	select {
	case <-c.closed:
		return false
	default:
	}

	select {
	case c.send <- ev:
		return true
	default:
		return false
	}
}

// Close is safe to call from both pump goroutines; only the first call
// closes the channel and tears down the socket.
func (c *wsConn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.closed)
		err = c.conn.Close()
	})
	return err
}

// writeLoop drains the outbound queue and keeps the peer alive with pings.
func (c *wsConn) writeLoop(pingEvery time.Duration) {
	ticker := time.NewTicker(pingEvery)
	defer ticker.Stop()

	for {
		select {
		case ev := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := c.conn.WriteJSON(ev); err != nil {
				_ = c.Close()
				return
			}
		case <-ticker.C:
			_ = c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second))
		case <-c.closed:
			return
		}
	}
}
