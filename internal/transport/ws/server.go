package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/moti-254/chat-service/internal/core"
	"github.com/moti-254/chat-service/internal/protocol"
)

type Server struct {
	upgrader websocket.Upgrader
	hub      *Hub
	core     *core.Core

	pingEvery time.Duration
}

func NewServer(hub *Hub, c *core.Core, allowedOrigins []string) *Server {
	return &Server{
		hub:  hub,
		core: c,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		pingEvery: 15 * time.Second,
	}
}

func originChecker(allowed []string) func(*http.Request) bool {
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
	}
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[o] = struct{}{}
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}

// WS endpoint: GET /ws
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("ws upgrade failed", "err", err)
		return
	}

	c := newWsConn(conn)
	s.hub.Add(c)
	slog.Debug("connection opened", "conn", c.id, "addr", r.RemoteAddr)

	go c.writeLoop(s.pingEvery)
	s.readLoop(c)

	s.hub.Remove(c.id)
	s.core.Disconnect(c.id)

	if err := c.Close(); err != nil {
		slog.Debug("ws close failed", "conn", c.id, "err", err)
	}
}

func (s *Server) readLoop(c *wsConn) {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(1 << 20)
	_ = c.conn.SetReadDeadline(time.Now().Add(2 * s.pingEvery))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(2 * s.pingEvery))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Debug("ws read failed", "conn", c.id, "err", err)
			}
			return
		}
		var ev protocol.Event
		if err := json.Unmarshal(data, &ev); err != nil {
			slog.Debug("malformed event", "conn", c.id, "err", err)
			continue
		}
		s.dispatch(c, ev)
	}
}

// dispatch routes one inbound event into the core. Payload fields the
// client left out decode to zero values; the core tolerates them.
func (s *Server) dispatch(c *wsConn, ev protocol.Event) {
	switch ev.Type {
	case protocol.TypeUserJoin:
		var p protocol.UserJoinPayload
		if protocol.Decode(ev.Payload, &p) == nil {
			s.core.Join(c.id, p.Username, p.UserID)
		}

	case protocol.TypeSendMessage:
		var p protocol.SendMessagePayload
		if protocol.Decode(ev.Payload, &p) == nil {
			s.core.SendMessage(c.id, p.Message, p.Room)
		}

	case protocol.TypeTyping:
		var p protocol.TypingPayload
		if protocol.Decode(ev.Payload, &p) == nil {
			s.core.SetTyping(c.id, p.IsTyping, p.Room)
		}

	case protocol.TypePrivateMessage:
		var p protocol.PrivateMessagePayload
		if protocol.Decode(ev.Payload, &p) == nil {
			s.core.SendPrivate(c.id, p.ToUserID, p.Message)
		}

	case protocol.TypeJoinRoom:
		// the client sends the bare room name; tolerate an object too
		var room string
		if protocol.Decode(ev.Payload, &room) != nil {
			var p protocol.JoinRoomPayload
			if protocol.Decode(ev.Payload, &p) != nil {
				return
			}
			room = p.Room
		}
		s.core.ChangeRoom(c.id, room)

	case protocol.TypeMessageReaction:
		var p protocol.ReactionPayload
		if protocol.Decode(ev.Payload, &p) == nil {
			s.core.AddReaction(c.id, p.MessageID, p.Reaction)
		}

	default:
		slog.Debug("unknown event type", "conn", c.id, "type", ev.Type)
	}
}
