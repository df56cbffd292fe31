package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	middlewareChi "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/moti-254/chat-service/internal/transport/ws"
)

func NewRouter(h *Handler, wsServer *ws.Server, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewareChi.RequestID)
	r.Use(middlewareChi.RealIP)
	r.Use(middlewareChi.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	// WS endpoint stays outside the timeout group: connections are long-lived
	r.Get("/ws", wsServer.HandleWS)

	r.Group(func(api chi.Router) {
		api.Use(middlewareChi.Timeout(30 * time.Second))

		api.Route("/api", func(ar chi.Router) {
			ar.Get("/health", h.Health)
			ar.Get("/metrics", h.Metrics)
			ar.Get("/messages", h.Messages)
			ar.Get("/users", h.Users)
			ar.Get("/rooms", h.Rooms)
			ar.Get("/private-messages/{userId1}/{userId2}", h.PrivateMessages)
		})

		api.Get("/", h.Root)
	})

	return r
}
