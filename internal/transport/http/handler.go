package http

import (
	"encoding/json"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/moti-254/chat-service/internal/core"
)

// Handler serves the read-only REST surface: health, metrics and snapshot
// views of the core's state. Nothing here mutates the core.
type Handler struct {
	core    *core.Core
	env     string
	version string
}

func NewHandler(c *core.Core, env, version string) *Handler {
	return &Handler{core: c, env: env, version: version}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func memStats() MemoryStats {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	toMB := func(b uint64) float64 {
		return float64(b) / 1024 / 1024
	}

	return MemoryStats{
		AllocMB:      toMB(ms.Alloc),
		SysMB:        toMB(ms.Sys),
		HeapInuseMB:  toMB(ms.HeapInuse),
		NumGoroutine: runtime.NumGoroutine(),
	}
}

// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	st := h.core.Stats()

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    st.Uptime.Seconds(),
		Memory:    memStats(),
		Storage: StorageStats{
			Type:            "in-memory",
			Users:           st.Sessions,
			Messages:        st.HistoryLen,
			Rooms:           st.SuggestedRooms,
			PrivateMessages: st.PrivateConversations,
		},
		Environment: h.env,
	})
}

// GET /api/metrics
func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	st := h.core.Stats()

	writeJSON(w, http.StatusOK, MetricsResponse{
		Connections: ConnectionMetrics{Total: st.Sessions, Online: st.OnlineSessions},
		Messages:    MessageMetrics{Total: st.HistoryLen, LastHour: st.MessagesLastHour},
		Rooms:       RoomMetrics{Total: st.SuggestedRooms, Active: st.ActiveRooms},
		Performance: PerformanceMetrics{Uptime: st.Uptime.Seconds(), Memory: memStats()},
	})
}

// GET /api/messages?room=&limit=&offset=
func (h *Handler) Messages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := 100
	if s := q.Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
	}
	offset := 0
	if s := q.Get("offset"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 0 {
			offset = n
		}
	}

	writeJSON(w, http.StatusOK, h.core.MessagesPage(q.Get("room"), limit, offset))
}

// GET /api/users
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.core.Users())
}

// GET /api/rooms
func (h *Handler) Rooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.core.Rooms())
}

// GET /api/private-messages/{userId1}/{userId2}
func (h *Handler) PrivateMessages(w http.ResponseWriter, r *http.Request) {
	a := chi.URLParam(r, "userId1")
	b := chi.URLParam(r, "userId2")

	writeJSON(w, http.StatusOK, h.core.PrivateHistory(a, b))
}

// GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RootResponse{
		Message:   "chat-service is running",
		Version:   h.version,
		Endpoints: []string{"/api/messages", "/api/users", "/api/rooms"},
	})
}
