package http

type ErrorResponse struct {
	Error string `json:"error"`
}

type MemoryStats struct {
	AllocMB      float64 `json:"allocMB"`
	SysMB        float64 `json:"sysMB"`
	HeapInuseMB  float64 `json:"heapInuseMB"`
	NumGoroutine int     `json:"numGoroutine"`
}

type StorageStats struct {
	Type            string `json:"type"`
	Users           int    `json:"users"`
	Messages        int    `json:"messages"`
	Rooms           int    `json:"rooms"`
	PrivateMessages int    `json:"privateMessages"`
}

type HealthResponse struct {
	Status      string       `json:"status"`
	Timestamp   string       `json:"timestamp"`
	Uptime      float64      `json:"uptime"`
	Memory      MemoryStats  `json:"memory"`
	Storage     StorageStats `json:"storage"`
	Environment string       `json:"environment"`
}

type ConnectionMetrics struct {
	Total  int `json:"total"`
	Online int `json:"online"`
}

type MessageMetrics struct {
	Total    int `json:"total"`
	LastHour int `json:"lastHour"`
}

type RoomMetrics struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

type PerformanceMetrics struct {
	Uptime float64     `json:"uptime"`
	Memory MemoryStats `json:"memory"`
}

type MetricsResponse struct {
	Connections ConnectionMetrics  `json:"connections"`
	Messages    MessageMetrics     `json:"messages"`
	Rooms       RoomMetrics        `json:"rooms"`
	Performance PerformanceMetrics `json:"performance"`
}

type RootResponse struct {
	Message   string   `json:"message"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}
