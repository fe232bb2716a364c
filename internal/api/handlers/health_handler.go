package handlers

import (
	"net/http"

	"github.com/dayaniravi123/meduber/internal/monitoring"
)

// HealthHandler reports service liveness and the latest host stats.
type HealthHandler struct {
	stats *monitoring.StatUpdater
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(stats *monitoring.StatUpdater) *HealthHandler {
	return &HealthHandler{stats: stats}
}

// Get handles the health check request.
func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status": "ok",
		"host":   h.stats.Latest(),
	})
}
