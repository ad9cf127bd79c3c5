package handler

import (
	"net/http"

	"github.com/techub/rps/internal/api/response"
	"github.com/techub/rps/internal/metrics"
)

// HealthHandler reports operational health from the metrics sink
type HealthHandler struct {
	sink *metrics.Sink
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(sink *metrics.Sink) *HealthHandler {
	return &HealthHandler{
		sink: sink,
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	games, wins, losses, draws := h.sink.Totals()
	response.JSON(w, http.StatusOK, response.NewHealth(games, wins, losses, draws, h.sink.WinRate()))
}
