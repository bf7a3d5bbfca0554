package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/zeroXten/alexa-threat-model-game/internal/api/response"
)

// pingTimeout bounds the store check so a hung store can't stall health probes
const pingTimeout = 2 * time.Second

// Pinger checks a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports whether the server can serve turns
type HealthHandler struct {
	store Pinger
	cards int
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store Pinger, cards int) *HealthHandler {
	return &HealthHandler{store: store, cards: cards}
}

// Get handles GET /api/v1/health. An unreachable store answers 503 so
// load balancers stop routing turns that would only get an apology.
func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		response.JSON(w, http.StatusServiceUnavailable, response.HealthResponse{
			Status: "degraded",
			Cards:  h.cards,
			Store:  "unavailable",
		})
		return
	}

	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok", Cards: h.cards, Store: "ok"})
}
