package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/zeroXten/alexa-threat-model-game/internal/api/apierr"
	"github.com/zeroXten/alexa-threat-model-game/internal/api/handler"
	"github.com/zeroXten/alexa-threat-model-game/internal/middleware"
	"github.com/zeroXten/alexa-threat-model-game/internal/skill"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger    *slog.Logger
	Skill     *skill.Skill
	Store     handler.Pinger
	CardCount int
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	skillHandler := handler.NewSkillHandler(cfg.Skill, cfg.Logger)
	healthHandler := handler.NewHealthHandler(cfg.Store, cfg.CardCount)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger, apierr.PanicHandler))
	api.Use(middleware.Logging(cfg.Logger))

	// Voice platform turns
	api.HandleFunc("/skill", skillHandler.Handle).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler.Get).Methods(http.MethodGet)

	return r
}
