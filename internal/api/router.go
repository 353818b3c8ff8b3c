package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/kellypool/internal/api/handler"
	"github.com/mcoot/kellypool/internal/api/middleware"
	"github.com/mcoot/kellypool/internal/services/table"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	TableController *table.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	tableHandler := handler.NewTableHandler(cfg.TableController, cfg.Logger)

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Table routes
	api.HandleFunc("/tables", tableHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/tables", tableHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/tables/{id}", tableHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/tables/{id}", tableHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/tables/{id}/history", tableHandler.History).Methods(http.MethodGet)

	// Roster routes
	api.HandleFunc("/tables/{id}/players", tableHandler.AddPlayer).Methods(http.MethodPost)
	api.HandleFunc("/tables/{id}/players/{player_id}", tableHandler.RemovePlayer).Methods(http.MethodDelete)

	// Game routes
	api.HandleFunc("/tables/{id}/start", tableHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/tables/{id}/pocket", tableHandler.Pocket).Methods(http.MethodPost)
	api.HandleFunc("/tables/{id}/reset", tableHandler.Reset).Methods(http.MethodPost)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
