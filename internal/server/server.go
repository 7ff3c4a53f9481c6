// Package server provides the HTTP server for the jutsu recognition system.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/hokage/jutsu/internal/app"
	"github.com/hokage/jutsu/internal/capture"
	"github.com/hokage/jutsu/internal/server/api"
	"github.com/hokage/jutsu/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
	App       *app.App
	Camera    capture.Camera
}

// Server represents the HTTP server for the jutsu application.
type Server struct {
	config Config
	mux    *http.ServeMux
	events *EventsHandler
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.App != nil {
		jutsuHandler := api.NewJutsuHandler(s.config.App, s.config.Store)
		s.mux.Handle("/api/jutsus", jutsuHandler)
		s.mux.Handle("/api/jutsus/", jutsuHandler)

		stateHandler := api.NewStateHandler(s.config.App)
		s.mux.Handle("/api/state", stateHandler)
		s.mux.Handle("/api/controls", stateHandler)

		s.events = NewEventsHandler()
		s.config.App.AddSink(s.events)
		s.mux.Handle("/api/events", s.events)
	}

	if s.config.Store != nil {
		s.mux.Handle("/api/activations", api.NewActivationsHandler(s.config.Store))
	}

	// Register camera stream endpoint if Camera is configured
	if s.config.Camera != nil {
		s.mux.Handle("/api/stream", NewStreamHandler(s.config.Camera))
	}

	// Serve static files if StaticDir is configured
	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
