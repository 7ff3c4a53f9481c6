// Package api provides HTTP API handlers for the jutsu recognition system.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/hokage/jutsu/internal/app"
	"github.com/hokage/jutsu/internal/chakra"
	"github.com/hokage/jutsu/internal/gesture"
	"github.com/hokage/jutsu/internal/store"
)

// JutsuHandler handles HTTP requests for jutsu definition resources.
type JutsuHandler struct {
	app   *app.App
	store *store.Store
}

// NewJutsuHandler creates a new JutsuHandler. The store may be nil, in which
// case updates apply to the running pipeline only.
func NewJutsuHandler(a *app.App, s *store.Store) *JutsuHandler {
	return &JutsuHandler{app: a, store: s}
}

// ServeHTTP implements the http.Handler interface and routes requests to
// appropriate methods.
func (h *JutsuHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/jutsus or /api/jutsus/{gesture}
	path := strings.TrimPrefix(r.URL.Path, "/api/jutsus")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		// Collection endpoint: /api/jutsus
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// Item endpoint: /api/jutsus/{gesture}
	g, err := gesture.ParseGesture(path)
	if err != nil {
		writeError(w, http.StatusNotFound, "Unknown gesture")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, g)
	case http.MethodPut:
		h.update(w, r, g)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Request and response types

type updateJutsuRequest struct {
	Name       string `json:"name"`
	Cost       int    `json:"cost"`
	CooldownMs int64  `json:"cooldown_ms"`
	EffectID   string `json:"effect_id"`
	SoundID    string `json:"sound_id"`
}

type jutsuResponse struct {
	Gesture    string `json:"gesture"`
	Name       string `json:"name"`
	Cost       int    `json:"cost"`
	CooldownMs int64  `json:"cooldown_ms"`
	EffectID   string `json:"effect_id"`
	SoundID    string `json:"sound_id"`
}

type listJutsusResponse struct {
	Jutsus []jutsuResponse `json:"jutsus"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// toResponse converts a chakra.Definition to a jutsuResponse.
func toResponse(d chakra.Definition) jutsuResponse {
	return jutsuResponse{
		Gesture:    d.Gesture.String(),
		Name:       d.Name,
		Cost:       d.Cost,
		CooldownMs: d.Cooldown.Milliseconds(),
		EffectID:   d.EffectID,
		SoundID:    d.SoundID,
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// list handles GET /api/jutsus and returns the live definition table.
func (h *JutsuHandler) list(w http.ResponseWriter, r *http.Request) {
	defs := h.app.Definitions()

	response := listJutsusResponse{
		Jutsus: make([]jutsuResponse, 0, len(defs)),
	}
	for _, d := range defs {
		response.Jutsus = append(response.Jutsus, toResponse(d))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/jutsus/{gesture}.
func (h *JutsuHandler) get(w http.ResponseWriter, r *http.Request, g gesture.Gesture) {
	for _, d := range h.app.Definitions() {
		if d.Gesture == g {
			writeJSON(w, http.StatusOK, toResponse(d))
			return
		}
	}
	writeError(w, http.StatusNotFound, "No jutsu bound to gesture")
}

// update handles PUT /api/jutsus/{gesture}. The gesture binding itself is
// fixed; only the jutsu's name, cost, cooldown, and effect/sound change.
func (h *JutsuHandler) update(w http.ResponseWriter, r *http.Request, g gesture.Gesture) {
	var req updateJutsuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if req.Cost <= 0 {
		writeError(w, http.StatusBadRequest, "Cost must be positive")
		return
	}
	if req.CooldownMs <= 0 {
		writeError(w, http.StatusBadRequest, "Cooldown must be positive")
		return
	}

	def := chakra.Definition{
		Gesture:  g,
		Name:     req.Name,
		Cost:     req.Cost,
		Cooldown: time.Duration(req.CooldownMs) * time.Millisecond,
		EffectID: req.EffectID,
		SoundID:  req.SoundID,
	}

	if h.store != nil {
		if err := h.store.Jutsus().Update(def); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeError(w, http.StatusNotFound, "No jutsu bound to gesture")
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to update jutsu")
			return
		}
	}

	h.app.UpdateDefinition(def)
	writeJSON(w, http.StatusOK, toResponse(def))
}
