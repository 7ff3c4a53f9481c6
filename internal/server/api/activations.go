// Package api provides HTTP API handlers for the jutsu recognition system.
package api

import (
	"net/http"
	"strconv"

	"github.com/hokage/jutsu/internal/store"
)

// ActivationsHandler serves the persisted activation history.
type ActivationsHandler struct {
	store *store.Store
}

// NewActivationsHandler creates a new ActivationsHandler with the given store.
func NewActivationsHandler(s *store.Store) *ActivationsHandler {
	return &ActivationsHandler{store: s}
}

type activationResponse struct {
	ID          string  `json:"id"`
	Gesture     string  `json:"gesture"`
	JutsuName   string  `json:"jutsu_name"`
	ChakraAfter float64 `json:"chakra_after"`
	CreatedAt   string  `json:"created_at"`
}

type listActivationsResponse struct {
	Activations []activationResponse `json:"activations"`
	Counts      map[string]int       `json:"counts"`
}

// ServeHTTP handles GET /api/activations with an optional limit query
// parameter.
func (h *ActivationsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	activations, err := h.store.Activations().Recent(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list activations")
		return
	}

	counts, err := h.store.Activations().CountByGesture()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to count activations")
		return
	}

	response := listActivationsResponse{
		Activations: make([]activationResponse, 0, len(activations)),
		Counts:      make(map[string]int, len(counts)),
	}
	for _, a := range activations {
		response.Activations = append(response.Activations, activationResponse{
			ID:          a.ID,
			Gesture:     a.Gesture.String(),
			JutsuName:   a.JutsuName,
			ChakraAfter: a.ChakraAfter,
			CreatedAt:   a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	for g, n := range counts {
		response.Counts[g.String()] = n
	}

	writeJSON(w, http.StatusOK, response)
}
