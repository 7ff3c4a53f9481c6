// Package api provides HTTP API handlers for the jutsu recognition system.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/hokage/jutsu/internal/app"
)

// StateHandler serves the pipeline's latest frame output and accepts
// control commands.
type StateHandler struct {
	app *app.App
}

// NewStateHandler creates a new StateHandler for the given application.
func NewStateHandler(a *app.App) *StateHandler {
	return &StateHandler{app: a}
}

type controlRequest struct {
	Action string `json:"action"`
}

type controlResponse struct {
	Action  string `json:"action"`
	Enabled bool   `json:"enabled"`
}

// ServeHTTP routes /api/state and /api/controls requests.
func (h *StateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/state":
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.state(w, r)
	case "/api/controls":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.control(w, r)
	default:
		http.NotFound(w, r)
	}
}

// state handles GET /api/state and returns the most recent frame output.
func (h *StateHandler) state(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.app.Snapshot())
}

// control handles POST /api/controls.
func (h *StateHandler) control(w http.ResponseWriter, r *http.Request) {
	var req controlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	switch req.Action {
	case "pause":
		h.app.SetEnabled(false)
	case "resume":
		h.app.SetEnabled(true)
	case "reset_chakra":
		h.app.ResetChakra()
	default:
		writeError(w, http.StatusBadRequest, "Unknown action")
		return
	}

	writeJSON(w, http.StatusOK, controlResponse{
		Action:  req.Action,
		Enabled: h.app.IsEnabled(),
	})
}
