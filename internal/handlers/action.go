package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/oakmund/adventure-engine/pkg/game"
	"github.com/oakmund/adventure-engine/pkg/prompts"
	"github.com/oakmund/adventure-engine/pkg/state"
)

// ActionRequest defines the request body for one turn
type ActionRequest struct {
	Input string `json:"input"`
}

type ActionResponse struct {
	Response    string         `json:"response"`
	Description string         `json:"description"`
	Options     []string       `json:"options"`
	State       state.Snapshot `json:"state"`
}

// handleAction runs one turn of an existing session. The game is rebuilt
// from the session record, the turn is processed, and the updated state
// is written back.
func (h *GameHandler) handleAction(w http.ResponseWriter, r *http.Request, gameID uuid.UUID) {
	var req ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in action request body", "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if strings.TrimSpace(req.Input) == "" {
		h.writeError(w, http.StatusBadRequest, "input field is required")
		return
	}

	rec, err := h.store.Load(r.Context(), gameID)
	if err != nil {
		h.logger.Error("Failed to load session", "error", err, "id", gameID.String())
		h.writeError(w, http.StatusInternalServerError, "Failed to load game session")
		return
	}
	if rec == nil {
		h.logger.Warn("Game session not found", "id", gameID.String())
		h.writeError(w, http.StatusNotFound, "Game session not found")
		return
	}

	g := game.New(h.llm, h.logger)
	if err := g.Rebuild(string(rec.World), rec.Character, rec.State); err != nil {
		h.logger.Error("Failed to rebuild game from session", "error", err, "id", gameID.String())
		h.writeError(w, http.StatusInternalServerError, "Failed to restore game session")
		return
	}

	ctx, cancel := contextWithLLMTimeout(r)
	defer cancel()

	resp, err := g.ProcessAction(ctx, req.Input)
	if err != nil {
		h.logger.Error("Failed to process action", "error", err, "id", gameID.String())
		h.writeError(w, http.StatusBadGateway, "Failed to generate storyteller response")
		return
	}

	rec.State = g.State().Snapshot()
	if err := h.store.Save(r.Context(), gameID, rec); err != nil {
		h.logger.Error("Failed to save session", "error", err, "id", gameID.String())
		h.writeError(w, http.StatusInternalServerError, "Failed to save game session")
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ActionResponse{
		Response:    resp,
		Description: prompts.ExtractDescription(resp),
		Options:     prompts.ExtractOptions(resp),
		State:       rec.State,
	}); err != nil {
		h.logger.Error("Failed to encode action response", "error", err)
	}
}
