package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/oakmund/adventure-engine/pkg/character"
)

// UpdateCharacterRequest defines the request body for character updates.
// Attribute changes are deltas and clamp to the valid range; experience
// is additive and may trigger a level-up.
type UpdateCharacterRequest struct {
	Attribute  string `json:"attribute,omitempty"`
	Delta      int    `json:"delta,omitempty"`
	Experience int    `json:"experience,omitempty"`
}

type UpdateCharacterResponse struct {
	Character *character.Character `json:"character"`
	LeveledUp bool                 `json:"leveled_up"`
}

func (h *GameHandler) handleCharacterUpdate(w http.ResponseWriter, r *http.Request, gameID uuid.UUID) {
	var req UpdateCharacterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in character update body", "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if req.Attribute == "" && req.Experience == 0 {
		h.writeError(w, http.StatusBadRequest, "attribute or experience field is required")
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

	if req.Attribute != "" {
		if ok := rec.Character.ModifyAttribute(req.Attribute, req.Delta); !ok {
			h.writeError(w, http.StatusBadRequest, "unknown attribute: "+req.Attribute)
			return
		}
	}

	leveledUp := false
	if req.Experience > 0 {
		leveledUp = rec.Character.GainExperience(req.Experience)
	}

	if err := h.store.Save(r.Context(), gameID, rec); err != nil {
		h.logger.Error("Failed to save session", "error", err, "id", gameID.String())
		h.writeError(w, http.StatusInternalServerError, "Failed to save game session")
		return
	}

	h.logger.Debug("Character updated",
		"id", gameID.String(),
		"attribute", req.Attribute,
		"delta", req.Delta,
		"experience", req.Experience,
		"leveled_up", leveledUp)

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(UpdateCharacterResponse{
		Character: rec.Character,
		LeveledUp: leveledUp,
	}); err != nil {
		h.logger.Error("Failed to encode character response", "error", err)
	}
}
