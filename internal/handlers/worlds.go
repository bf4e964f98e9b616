package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/oakmund/adventure-engine/pkg/world"
)

// WorldSummary is one entry in the world catalog listing.
type WorldSummary struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type WorldsHandler struct {
	logger *slog.Logger
}

func NewWorldsHandler(logger *slog.Logger) *WorldsHandler {
	return &WorldsHandler{logger: logger}
}

// ServeHTTP lists the available world settings in menu order.
func (h *WorldsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		response := ErrorResponse{
			Error: "Method not allowed. Supported methods: GET",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	worlds := make([]WorldSummary, 0, len(world.Types))
	for _, t := range world.Types {
		worlds = append(worlds, WorldSummary{
			Key:         string(t),
			Name:        world.DisplayName(t),
			Description: world.Description(t),
		})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(worlds); err != nil {
		h.logger.Error("Failed to encode worlds response", "error", err)
	}
}
