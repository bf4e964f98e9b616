package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oakmund/adventure-engine/internal/session"
	"github.com/oakmund/adventure-engine/pkg/character"
	"github.com/oakmund/adventure-engine/pkg/game"
	"github.com/oakmund/adventure-engine/pkg/prompts"
	"github.com/oakmund/adventure-engine/pkg/state"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// llmTimeout bounds a single storyteller call at the transport layer.
const llmTimeout = 60 * time.Second

type GameHandler struct {
	llm    game.Storyteller
	store  session.Store
	logger *slog.Logger
}

func NewGameHandler(llm game.Storyteller, store session.Store, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		llm:    llm,
		store:  store,
		logger: logger,
	}
}

// ServeHTTP handles HTTP requests for game sessions
// Routes:
// POST /v1/games                  - Create new game session
// GET /v1/games/{id}              - Read session record by ID
// DELETE /v1/games/{id}           - End a session
// POST /v1/games/{id}/action      - Run one turn
// PATCH /v1/games/{id}/character  - Adjust character attributes or XP
func (h *GameHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/games"), "/")

	if path == "" {
		if r.Method != http.MethodPost {
			h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST")
			return
		}
		h.handleCreate(w, r)
		return
	}

	parts := strings.Split(path, "/")
	gameID, err := uuid.Parse(parts[0])
	if err != nil {
		h.logger.Warn("Invalid game ID", "id", parts[0], "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid game ID format")
		return
	}

	switch {
	case len(parts) == 1:
		switch r.Method {
		case http.MethodGet:
			h.handleRead(w, r, gameID)
		case http.MethodDelete:
			h.handleDelete(w, r, gameID)
		default:
			h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: GET, DELETE")
		}

	case len(parts) == 2 && parts[1] == "action":
		if r.Method != http.MethodPost {
			h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST")
			return
		}
		h.handleAction(w, r, gameID)

	case len(parts) == 2 && parts[1] == "character":
		if r.Method != http.MethodPatch {
			h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: PATCH")
			return
		}
		h.handleCharacterUpdate(w, r, gameID)

	default:
		h.writeError(w, http.StatusNotFound, "Not found")
	}
}

func (h *GameHandler) writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: msg}); err != nil {
		h.logger.Error("Failed to encode error response", "error", err)
	}
}

// CreateGameRequest defines the request body for creating a new game session
type CreateGameRequest struct {
	World     string        `json:"world"`
	Character CharacterSpec `json:"character"`
}

type CharacterSpec struct {
	Name        string         `json:"name"`
	Attributes  map[string]int `json:"attributes"`
	Description string         `json:"description"`
}

type CreateGameResponse struct {
	ID           uuid.UUID      `json:"id"`
	Introduction string         `json:"introduction"`
	Description  string         `json:"description"`
	Options      []string       `json:"options"`
	State        state.Snapshot `json:"state"`
}

func (h *GameHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Creating new game session")

	var req CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if req.World == "" {
		h.writeError(w, http.StatusBadRequest, "world field is required")
		return
	}
	if req.Character.Name == "" {
		h.writeError(w, http.StatusBadRequest, "character.name field is required")
		return
	}
	if total := character.TotalPoints(req.Character.Attributes); total > character.AttributeBudget {
		h.writeError(w, http.StatusBadRequest,
			fmt.Sprintf("attribute points exceed the budget: %d > %d", total, character.AttributeBudget))
		return
	}

	g := game.New(h.llm, h.logger)

	if _, err := g.SelectWorld(req.World); err != nil {
		h.logger.Warn("Invalid world key", "world", req.World, "error", err)
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := g.CreateCharacter(req.Character.Name, req.Character.Attributes, req.Character.Description); err != nil {
		h.logger.Warn("Invalid character", "error", err)
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := contextWithLLMTimeout(r)
	defer cancel()

	intro, err := g.Initialize(ctx)
	if err != nil {
		h.logger.Error("Failed to initialize game", "error", err)
		h.writeError(w, http.StatusBadGateway, "Failed to generate opening story")
		return
	}

	gs := g.State()
	rec := &session.Record{
		ID:        gs.ID,
		World:     g.World().Type,
		Character: g.Character(),
		State:     gs.Snapshot(),
	}
	if err := h.store.Save(r.Context(), gs.ID, rec); err != nil {
		h.logger.Error("Failed to save new session", "error", err, "id", gs.ID.String())
		h.writeError(w, http.StatusInternalServerError, "Failed to create game session")
		return
	}

	h.logger.Debug("Game session created", "id", gs.ID.String(), "world", req.World)
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(CreateGameResponse{
		ID:           gs.ID,
		Introduction: intro,
		Description:  prompts.ExtractDescription(intro),
		Options:      prompts.ExtractOptions(intro),
		State:        rec.State,
	}); err != nil {
		h.logger.Error("Failed to encode game response", "error", err)
	}
}

func (h *GameHandler) handleRead(w http.ResponseWriter, r *http.Request, gameID uuid.UUID) {
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

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(rec); err != nil {
		h.logger.Error("Failed to encode session response", "error", err)
	}
}

func (h *GameHandler) handleDelete(w http.ResponseWriter, r *http.Request, gameID uuid.UUID) {
	if err := h.store.Delete(r.Context(), gameID); err != nil {
		h.logger.Error("Failed to delete session", "error", err, "id", gameID.String())
		h.writeError(w, http.StatusInternalServerError, "Failed to delete game session")
		return
	}
	h.logger.Debug("Game session deleted", "id", gameID.String())
	w.WriteHeader(http.StatusNoContent)
}

func contextWithLLMTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), llmTimeout)
}
