package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patchCharacter(t *testing.T, h *GameHandler, gameID uuid.UUID, body UpdateCharacterRequest) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPatch, "/v1/games/"+gameID.String()+"/character", bytes.NewReader(data))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestCharacterHandler_AttributeDelta(t *testing.T) {
	h, _, store := newTestGameHandler()
	created := createTestGame(t, h)

	w := patchCharacter(t, h, created.ID, UpdateCharacterRequest{Attribute: "strength", Delta: 2})

	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	var resp UpdateCharacterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.Character.Attribute("strength"))
	assert.False(t, resp.LeveledUp)

	// Clamped at the top on repeated gains
	w = patchCharacter(t, h, created.ID, UpdateCharacterRequest{Attribute: "strength", Delta: 100})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.Character.Attribute("strength"))

	rec, err := store.Load(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, rec.Character.Attribute("strength"))
}

func TestCharacterHandler_Experience(t *testing.T) {
	h, _, _ := newTestGameHandler()
	created := createTestGame(t, h)

	w := patchCharacter(t, h, created.ID, UpdateCharacterRequest{Experience: 150})

	require.Equal(t, http.StatusOK, w.Code)
	var resp UpdateCharacterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.LeveledUp)
	assert.Equal(t, 2, resp.Character.Level)
	assert.Equal(t, 150, resp.Character.Experience)
}

func TestCharacterHandler_Validation(t *testing.T) {
	h, _, _ := newTestGameHandler()
	created := createTestGame(t, h)

	w := patchCharacter(t, h, created.ID, UpdateCharacterRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = patchCharacter(t, h, created.ID, UpdateCharacterRequest{Attribute: "wisdom", Delta: 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "unknown attribute: wisdom", errResp.Error)
}

func TestCharacterHandler_SessionNotFound(t *testing.T) {
	h, _, _ := newTestGameHandler()

	w := patchCharacter(t, h, uuid.New(), UpdateCharacterRequest{Experience: 10})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
