package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakmund/adventure-engine/internal/session"
)

func TestHealthHandler(t *testing.T) {
	h := NewHealthHandler(session.NewMemoryStore(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "adventure-engine", resp.Service)
	assert.Equal(t, "healthy", resp.Components["session_store"])
	assert.False(t, resp.Timestamp.IsZero())
}
