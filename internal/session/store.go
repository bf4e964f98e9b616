package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/oakmund/adventure-engine/pkg/character"
	"github.com/oakmund/adventure-engine/pkg/state"
	"github.com/oakmund/adventure-engine/pkg/world"
)

// Record is the persisted shape of one session: the world key, the
// character, and the transferable game state. Quest log and NPC registry
// are outside the transfer shape and are not persisted.
type Record struct {
	ID        uuid.UUID            `json:"id"`
	World     world.Type           `json:"world"`
	Character *character.Character `json:"character"`
	State     state.Snapshot       `json:"state"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// Store is the session registry: get/put/delete by session id. Backings
// are pluggable; the in-memory store serves tests and single-process
// deployments, Redis serves everything else.
type Store interface {
	// Ping tests the store connection
	Ping(ctx context.Context) error

	// Close closes the store connection
	Close() error

	// Save persists a session record under its id
	Save(ctx context.Context, id uuid.UUID, rec *Record) error

	// Load retrieves a session record by id.
	// Returns nil if the session doesn't exist.
	Load(ctx context.Context, id uuid.UUID) (*Record, error)

	// Delete removes a session record by id
	Delete(ctx context.Context, id uuid.UUID) error
}
