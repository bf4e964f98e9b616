package services

import (
	"context"

	"github.com/oakmund/adventure-engine/pkg/chat"
)

// LLMService defines the interface for the generative text model behind
// the storyteller. One synchronous call per turn; no retries.
type LLMService interface {
	// GenerateResponse generates a storyteller response
	GenerateResponse(ctx context.Context, messages []chat.ChatMessage) (*chat.ChatResponse, error)

	// Close releases any underlying client resources
	Close() error
}
