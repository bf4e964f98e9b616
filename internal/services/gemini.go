package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/oakmund/adventure-engine/pkg/chat"
)

// GeminiService implements LLMService for Google Gemini.
type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger *slog.Logger
}

var _ LLMService = (*GeminiService)(nil)

func NewGeminiService(ctx context.Context, apiKey string, modelName string, logger *slog.Logger) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	temperature := float32(0.7)
	model.Temperature = &temperature

	return &GeminiService{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// GenerateResponse generates a storyteller response using Gemini. System
// messages are folded into the prompt text ahead of the conversation,
// since the request carries a single flattened prompt.
func (g *GeminiService) GenerateResponse(ctx context.Context, messages []chat.ChatMessage) (*chat.ChatResponse, error) {
	var parts []string
	for _, msg := range messages {
		parts = append(parts, msg.Content)
	}
	prompt := strings.Join(parts, "\n\n")

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content returned from gemini")
	}

	var responseText string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			responseText += string(text)
		}
	}

	if responseText == "" {
		return nil, fmt.Errorf("unexpected response type from gemini")
	}

	return &chat.ChatResponse{Message: responseText}, nil
}

func (g *GeminiService) Close() error {
	return g.client.Close()
}
