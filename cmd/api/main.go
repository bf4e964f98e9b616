package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oakmund/adventure-engine/internal/config"
	"github.com/oakmund/adventure-engine/internal/handlers"
	"github.com/oakmund/adventure-engine/internal/logger"
	"github.com/oakmund/adventure-engine/internal/middleware"
	"github.com/oakmund/adventure-engine/internal/services"
	"github.com/oakmund/adventure-engine/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	log := logger.Setup(cfg)

	log.Info("Starting Adventure Engine API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"llm_provider", cfg.LLMProvider,
		"model_name", cfg.ModelName,
		"session_store", cfg.SessionStore)

	var llmService services.LLMService
	switch cfg.LLMProvider {
	case config.ProviderAnthropic:
		if cfg.AnthropicAPIKey == "" {
			log.Error("Anthropic API key is required when using anthropic provider")
			os.Exit(1)
		}
		llmService = services.NewAnthropicService(cfg.AnthropicAPIKey, cfg.ModelName, log)
		log.Info("Using Anthropic LLM provider")
	case config.ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			log.Error("Gemini API key is required when using gemini provider")
			os.Exit(1)
		}
		geminiCtx, geminiCancel := context.WithTimeout(context.Background(), 30*time.Second)
		llmService, err = services.NewGeminiService(geminiCtx, cfg.GeminiAPIKey, cfg.ModelName, log)
		geminiCancel()
		if err != nil {
			log.Error("Failed to create Gemini service", "error", err)
			os.Exit(1)
		}
		log.Info("Using Gemini LLM provider")
	default:
		log.Error("Invalid LLM provider specified", "provider", cfg.LLMProvider, "supported", []string{config.ProviderAnthropic, config.ProviderGemini})
		os.Exit(1)
	}

	var store session.Store
	switch cfg.SessionStore {
	case config.StoreRedis:
		redisStore := session.NewRedisStore(cfg.RedisURL, log)
		storeCtx, storeCancel := context.WithTimeout(context.Background(), 2*time.Minute)
		if err := redisStore.WaitForConnection(storeCtx); err != nil {
			storeCancel()
			log.Error("Failed to connect to session store", "error", err)
			os.Exit(1)
		}
		storeCancel()
		store = redisStore
	default:
		store = session.NewMemoryStore()
		log.Info("Using in-memory session store; sessions do not survive restarts")
	}

	mux := http.NewServeMux()

	healthHandler := handlers.NewHealthHandler(store, log)
	mux.Handle("/health", healthHandler)

	worldsHandler := handlers.NewWorldsHandler(log)
	mux.Handle("/v1/worlds", worldsHandler)

	gameHandler := handlers.NewGameHandler(llmService, store, log)
	mux.Handle("/v1/games", gameHandler)
	mux.Handle("/v1/games/", gameHandler)

	handler := middleware.Logger(log, mux)
	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
		// WriteTimeout is left unset; storyteller turns can run long
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	if err := store.Close(); err != nil {
		log.Error("Error closing session store", "error", err)
	}
	if err := llmService.Close(); err != nil {
		log.Error("Error closing LLM service", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
