// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"journey/internal/ai"
	"journey/internal/config"
	httptransport "journey/internal/http"
	"journey/internal/infra"
	"journey/internal/modules/chat"
	"journey/internal/modules/conversation"
	"journey/internal/modules/itinerary"
	"journey/internal/modules/tour"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err.Error())
		os.Exit(1)
	}

	logger := newLogger(cfg.Env)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logger.Error("database init failed", "error", err.Error())
		os.Exit(1)
	}
	defer dbPool.Close()

	tourStore := tour.NewStore(dbPool)
	if err := tourStore.EnsureSchema(ctx); err != nil {
		logger.Error("ensure schema failed", "error", err.Error())
		os.Exit(1)
	}
	tourSvc := tour.NewService(tourStore)

	redisClient, err := infra.NewRedis(ctx, cfg.Redis.Addr)
	if err != nil {
		logger.Error("redis init failed", "error", err.Error())
		os.Exit(1)
	}
	defer redisClient.Close()

	provider, err := newProvider(ctx, cfg.AI)
	if err != nil {
		logger.Error("AI provider init failed", "error", err.Error())
		os.Exit(1)
	}

	caller := chat.NewCaller(provider, chat.Config{
		Model:      cfg.AI.Model,
		MaxRetries: cfg.AI.MaxRetries,
		BaseDelay:  time.Duration(cfg.AI.BaseDelaySeconds) * time.Second,
	}, logger)
	convoSvc := conversation.NewService(conversation.NewStore(), caller, logger)
	itinerarySvc := itinerary.NewService(provider, cfg.AI.Model, logger)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Logger:        logger,
		Redis:         redisClient,
		RatePerMinute: cfg.RateLimit.PerMinute,
		Caller:        caller,
		Conversation:  convoSvc,
		Itinerary:     itinerarySvc,
		Tour:          tourSvc,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("journey backend listening", "addr", cfg.HTTP.Addr, "env", cfg.Env)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server stopped", "error", err.Error())
		os.Exit(1)
	}
}

// newLogger selects structured JSON output in prod and readable text in dev.
func newLogger(env string) *slog.Logger {
	if env == "prod" {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func newProvider(ctx context.Context, cfg config.AIConfig) (ai.ChatProvider, error) {
	if cfg.Provider == "gemini" {
		return ai.NewGeminiProvider(ctx, cfg.GeminiKey)
	}
	return ai.NewPerplexityProvider(cfg.PerplexityKey, cfg.PerplexityBaseURL), nil
}
