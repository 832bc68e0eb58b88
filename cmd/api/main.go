package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/frontdeskhq/frontdesk/backend/internal/config"
	"github.com/frontdeskhq/frontdesk/backend/internal/handler"
	businessModel "github.com/frontdeskhq/frontdesk/backend/internal/model/business"
	chatModel "github.com/frontdeskhq/frontdesk/backend/internal/model/chat"
	"github.com/frontdeskhq/frontdesk/backend/internal/ratelimit"
	"github.com/frontdeskhq/frontdesk/backend/internal/service/ai"
	chatService "github.com/frontdeskhq/frontdesk/backend/internal/service/chat"
	"github.com/frontdeskhq/frontdesk/backend/internal/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	businesses := businessModel.NewMemoryStore()
	messages := chatModel.NewMemoryStore()
	quota := ratelimit.NewMemoryStore(cfg.Quota.FreeMessages)

	var reporter telemetry.Reporter = telemetry.Nop{}
	if cfg.Telemetry.Enabled {
		reporter = telemetry.NewHTTPReporter(cfg.Telemetry.Endpoint, cfg.Telemetry.Timeout)
		log.Printf("telemetry reporting to %s", cfg.Telemetry.Endpoint)
	} else {
		log.Println("telemetry disabled by configuration")
	}

	// Initialize the generation backend and turn pipeline
	var turns *chatService.Service
	if cfg.AI.Enabled() {
		aiService, err := ai.NewService(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing without chat functionality - check the Ark model environment variables")
		} else {
			turns = chatService.NewService(businesses, quota, messages, aiService, reporter, cfg.Telemetry.CostPer1KTokens)
			log.Println("AI service initialized successfully")
		}
	} else {
		log.Println("Ark credentials not configured, chat endpoint will report unavailable")
	}

	router := handler.NewRouter(businesses, turns)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Frontdesk backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
