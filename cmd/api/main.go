package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"chicken-road-backend/internal/config"
	"chicken-road-backend/internal/game"
	"chicken-road-backend/internal/handlers"
	"chicken-road-backend/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sessionStore, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}
	defer sessionStore.Close()

	engine := game.NewEngine()

	sessionHandler := handlers.NewSessionHandler(sessionStore)
	betHandler := handlers.NewBetHandler(sessionStore, engine)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := handlers.NewRouter(sessionHandler, betHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server listening on %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}

func newStore(cfg *config.Config) (store.SessionStore, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		log.Println("Using in-memory session store")
		return store.NewMemoryStore(), nil
	default:
		return store.NewRedisStore(cfg)
	}
}
