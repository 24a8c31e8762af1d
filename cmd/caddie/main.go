package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"caddie/internal/config"
	"caddie/internal/engine"
	"caddie/internal/httpapi"
	"caddie/internal/observability"
	"caddie/internal/places"
	"caddie/internal/session"
)

func main() {
	// Local development convenience; absence of a .env file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	metrics := observability.NewMetrics(cfg.MetricsNamespace)

	ctx := context.Background()
	store, err := session.NewStore(ctx, session.StoreOptions{
		DatabaseURL: cfg.DatabaseURL,
		RedisAddr:   cfg.RedisAddr,
		RedisDB:     cfg.RedisDB,
		TTL:         cfg.SessionTTL,
	})
	if err != nil {
		log.Fatalf("session store init failed: %v", err)
	}
	defer store.Close()

	var searcher places.Searcher
	if strings.TrimSpace(cfg.PlacesAPIKey) != "" {
		searcher = places.NewGoogleClient(cfg.PlacesBaseURL, cfg.PlacesAPIKey, cfg.SearchRadius, cfg.SearchTimeout)
		log.Printf("store search: google places")
	} else {
		log.Printf("store search: disabled (no PLACES_API_KEY); curated data only")
	}

	eng := engine.New(store, searcher, metrics, cfg.HistoryLimit)

	api := httpapi.New(cfg, eng, store, metrics)
	httpServer := &http.Server{
		Addr:    cfg.BindAddr,
		Handler: api.Router(),
	}

	go func() {
		log.Printf("server listening on %s", cfg.BindAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Printf("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
		_ = httpServer.Close()
	}

	log.Printf("shutdown complete")
}
