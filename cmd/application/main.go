package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"wbdimsync/config"
	"wbdimsync/internal/wildberries/app"
	"wbdimsync/metrics"
)

func main() {
	// .env опционален, в проде все приходит из окружения
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	if cfg.Sync.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.MetricsHandler())
		go func() {
			if err := http.ListenAndServe(cfg.Sync.MetricsAddr, mux); err != nil {
				log.Printf("Metrics server stopped: %v", err)
			}
		}()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	server := app.NewSyncServer(cfg, os.Stdout)

	if cfg.Sync.Schedule != "" {
		if err := server.RunScheduled(ctx, cfg.Sync.Schedule); err != nil {
			log.Fatalf("Scheduler failed: %v", err)
		}
		return
	}

	if err := server.Run(ctx); err != nil {
		log.Fatalf("Refresh failed: %v", err)
	}
}
