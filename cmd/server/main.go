package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zandoc/docengine/internal/api"
	"github.com/zandoc/docengine/internal/config"
	"github.com/zandoc/docengine/internal/docstore"
	"github.com/zandoc/docengine/internal/template"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Initialize clients.
	store := docstore.NewClient(cfg.DocstoreURL, cfg.DocstoreAPIKey)

	formatter, err := template.NewCurrencyFormatter(cfg.Locale, cfg.CurrencyCode)
	if err != nil {
		log.Error("invalid locale configuration", "error", err,
			"locale", cfg.Locale, "currency", cfg.CurrencyCode)
		os.Exit(1)
	}
	engine := template.NewEngine(formatter)

	// Initialize HTTP server.
	srv := api.NewServer(store, engine, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		store.Close()
	}()

	log.Info("starting docengine", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
