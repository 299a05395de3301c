package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"textsmith/internal/config"
	"textsmith/internal/converter"
	"textsmith/internal/database"
	"textsmith/internal/scheduler"
	"textsmith/internal/server"
	"textsmith/internal/summarizer"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.LoadConfig()

	db, err := database.New(ctx, cfg.DBPath, log)
	if err != nil {
		log.ErrorContext(ctx, "Failed to initialize db",
			"error", err,
			"dbPath", cfg.DBPath)

		return
	}
	defer func() {
		if err = db.Close(); err != nil {
			log.ErrorContext(ctx, "Failed to close db",
				"error", err,
				"dbPath", cfg.DBPath)
		}
	}()
	log.InfoContext(ctx, "DB is initialized",
		"dbPath", cfg.DBPath)

	sum := initSummarizer(ctx, cfg, log)
	conv := converter.New()

	srv := server.New(cfg, db, sum, conv, log)
	httpSrv := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Router(),
	}

	sched := scheduler.New(ctx, db, cfg.CleanupInterval, cfg.MaxRecords, log)

	if err = sched.Start(); err != nil {
		log.ErrorContext(ctx, "Failed to start scheduler",
			"error", err,
			"spec", sched.Spec())

		return
	}
	defer sched.Stop()
	log.InfoContext(ctx, "Scheduler is started",
		"spec", sched.Spec())

	go func() {
		if serveErr := httpSrv.ListenAndServe(); serveErr != nil &&
			!errors.Is(serveErr, http.ErrServerClosed) {
			log.ErrorContext(ctx, "HTTP server failed",
				"error", serveErr,
				"addr", cfg.Addr)
			cancel()
		}
	}()
	log.InfoContext(ctx, "HTTP server is started",
		"addr", cfg.Addr)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-c:
		log.InfoContext(ctx, "Shutdown signal is received",
			"signal", sig.String())
	case <-ctx.Done():
	}

	log.InfoContext(ctx, "Exiting...",
		"uptimeSeconds", time.Since(start).Seconds())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err = httpSrv.Shutdown(shutdownCtx); err != nil {
		log.ErrorContext(ctx, "Failed to shut down HTTP server",
			"error", err)
	}
	log.InfoContext(ctx, "HTTP server is stopped",
		"uptimeSeconds", time.Since(start).Seconds())
}

func initSummarizer(ctx context.Context, cfg config.Config, log *slog.Logger) summarizer.Summarizer {
	apiKey := strings.TrimSpace(cfg.OpenAIAPIKey)
	if apiKey == "" {
		log.InfoContext(ctx, "OPENAI_API_KEY is missing so extractive summarizer will be used",
			"envVar", "OPENAI_API_KEY")

		return summarizer.NewExtractive()
	}

	s, err := summarizer.NewOpenAI(apiKey)
	if err != nil {
		log.ErrorContext(ctx, "Failed to create OpenAI summarizer so extractive fallback will be used",
			"error", err,
			"envVar", "OPENAI_API_KEY")

		return summarizer.NewExtractive()
	}

	log.InfoContext(ctx, "OpenAI summarizer is initialized",
		"provider", "openai")

	return s
}
