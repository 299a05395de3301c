package scheduler

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"textsmith/internal/database"
	"textsmith/internal/models"
)

func newTestScheduler(t *testing.T, maxRecords int64) (*Scheduler, *database.Database) {
	t.Helper()

	log := slog.New(slog.DiscardHandler)

	db, err := database.New(context.Background(), filepath.Join(t.TempDir(), "test.sqlite"), log)
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Errorf("failed to close database: %v", closeErr)
		}
	})

	return New(context.Background(), db, time.Hour, maxRecords, log), db
}

func saveSummaryAt(t *testing.T, db *database.Database, createdAt, expiresAt time.Time) {
	t.Helper()

	_, err := db.SaveSummary(context.Background(), &models.SummaryRecord{
		OriginalText:   "original",
		SummaryText:    "summary",
		OriginalLength: 5,
		SummaryLength:  2,
		SummaryType:    "concise",
		CreatedAt:      createdAt,
		ExpiresAt:      expiresAt,
	})
	if err != nil {
		t.Fatalf("failed to save summary: %v", err)
	}
}

func TestCleanupRemovesExpiredRecords(t *testing.T) {
	s, db := newTestScheduler(t, 1000)
	now := time.Now().UTC()

	saveSummaryAt(t, db, now.Add(-2*time.Hour), now.Add(-time.Hour))
	saveSummaryAt(t, db, now, now.Add(time.Hour))

	s.cleanup()

	count, err := db.CountSummaries(context.Background())
	if err != nil {
		t.Fatalf("failed to count summaries: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 remaining summary, got %d", count)
	}
}

func TestCleanupTrimsToMaxRecords(t *testing.T) {
	s, db := newTestScheduler(t, 2)
	now := time.Now().UTC()

	for i := range 5 {
		createdAt := now.Add(time.Duration(i-5) * time.Minute)
		saveSummaryAt(t, db, createdAt, now.Add(time.Hour))
	}

	s.cleanup()

	count, err := db.CountSummaries(context.Background())
	if err != nil {
		t.Fatalf("failed to count summaries: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 remaining summaries, got %d", count)
	}
}

func TestStartAndStop(t *testing.T) {
	s, _ := newTestScheduler(t, 1000)

	if err := s.Start(); err != nil {
		t.Fatalf("failed to start scheduler: %v", err)
	}
	defer s.Stop()

	if s.Spec() != "@every 1h0m0s" {
		t.Fatalf("unexpected cron spec: %q", s.Spec())
	}
}
