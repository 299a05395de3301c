package database

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"textsmith/internal/models"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()

	db, err := New(
		context.Background(),
		filepath.Join(t.TempDir(), "test.sqlite"),
		slog.New(slog.DiscardHandler),
	)
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Errorf("failed to close database: %v", closeErr)
		}
	})

	return db
}

func summaryRecord(createdAt, expiresAt time.Time) *models.SummaryRecord {
	return &models.SummaryRecord{
		OriginalText:   "original text",
		SummaryText:    "summary text",
		OriginalLength: 10,
		SummaryLength:  3,
		SummaryType:    "concise",
		CreatedAt:      createdAt,
		ExpiresAt:      expiresAt,
	}
}

func TestSaveSummaryReturnsID(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	now := time.Now().UTC()

	id, err := db.SaveSummary(ctx, summaryRecord(now, now.Add(time.Hour)))
	if err != nil {
		t.Fatalf("failed to save summary: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive id, got %d", id)
	}

	count, err := db.CountSummaries(ctx)
	if err != nil {
		t.Fatalf("failed to count summaries: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 summary, got %d", count)
	}
}

func TestSaveConversion(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := db.SaveConversion(ctx, &models.ConversionRecord{
		OriginalText:   "# Title",
		ConvertedText:  "Title",
		ConversionType: "to_text",
		CreatedAt:      now,
		ExpiresAt:      now.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("failed to save conversion: %v", err)
	}

	count, err := db.CountConversions(ctx)
	if err != nil {
		t.Fatalf("failed to count conversions: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 conversion, got %d", count)
	}
}

func TestDeleteExpired(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if _, err := db.SaveSummary(ctx, summaryRecord(now.Add(-2*time.Hour), now.Add(-time.Hour))); err != nil {
		t.Fatalf("failed to save expired summary: %v", err)
	}
	if _, err := db.SaveSummary(ctx, summaryRecord(now, now.Add(time.Hour))); err != nil {
		t.Fatalf("failed to save live summary: %v", err)
	}

	summaries, conversions, err := db.DeleteExpired(ctx, now)
	if err != nil {
		t.Fatalf("failed to delete expired records: %v", err)
	}
	if summaries != 1 || conversions != 0 {
		t.Fatalf("expected 1 expired summary, got summaries=%d conversions=%d", summaries, conversions)
	}

	count, err := db.CountSummaries(ctx)
	if err != nil {
		t.Fatalf("failed to count summaries: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 remaining summary, got %d", count)
	}
}

func TestTrimTablesKeepsNewestRecords(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)

	for i := range 5 {
		createdAt := base.Add(time.Duration(i) * time.Minute)
		if _, err := db.SaveSummary(ctx, summaryRecord(createdAt, createdAt.Add(time.Hour))); err != nil {
			t.Fatalf("failed to save summary %d: %v", i, err)
		}
	}

	summaries, _, err := db.TrimTables(ctx, 2)
	if err != nil {
		t.Fatalf("failed to trim tables: %v", err)
	}
	if summaries != 3 {
		t.Fatalf("expected 3 trimmed summaries, got %d", summaries)
	}

	count, err := db.CountSummaries(ctx)
	if err != nil {
		t.Fatalf("failed to count summaries: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 remaining summaries, got %d", count)
	}
}

func TestTrimTablesRejectsNonPositiveMax(t *testing.T) {
	db := newTestDatabase(t)

	if _, _, err := db.TrimTables(context.Background(), 0); err == nil {
		t.Fatalf("expected error for non-positive max")
	}
}

func TestSaveSummaryTruncatesStoredText(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	now := time.Now().UTC()

	rec := summaryRecord(now, now.Add(time.Hour))
	rec.OriginalText = strings.Repeat("a", 6000)

	if _, err := db.SaveSummary(ctx, rec); err != nil {
		t.Fatalf("failed to save summary: %v", err)
	}

	var stored string
	if err := db.db.QueryRowContext(ctx, "select original_text from summaries").Scan(&stored); err != nil {
		t.Fatalf("failed to read stored text: %v", err)
	}
	if len(stored) != maxStoredTextChars {
		t.Fatalf("expected stored text of %d chars, got %d", maxStoredTextChars, len(stored))
	}
}

func TestPing(t *testing.T) {
	db := newTestDatabase(t)

	if err := db.Ping(context.Background()); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
}
