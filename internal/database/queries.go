package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"textsmith/internal/models"
)

// maxStoredTextChars caps stored text columns so oversized requests cannot
// bloat the database. Responses always carry the full result; only the
// stored copy is truncated.
const maxStoredTextChars = 5000

func (d *Database) SaveSummary(ctx context.Context, rec *models.SummaryRecord) (int64, error) {
	if rec == nil {
		return 0, errors.New("summary record is nil")
	}

	query := `insert into summaries
	(original_text, summary_text, original_length, summary_length, summary_type, created_at, expires_at)
	values (?, ?, ?, ?, ?, ?, ?)`

	res, err := d.db.ExecContext(ctx, query,
		truncateRunes(rec.OriginalText, maxStoredTextChars),
		truncateRunes(rec.SummaryText, maxStoredTextChars),
		rec.OriginalLength,
		rec.SummaryLength,
		rec.SummaryType,
		rec.CreatedAt,
		rec.ExpiresAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to fetch insert id: %w", err)
	}

	return id, nil
}

func (d *Database) SaveConversion(ctx context.Context, rec *models.ConversionRecord) (int64, error) {
	if rec == nil {
		return 0, errors.New("conversion record is nil")
	}

	query := `insert into markdown_conversions
	(original_text, converted_text, conversion_type, created_at, expires_at)
	values (?, ?, ?, ?, ?)`

	res, err := d.db.ExecContext(ctx, query,
		truncateRunes(rec.OriginalText, maxStoredTextChars),
		truncateRunes(rec.ConvertedText, maxStoredTextChars),
		rec.ConversionType,
		rec.CreatedAt,
		rec.ExpiresAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to fetch insert id: %w", err)
	}

	return id, nil
}

func (d *Database) CountSummaries(ctx context.Context) (int64, error) {
	return d.countRows(ctx, "summaries")
}

func (d *Database) CountConversions(ctx context.Context) (int64, error) {
	return d.countRows(ctx, "markdown_conversions")
}

func (d *Database) countRows(ctx context.Context, table string) (int64, error) {
	var count int64

	query := "select count(*) from " + table

	if err := d.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}

	return count, nil
}

// DeleteExpired removes all records whose expiration time is at or before
// now and reports how many rows each table lost.
func (d *Database) DeleteExpired(ctx context.Context, now time.Time) (int64, int64, error) {
	summaries, err := d.deleteExpiredFrom(ctx, "summaries", now)
	if err != nil {
		return 0, 0, err
	}

	conversions, err := d.deleteExpiredFrom(ctx, "markdown_conversions", now)
	if err != nil {
		return summaries, 0, err
	}

	return summaries, conversions, nil
}

func (d *Database) deleteExpiredFrom(ctx context.Context, table string, now time.Time) (int64, error) {
	query := "delete from " + table + " where expires_at is not null and expires_at <= ?"

	res, err := d.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to fetch affected rows: %w", err)
	}

	return deleted, nil
}

// TrimTables deletes the oldest records beyond maxRecords per table.
func (d *Database) TrimTables(ctx context.Context, maxRecords int64) (int64, int64, error) {
	if maxRecords <= 0 {
		return 0, 0, errors.New("maxRecords must be positive")
	}

	summaries, err := d.trimTable(ctx, "summaries", maxRecords)
	if err != nil {
		return 0, 0, err
	}

	conversions, err := d.trimTable(ctx, "markdown_conversions", maxRecords)
	if err != nil {
		return summaries, 0, err
	}

	return summaries, conversions, nil
}

func (d *Database) trimTable(ctx context.Context, table string, maxRecords int64) (int64, error) {
	query := `delete from ` + table + ` where id not in
	(select id from ` + table + ` order by created_at desc, id desc limit ?)`

	res, err := d.db.ExecContext(ctx, query, maxRecords)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to fetch affected rows: %w", err)
	}

	return deleted, nil
}

func truncateRunes(s string, maxChars int) string {
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars])
}
