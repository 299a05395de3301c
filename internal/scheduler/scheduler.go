// Package scheduler periodically removes expired records and trims the
// stored history to its configured maximum.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"textsmith/internal/database"
)

const cleanupTimeout = 5 * time.Minute

type Scheduler struct {
	ctx        context.Context
	cron       *cron.Cron
	db         *database.Database
	maxRecords int64
	spec       string
	log        *slog.Logger
}

func New(
	ctx context.Context,
	db *database.Database,
	interval time.Duration,
	maxRecords int64,
	log *slog.Logger,
) *Scheduler {
	c := cron.New(cron.WithLocation(time.UTC))

	return &Scheduler{
		ctx:        ctx,
		cron:       c,
		db:         db,
		maxRecords: maxRecords,
		spec:       fmt.Sprintf("@every %s", interval),
		log:        log,
	}
}

// Spec returns the cron spec the cleanup job runs on.
func (s *Scheduler) Spec() string {
	return s.spec
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.cleanup); err != nil {
		return err
	}

	s.cron.Start()

	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) cleanup() {
	ctx, cancel := context.WithTimeout(s.ctx, cleanupTimeout)
	defer cancel()

	select {
	case <-ctx.Done():
		s.log.InfoContext(ctx, "Scheduler context is done",
			"error", ctx.Err())
		return
	default:
	}

	now := time.Now().UTC()

	expiredSummaries, expiredConversions, err := s.db.DeleteExpired(ctx, now)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to delete expired records",
			"error", err,
			"now", now)
		return
	}

	trimmedSummaries, trimmedConversions, err := s.db.TrimTables(ctx, s.maxRecords)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to trim tables",
			"error", err,
			"maxRecords", s.maxRecords)
		return
	}

	s.log.InfoContext(ctx, "Cleanup finished",
		"expiredSummaries", expiredSummaries,
		"expiredConversions", expiredConversions,
		"trimmedSummaries", trimmedSummaries,
		"trimmedConversions", trimmedConversions)
}
