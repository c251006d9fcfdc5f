// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/cipher-notes/internal/config"
	"github.com/MKhiriev/cipher-notes/internal/logger"
	"github.com/MKhiriev/cipher-notes/internal/service"
	"github.com/rs/zerolog"
)

// shareRetentionWorker periodically removes share copies that were never
// claimed. A share copy normally disappears the moment its link is opened;
// this worker is the fallback for links that are never opened at all, so
// abandoned ciphertext does not accumulate forever.
type shareRetentionWorker struct {
	ctx       context.Context
	notes     service.NoteService
	retention time.Duration
	interval  time.Duration
	logger    *logger.Logger
}

func newShareRetentionWorker(ctx context.Context, notes service.NoteService, cfg config.Workers, logger *logger.Logger) *shareRetentionWorker {
	return &shareRetentionWorker{
		ctx:       ctx,
		notes:     notes,
		retention: cfg.ShareRetention,
		interval:  cfg.PurgeInterval,
		logger:    logger,
	}
}

// Run starts the purge loop in its own goroutine and returns immediately.
// The loop stops when the worker's context is cancelled.
func (w *shareRetentionWorker) Run() {
	log := w.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("worker", "shareRetentionWorker")
	})

	if w.interval <= 0 || w.retention <= 0 {
		log.Warn().
			Dur("interval", w.interval).
			Dur("retention", w.retention).
			Msg("share retention worker disabled: interval and retention must be positive")
		return
	}

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		log.Info().
			Dur("interval", w.interval).
			Dur("retention", w.retention).
			Msg("share retention worker started")

		// purge once on startup so a restart does not postpone cleanup
		// by a full interval
		w.purge()

		for {
			select {
			case <-w.ctx.Done():
				log.Info().Msg("share retention worker stopped")
				return
			case <-ticker.C:
				w.purge()
			}
		}
	}()
}

func (w *shareRetentionWorker) purge() {
	cutoff := time.Now().Add(-w.retention)

	if _, err := w.notes.PurgeExpiredShares(w.ctx, cutoff); err != nil {
		w.logger.Error().
			Str("func", "*shareRetentionWorker.purge").
			Err(err).
			Msg("purging expired share copies failed")
	}
}
