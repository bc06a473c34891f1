// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-interview-prep/internal/config"
	"github.com/MKhiriev/go-interview-prep/internal/logger"
)

type resetTokenJanitor struct {
	cleaner  ResetTokenCleaner
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewResetTokenJanitor creates a worker that clears expired password reset
// tokens every interval. A non-positive interval falls back to
// config.DefaultResetTokenCleanupInterval.
func NewResetTokenJanitor(cleaner ResetTokenCleaner, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = config.DefaultResetTokenCleanupInterval
	}

	return &resetTokenJanitor{
		cleaner:  cleaner,
		interval: interval,
		logger:   logger,
	}
}

// Run implements Worker. A previously started loop is stopped first.
func (j *resetTokenJanitor) Run(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.sweep(jobCtx)
			}
		}
	}()
}

func (j *resetTokenJanitor) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *resetTokenJanitor) sweep(ctx context.Context) {
	cleared, err := j.cleaner.ClearExpiredResetTokens(ctx)
	if err != nil {
		j.logger.Error().Err(err).Msg("failed to clear expired reset tokens")
		return
	}
	if cleared > 0 {
		j.logger.Info().Int64("cleared", cleared).Msg("expired reset tokens cleared")
	}
}
