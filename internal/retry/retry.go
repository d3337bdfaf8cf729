// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package retry

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/canonical/workspace-service/internal/logging"
)

// Classifier reports whether an error is worth another attempt. A nil
// classifier treats every error as fatal.
type Classifier func(error) bool

type Config struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

type Retrier struct {
	config      Config
	isRetryable Classifier
	logger      logging.LoggerInterface
}

func New(config Config, classifier Classifier, logger logging.LoggerInterface) *Retrier {
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}
	if config.BaseDelay <= 0 {
		config.BaseDelay = 100 * time.Millisecond
	}
	if config.MaxDelay <= 0 {
		config.MaxDelay = 2 * time.Second
	}

	return &Retrier{
		config:      config,
		isRetryable: classifier,
		logger:      logger,
	}
}

// Do runs fn until it succeeds, the error is classified fatal, the context
// is done, or the attempt bound is exhausted. The last error is returned
// wrapped so callers can still unwrap typed faults.
func (r *Retrier) Do(ctx context.Context, fn func(context.Context) error) error {
	var lastErr error

	for attempt := 1; attempt <= r.config.MaxAttempts; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}

		if r.isRetryable == nil || !r.isRetryable(lastErr) {
			return lastErr
		}

		if attempt == r.config.MaxAttempts {
			break
		}

		delay := r.delay(attempt)
		r.logger.Warnf("attempt %d/%d failed, retrying in %v: %v", attempt, r.config.MaxAttempts, delay, lastErr)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("exhausted %d attempts: %w", r.config.MaxAttempts, lastErr)
}

func (r *Retrier) delay(attempt int) time.Duration {
	delay := r.config.BaseDelay << (attempt - 1)
	if delay > r.config.MaxDelay {
		delay = r.config.MaxDelay
	}

	// Jitter up to half the delay to spread out competing retries.
	return delay + time.Duration(rand.Int63n(int64(delay)/2+1))
}
