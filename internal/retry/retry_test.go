// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/canonical/workspace-service/internal/logging"
)

var errBoom = errors.New("boom")

func newTestRetrier(maxAttempts int, classifier Classifier) *Retrier {
	return New(Config{
		MaxAttempts: maxAttempts,
		BaseDelay:   time.Millisecond,
		MaxDelay:    5 * time.Millisecond,
	}, classifier, logging.NewNoopLogger())
}

func TestRetrier_SucceedsFirstAttempt(t *testing.T) {
	r := newTestRetrier(3, func(error) bool { return true })

	calls := 0
	err := r.Do(context.Background(), func(context.Context) error {
		calls++
		return nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetrier_RetriesUntilSuccess(t *testing.T) {
	r := newTestRetrier(3, func(error) bool { return true })

	calls := 0
	err := r.Do(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errBoom
		}
		return nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestRetrier_ExhaustsAttempts(t *testing.T) {
	r := newTestRetrier(3, func(error) bool { return true })

	calls := 0
	err := r.Do(context.Background(), func(context.Context) error {
		calls++
		return errBoom
	})

	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected the last error to stay unwrappable, got %v", err)
	}
}

func TestRetrier_FatalErrorStopsImmediately(t *testing.T) {
	fatal := errors.New("fatal")
	r := newTestRetrier(3, func(err error) bool { return !errors.Is(err, fatal) })

	calls := 0
	err := r.Do(context.Background(), func(context.Context) error {
		calls++
		return fatal
	})

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
	// fatal errors come back as-is, not wrapped in the exhaustion message
	if !errors.Is(err, fatal) || err != fatal {
		t.Fatalf("expected the fatal error verbatim, got %v", err)
	}
}

func TestRetrier_NilClassifierIsFatal(t *testing.T) {
	r := newTestRetrier(3, nil)

	calls := 0
	err := r.Do(context.Background(), func(context.Context) error {
		calls++
		return errBoom
	})

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
	if err != errBoom {
		t.Fatalf("expected the error verbatim, got %v", err)
	}
}

func TestRetrier_ContextCancellationStopsRetries(t *testing.T) {
	r := New(Config{
		MaxAttempts: 5,
		BaseDelay:   time.Hour,
		MaxDelay:    time.Hour,
	}, func(error) bool { return true }, logging.NewNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())

	err := r.Do(ctx, func(context.Context) error {
		cancel()
		return fmt.Errorf("transient")
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRetrier_MinimumOneAttempt(t *testing.T) {
	r := New(Config{MaxAttempts: 0}, nil, logging.NewNoopLogger())

	calls := 0
	_ = r.Do(context.Background(), func(context.Context) error {
		calls++
		return nil
	})

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}
