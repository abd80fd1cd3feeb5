// Package pace bounds the request rate of the fetch engine. The delay
// policy is injected so tests run without real waiting.
package pace

import (
	"context"
	"time"
)

// Pacer inserts delays at the three suspension points of a crawl:
// after each page, after each completed point, and before a retry.
// Each call returns early with the context error when the run is
// aborted mid-wait.
type Pacer interface {
	AfterPage(ctx context.Context) error
	AfterPoint(ctx context.Context, completed int) error
	Backoff(ctx context.Context, attempt int) error
}

// Sleeper is the wall-clock Pacer. After every BatchEvery-th point it
// rests for BatchDelay instead of PointDelay, breaking up sustained
// burst patterns that trigger upstream throttling.
type Sleeper struct {
	PageDelay  time.Duration
	PointDelay time.Duration
	BatchDelay time.Duration
	BatchEvery int
	RetryBase  time.Duration
}

// NewSleeper creates a Sleeper with the given delays. batchEvery
// values below one disable the batch rest.
func NewSleeper(pageDelay, pointDelay, batchDelay time.Duration, batchEvery int, retryBase time.Duration) *Sleeper {
	return &Sleeper{
		PageDelay:  pageDelay,
		PointDelay: pointDelay,
		BatchDelay: batchDelay,
		BatchEvery: batchEvery,
		RetryBase:  retryBase,
	}
}

// AfterPage waits the inter-page delay.
func (s *Sleeper) AfterPage(ctx context.Context) error {
	return sleep(ctx, s.PageDelay)
}

// AfterPoint waits the inter-point delay, or the longer batch rest
// after every BatchEvery-th point.
func (s *Sleeper) AfterPoint(ctx context.Context, completed int) error {
	if s.BatchEvery > 0 && completed%s.BatchEvery == 0 {
		return sleep(ctx, s.BatchDelay)
	}
	return sleep(ctx, s.PointDelay)
}

// Backoff waits before retry number attempt (1-based), scaling the
// base delay linearly.
func (s *Sleeper) Backoff(ctx context.Context, attempt int) error {
	if attempt < 1 {
		attempt = 1
	}
	return sleep(ctx, time.Duration(attempt)*s.RetryBase)
}

// Nop is a Pacer that never waits.
type Nop struct{}

func (Nop) AfterPage(ctx context.Context) error { return ctx.Err() }

func (Nop) AfterPoint(ctx context.Context, _ int) error { return ctx.Err() }

func (Nop) Backoff(ctx context.Context, _ int) error { return ctx.Err() }

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return context.Cause(ctx)
	}
}
