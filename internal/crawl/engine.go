// Package crawl pages restaurant listings out of the remote service,
// one search point at a time.
package crawl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sschan39/hk-foodpanda-crawler/internal/crawl/pace"
	"github.com/sschan39/hk-foodpanda-crawler/internal/geo"
	"github.com/sschan39/hk-foodpanda-crawler/internal/obs"
	"github.com/sschan39/hk-foodpanda-crawler/internal/pandora"
	"github.com/sschan39/hk-foodpanda-crawler/internal/progress"
	"github.com/sschan39/hk-foodpanda-crawler/internal/restaurant"
)

const (
	// DefaultPageSize is the item count requested per page.
	DefaultPageSize = 48
	// DefaultPointLimit caps the records collected per search point.
	DefaultPointLimit = 150
	// DefaultMaxAttempts bounds requests for one page before the point
	// is abandoned.
	DefaultMaxAttempts = 3
)

// PointFailure reports a point abandoned after exhausting retries.
// A single point's failure never aborts the run.
type PointFailure struct {
	Point string
	Err   error
}

func (e *PointFailure) Error() string {
	return fmt.Sprintf("point %q failed: %v", e.Point, e.Err)
}

func (e *PointFailure) Unwrap() error {
	return e.Err
}

// Config bounds the paging behavior of an Engine.
type Config struct {
	PageSize    int
	PointLimit  int
	MaxAttempts int
}

func (c Config) withDefaults() Config {
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if c.PointLimit <= 0 {
		c.PointLimit = DefaultPointLimit
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	return c
}

// Engine fetches, normalizes and accumulates listings for a sequence
// of search points. Points are processed strictly one at a time, in
// order, with no concurrent requests; the pacer bounds the request
// rate deterministically.
type Engine struct {
	lister   pandora.Lister
	pacer    pace.Pacer
	metrics  *obs.Metrics
	reporter progress.Reporter
	logger   *slog.Logger
	cfg      Config
}

// New creates an Engine. Zero Config fields fall back to defaults.
func New(lister pandora.Lister, pacer pace.Pacer, metrics *obs.Metrics, reporter progress.Reporter, logger *slog.Logger, cfg Config) *Engine {
	return &Engine{
		lister:   lister,
		pacer:    pacer,
		metrics:  metrics,
		reporter: reporter,
		logger:   logger,
		cfg:      cfg.withDefaults(),
	}
}

// CrawlAll crawls every point in order, appending normalized records
// to acc, and returns the per-point outcomes. A cancelled context
// stops the run between points, never mid-page.
func (e *Engine) CrawlAll(ctx context.Context, points []geo.Point, acc *restaurant.Accumulator) []progress.Outcome {
	outcomes := make([]progress.Outcome, 0, len(points))

	for i, pt := range points {
		if ctx.Err() != nil {
			e.logger.Info("run aborted", "completed_points", i, "total", len(points))
			break
		}

		e.reporter.PointStarted(pt.Label, i+1, len(points))
		collected, err := e.crawlPoint(ctx, pt, acc)

		o := progress.Outcome{
			Label:     pt.Label,
			Index:     i + 1,
			Total:     len(points),
			Collected: collected,
			Err:       err,
		}
		outcomes = append(outcomes, o)
		e.reporter.PointFinished(o)

		if err := e.pacer.AfterPoint(ctx, i+1); err != nil {
			e.logger.Info("run aborted", "completed_points", i+1, "total", len(points))
			break
		}
	}

	return outcomes
}

// crawlPoint pages listings for one point until the cap is reached, a
// page comes back empty or short, or retries are exhausted.
func (e *Engine) crawlPoint(ctx context.Context, pt geo.Point, acc *restaurant.Accumulator) (int, error) {
	collected := 0
	offset := 0

	for collected < e.cfg.PointLimit {
		want := e.cfg.PageSize
		if remaining := e.cfg.PointLimit - collected; remaining < want {
			want = remaining
		}

		items, err := e.listWithRetry(ctx, pt, want, offset)
		if err != nil {
			e.metrics.IncPointsFailed()
			return collected, &PointFailure{Point: pt.Label, Err: err}
		}

		e.metrics.IncPagesFetched()
		e.metrics.AddItemsSeen(len(items))

		if len(items) == 0 {
			break
		}

		for _, item := range items {
			r, ok := restaurant.Normalize(item, pt)
			if !ok {
				e.metrics.IncItemsDropped()
				continue
			}
			acc.Append(r)
			collected++
		}

		// A page shorter than requested means the service has no more
		// results for this point.
		if len(items) < want {
			break
		}
		if collected >= e.cfg.PointLimit {
			break
		}

		offset += e.cfg.PageSize
		if err := e.pacer.AfterPage(ctx); err != nil {
			return collected, err
		}
	}

	return collected, nil
}

func (e *Engine) listWithRetry(ctx context.Context, pt geo.Point, limit, offset int) ([]map[string]any, error) {
	var lastErr error
	for attempt := 1; attempt <= e.cfg.MaxAttempts; attempt++ {
		items, err := e.lister.List(ctx, pt.Longitude, pt.Latitude, limit, offset)
		if err == nil {
			return items, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, context.Cause(ctx)
		}
		if attempt == e.cfg.MaxAttempts {
			break
		}

		e.metrics.IncRetries()
		e.logger.Warn("page request failed, retrying",
			"point", pt.Label,
			"offset", offset,
			"attempt", attempt,
			"error", err,
		)
		if err := e.pacer.Backoff(ctx, attempt); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("after %d attempts: %w", e.cfg.MaxAttempts, lastErr)
}
