package app

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/sschan39/hk-foodpanda-crawler/internal/config"
	"github.com/sschan39/hk-foodpanda-crawler/internal/crawl"
	"github.com/sschan39/hk-foodpanda-crawler/internal/crawl/pace"
	"github.com/sschan39/hk-foodpanda-crawler/internal/export"
	"github.com/sschan39/hk-foodpanda-crawler/internal/obs"
	"github.com/sschan39/hk-foodpanda-crawler/internal/pandora"
	"github.com/sschan39/hk-foodpanda-crawler/internal/progress"
	"github.com/sschan39/hk-foodpanda-crawler/internal/prompt"
	"github.com/sschan39/hk-foodpanda-crawler/internal/restaurant"
	"github.com/sschan39/hk-foodpanda-crawler/internal/stats"
)

// Run executes one collection run: select points, crawl them in
// order, deduplicate, aggregate and export.
func Run() error {
	cfg := config.Load()

	runID := uuid.New().String()

	// The prompt owns stdout; logs go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With("run_id", runID)
	slog.SetDefault(logger)

	session := prompt.NewSession(os.Stdin, os.Stdout)
	points, err := session.SelectPoints()
	if err != nil {
		if errors.Is(err, prompt.ErrNoSelection) {
			logger.Info("nothing selected, exiting")
			return nil
		}
		return err
	}

	// Abort requests take effect between points, never mid-page.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := obs.NewMetrics()
	client := pandora.NewClient(cfg.Endpoint, cfg.HTTPTimeout)
	pacer := pace.NewSleeper(cfg.PageDelay, cfg.PointDelay, cfg.BatchDelay, cfg.BatchEvery, cfg.RetryBase)
	engine := crawl.New(client, pacer, metrics, progress.NewLogger(logger), logger, crawl.Config{
		PageSize:    cfg.PageSize,
		PointLimit:  cfg.PointLimit,
		MaxAttempts: cfg.MaxAttempts,
	})

	logger.Info("starting crawl", "points", len(points))
	startedAt := time.Now()

	acc := restaurant.NewAccumulator()
	outcomes := engine.CrawlAll(ctx, points, acc)

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
	}
	logger.Info("crawl finished",
		"points", len(points),
		"points_processed", len(outcomes),
		"points_failed", failed,
		"raw_records", acc.Len(),
		"duration", time.Since(startedAt).Round(time.Second).String(),
	)

	unique := restaurant.Dedupe(acc.Records())
	logger.Info("deduplication completed",
		"raw", acc.Len(),
		"unique", len(unique),
		"removed", acc.Len()-len(unique),
	)

	summary := stats.Compute(unique)
	metrics.Snapshot().Log(logger)

	if len(unique) == 0 {
		logger.Warn("no records collected, skipping export")
		return nil
	}

	collectedAt := time.Now()
	path := export.Filename(cfg.OutputName, collectedAt, runID)
	if err := export.WriteWorkbook(path, unique, summary, collectedAt); err != nil {
		return err
	}
	logger.Info("export completed", "file", path, "records", len(unique), "areas", len(summary.Areas))

	return nil
}
