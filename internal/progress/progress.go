// Package progress reports per-point crawl outcomes for real-time
// status visibility. Formatting is the consumer's concern.
package progress

import "log/slog"

// Outcome is the result of crawling one search point.
type Outcome struct {
	Label     string
	Index     int // 1-based position in the run
	Total     int // points in the run
	Collected int
	Err       error
}

// Reporter receives point lifecycle events.
type Reporter interface {
	PointStarted(label string, index, total int)
	PointFinished(outcome Outcome)
}

// Logger reports progress through slog.
type Logger struct {
	logger *slog.Logger
}

// NewLogger creates a slog-backed Reporter.
func NewLogger(logger *slog.Logger) *Logger {
	return &Logger{logger: logger}
}

func (l *Logger) PointStarted(label string, index, total int) {
	l.logger.Info("point started", "point", label, "progress", index, "total", total)
}

func (l *Logger) PointFinished(o Outcome) {
	if o.Err != nil {
		l.logger.Warn("point failed",
			"point", o.Label,
			"progress", o.Index,
			"total", o.Total,
			"collected", o.Collected,
			"error", o.Err,
		)
		return
	}
	l.logger.Info("point completed",
		"point", o.Label,
		"progress", o.Index,
		"total", o.Total,
		"collected", o.Collected,
	)
}

// Nop discards all events.
type Nop struct{}

func (Nop) PointStarted(string, int, int) {}

func (Nop) PointFinished(Outcome) {}
