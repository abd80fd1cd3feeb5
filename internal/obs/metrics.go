package obs

import (
	"log/slog"
	"sync/atomic"
)

// Metrics tracks crawl counters using atomics.
type Metrics struct {
	pagesFetched atomic.Int64
	itemsSeen    atomic.Int64
	itemsDropped atomic.Int64
	retries      atomic.Int64
	pointsFailed atomic.Int64
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// IncPagesFetched increments the fetched page counter.
func (m *Metrics) IncPagesFetched() {
	m.pagesFetched.Add(1)
}

// AddItemsSeen adds to the raw item counter.
func (m *Metrics) AddItemsSeen(n int) {
	m.itemsSeen.Add(int64(n))
}

// IncItemsDropped increments the malformed-item counter. Dropped items
// are counted but never surfaced individually.
func (m *Metrics) IncItemsDropped() {
	m.itemsDropped.Add(1)
}

// IncRetries increments the page retry counter.
func (m *Metrics) IncRetries() {
	m.retries.Add(1)
}

// IncPointsFailed increments the abandoned-point counter.
func (m *Metrics) IncPointsFailed() {
	m.pointsFailed.Add(1)
}

// Snapshot returns current counter values.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		PagesFetched: m.pagesFetched.Load(),
		ItemsSeen:    m.itemsSeen.Load(),
		ItemsDropped: m.itemsDropped.Load(),
		Retries:      m.retries.Load(),
		PointsFailed: m.pointsFailed.Load(),
	}
}

// Snapshot is a point-in-time view of the counters.
type Snapshot struct {
	PagesFetched int64
	ItemsSeen    int64
	ItemsDropped int64
	Retries      int64
	PointsFailed int64
}

// Log writes the snapshot through the given logger.
func (s Snapshot) Log(logger *slog.Logger) {
	logger.Info("run metrics",
		"pages_fetched", s.PagesFetched,
		"items_seen", s.ItemsSeen,
		"items_dropped", s.ItemsDropped,
		"retries", s.Retries,
		"points_failed", s.PointsFailed,
	)
}
