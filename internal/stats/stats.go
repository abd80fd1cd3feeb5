// Package stats computes summary statistics over a deduplicated
// record set for the export sink.
package stats

import (
	"sort"

	"github.com/sschan39/hk-foodpanda-crawler/internal/restaurant"
)

// Summary holds global statistics plus one bucket per distinct area.
// Means are computed only over present values; a bucket with no
// present values reports a nil mean, never zero.
type Summary struct {
	Total           int
	RatedCount      int
	MeanRating      *float64
	WithCoordinates int
	WithPhone       int
	ChainCount      int
	Areas           []AreaSummary
}

// AreaSummary aggregates the records attributed to one search area.
type AreaSummary struct {
	Area       string
	Count      int
	RatedCount int
	MeanRating *float64
	MeanBudget *float64
}

// Compute aggregates the record set. Area buckets come back sorted by
// area label.
func Compute(records []restaurant.Restaurant) Summary {
	s := Summary{Total: len(records)}

	var ratingSum float64
	areas := make(map[string]*areaAcc)

	for _, r := range records {
		if r.Rating != nil {
			s.RatedCount++
			ratingSum += *r.Rating
		}
		if r.Longitude != nil && r.Latitude != nil {
			s.WithCoordinates++
		}
		if r.Phone != nil {
			s.WithPhone++
		}
		if r.ChainName != nil {
			s.ChainCount++
		}

		a, ok := areas[r.Area]
		if !ok {
			a = &areaAcc{}
			areas[r.Area] = a
		}
		a.count++
		if r.Rating != nil {
			a.ratedCount++
			a.ratingSum += *r.Rating
		}
		if r.BudgetRange != nil {
			a.budgetCount++
			a.budgetSum += float64(*r.BudgetRange)
		}
	}

	s.MeanRating = mean(ratingSum, s.RatedCount)

	labels := make([]string, 0, len(areas))
	for label := range areas {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		a := areas[label]
		s.Areas = append(s.Areas, AreaSummary{
			Area:       label,
			Count:      a.count,
			RatedCount: a.ratedCount,
			MeanRating: mean(a.ratingSum, a.ratedCount),
			MeanBudget: mean(a.budgetSum, a.budgetCount),
		})
	}

	return s
}

type areaAcc struct {
	count       int
	ratedCount  int
	ratingSum   float64
	budgetCount int
	budgetSum   float64
}

func mean(sum float64, n int) *float64 {
	if n == 0 {
		return nil
	}
	m := sum / float64(n)
	return &m
}
