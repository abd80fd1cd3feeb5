// Package export writes the deduplicated record set and its summary
// statistics into a three-sheet Excel workbook.
package export

import (
	"fmt"
	"math"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/sschan39/hk-foodpanda-crawler/internal/restaurant"
	"github.com/sschan39/hk-foodpanda-crawler/internal/stats"
)

const (
	DataSheet  = "Restaurant Data"
	StatsSheet = "Statistics Summary"
	AreasSheet = "Area Statistics"
)

// columns maps every record field to exactly one named column, in
// display order. The two legacy columns sit at the end.
var columns = []struct {
	header string
	value  func(r restaurant.Restaurant) any
}{
	{"name", func(r restaurant.Restaurant) any { return r.Name }},
	{"area", func(r restaurant.Restaurant) any { return r.Area }},
	{"code", func(r restaurant.Restaurant) any { return r.Code }},
	{"rating", func(r restaurant.Restaurant) any { return optFloat(r.Rating) }},
	{"rating_count", func(r restaurant.Restaurant) any { return optInt(r.RatingCount) }},
	{"cuisines", func(r restaurant.Restaurant) any { return r.Cuisines }},
	{"address", func(r restaurant.Restaurant) any { return optString(r.Address) }},
	{"phone", func(r restaurant.Restaurant) any { return optString(r.Phone) }},
	{"longitude", func(r restaurant.Restaurant) any { return optFloat(r.Longitude) }},
	{"latitude", func(r restaurant.Restaurant) any { return optFloat(r.Latitude) }},
	{"distance", func(r restaurant.Restaurant) any { return optFloat(r.Distance) }},
	{"minimum_order", func(r restaurant.Restaurant) any { return optFloat(r.MinimumOrder) }},
	{"budget_range", func(r restaurant.Restaurant) any { return optInt(r.BudgetRange) }},
	{"chain_name", func(r restaurant.Restaurant) any { return optString(r.ChainName) }},
	{"legal_name", func(r restaurant.Restaurant) any { return optString(r.LegalName) }},
	{"is_open", func(r restaurant.Restaurant) any { return optBool(r.IsOpen) }},
	{"is_delivery_enabled", func(r restaurant.Restaurant) any { return optBool(r.IsDeliveryEnabled) }},
	{"is_pickup_enabled", func(r restaurant.Restaurant) any { return optBool(r.IsPickupEnabled) }},
	{"delivery_provider", func(r restaurant.Restaurant) any { return optString(r.DeliveryProvider) }},
	{"available_in", func(r restaurant.Restaurant) any { return optString(r.AvailableIn) }},
	{"tags", func(r restaurant.Restaurant) any { return r.Tags }},
	{"hero_image", func(r restaurant.Restaurant) any { return optString(r.HeroImage) }},
	{"website", func(r restaurant.Restaurant) any { return optString(r.Website) }},
	{"delivery_time", func(r restaurant.Restaurant) any { return optString(r.DeliveryTime) }},
	{"delivery_fee", func(r restaurant.Restaurant) any { return optString(r.DeliveryFee) }},
}

// Filename builds the workbook name from an optional custom part, the
// collection time and the run ID.
func Filename(custom string, collectedAt time.Time, runID string) string {
	if custom == "" {
		custom = "coordinates"
	}
	if len(runID) > 8 {
		runID = runID[:8]
	}
	return fmt.Sprintf("foodpanda_hk_%s_%s_%s.xlsx", custom, collectedAt.Format("20060102_150405"), runID)
}

// WriteWorkbook writes the record set and statistics to path. Absent
// values become blank cells, never zeros.
func WriteWorkbook(path string, records []restaurant.Restaurant, summary stats.Summary, collectedAt time.Time) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", DataSheet); err != nil {
		return fmt.Errorf("failed to create data sheet: %w", err)
	}
	if err := writeData(f, records); err != nil {
		return err
	}

	if _, err := f.NewSheet(StatsSheet); err != nil {
		return fmt.Errorf("failed to create statistics sheet: %w", err)
	}
	if err := writeStats(f, summary, collectedAt); err != nil {
		return err
	}

	if _, err := f.NewSheet(AreasSheet); err != nil {
		return fmt.Errorf("failed to create area sheet: %w", err)
	}
	if err := writeAreas(f, summary.Areas); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeData(f *excelize.File, records []restaurant.Restaurant) error {
	for col, c := range columns {
		if err := setCell(f, DataSheet, col+1, 1, c.header); err != nil {
			return err
		}
	}
	for row, r := range records {
		for col, c := range columns {
			if err := setCell(f, DataSheet, col+1, row+2, c.value(r)); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeStats(f *excelize.File, s stats.Summary, collectedAt time.Time) error {
	rows := []struct {
		label string
		value any
	}{
		{"Statistic", "Value"},
		{"Total Restaurants", s.Total},
		{"Restaurants with Ratings", s.RatedCount},
		{"Average Rating", optRounded(s.MeanRating)},
		{"Search Coordinate Points", len(s.Areas)},
		{"Records with GPS Coordinates", s.WithCoordinates},
		{"Records with Phone Numbers", s.WithPhone},
		{"Chain Restaurants", s.ChainCount},
		{"Data Collection Time", collectedAt.Format("2006-01-02 15:04:05")},
	}

	for i, row := range rows {
		if err := setCell(f, StatsSheet, 1, i+1, row.label); err != nil {
			return err
		}
		if err := setCell(f, StatsSheet, 2, i+1, row.value); err != nil {
			return err
		}
	}
	return nil
}

func writeAreas(f *excelize.File, areas []stats.AreaSummary) error {
	headers := []string{"Area", "Restaurant Count", "Rated Count", "Average Rating", "Average Budget"}
	for col, h := range headers {
		if err := setCell(f, AreasSheet, col+1, 1, h); err != nil {
			return err
		}
	}

	for i, a := range areas {
		values := []any{a.Area, a.Count, a.RatedCount, optRounded(a.MeanRating), optRounded(a.MeanBudget)}
		for col, v := range values {
			if err := setCell(f, AreasSheet, col+1, i+2, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	if value == nil {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("invalid cell coordinates (%d, %d): %w", col, row, err)
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("failed to set %s!%s: %w", sheet, cell, err)
	}
	return nil
}

func optString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func optFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func optInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func optBool(v *bool) any {
	if v == nil {
		return nil
	}
	return *v
}

func optRounded(v *float64) any {
	if v == nil {
		return nil
	}
	return math.Round(*v*100) / 100
}
