package export_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/sschan39/hk-foodpanda-crawler/internal/export"
	"github.com/sschan39/hk-foodpanda-crawler/internal/restaurant"
	"github.com/sschan39/hk-foodpanda-crawler/internal/stats"
)

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

func TestFilename(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	got := export.Filename("coordinates", at, "a1b2c3d4-0000-0000-0000-000000000000")
	want := "foodpanda_hk_coordinates_20250314_092653_a1b2c3d4.xlsx"
	if got != want {
		t.Errorf("Filename = %q, want %q", got, want)
	}

	got = export.Filename("", at, "short")
	want = "foodpanda_hk_coordinates_20250314_092653_short.xlsx"
	if got != want {
		t.Errorf("Filename with empty custom part = %q, want %q", got, want)
	}
}

func TestWriteWorkbook(t *testing.T) {
	records := []restaurant.Restaurant{
		{
			Code:     "s1ab",
			Name:     "Dim Sum Palace",
			Area:     "Central 中環",
			Rating:   fptr(4.6),
			Address:  sptr("10 Queen's Road"),
			Cuisines: "Cantonese, Dim Sum",
		},
		{
			Code: "m2cd",
			Name: "Noodle House",
			Area: "Mong Kok 旺角",
		},
	}
	summary := stats.Compute(records)
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := export.WriteWorkbook(path, records, summary, at); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	for _, sheet := range []string{export.DataSheet, export.StatsSheet, export.AreasSheet} {
		if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
			t.Errorf("missing sheet %q", sheet)
		}
	}

	// Header row and first record.
	if got, _ := f.GetCellValue(export.DataSheet, "A1"); got != "name" {
		t.Errorf("data A1 = %q, want name header", got)
	}
	if got, _ := f.GetCellValue(export.DataSheet, "A2"); got != "Dim Sum Palace" {
		t.Errorf("data A2 = %q", got)
	}
	if got, _ := f.GetCellValue(export.DataSheet, "B2"); got != "Central 中環" {
		t.Errorf("data B2 = %q", got)
	}

	// Absent rating on the second record stays blank.
	if got, _ := f.GetCellValue(export.DataSheet, "D3"); got != "" {
		t.Errorf("absent rating cell = %q, want blank", got)
	}

	// Statistics rows.
	if got, _ := f.GetCellValue(export.StatsSheet, "A2"); got != "Total Restaurants" {
		t.Errorf("stats A2 = %q", got)
	}
	if got, _ := f.GetCellValue(export.StatsSheet, "B2"); got != "2" {
		t.Errorf("stats B2 = %q, want 2", got)
	}
	if got, _ := f.GetCellValue(export.StatsSheet, "B4"); got != "4.6" {
		t.Errorf("mean rating cell = %q, want 4.6", got)
	}

	// Area rows are sorted by label.
	if got, _ := f.GetCellValue(export.AreasSheet, "A2"); got != "Central 中環" {
		t.Errorf("areas A2 = %q", got)
	}
	if got, _ := f.GetCellValue(export.AreasSheet, "A3"); got != "Mong Kok 旺角" {
		t.Errorf("areas A3 = %q", got)
	}
}

func TestWriteWorkbook_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := export.WriteWorkbook(path, nil, stats.Compute(nil), time.Now()); err != nil {
		t.Fatalf("WriteWorkbook with no records: %v", err)
	}
}
