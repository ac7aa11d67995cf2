package services

import (
	"testing"
	"time"

	"github.com/sambrend/nomer/internal/models"
)

// Tuesday 2026-03-10; the Monday-starting week is 03-09 through 03-15.
var chartNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func chartSales() []models.SimSale {
	return []models.SimSale{
		{ID: "s1", UserID: "u1", Date: "2026-03-09", Company: "Ucell", Count: 3, Bonus: 2},
		{ID: "s2", UserID: "u1", Date: "2026-03-10", Company: "Beeline", Count: 5, Bonus: 0},
		{ID: "s3", UserID: "u1", Date: "2026-02-27", Company: "Ucell", Count: 7, Bonus: 1},
		{ID: "s4", UserID: "u2", Date: "2026-03-10", Company: "Ucell", Count: 100, Bonus: 100},
	}
}

func TestSalesChartWeekIncludesBonus(t *testing.T) {
	buckets := SalesChart(chartSales(), "u1", TimeframeWeek, ChartOptions{}, chartNow, time.UTC)
	if len(buckets) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(buckets))
	}
	if buckets[0].DateKey != "2026-03-09" {
		t.Fatalf("week starts at %s, want Monday 2026-03-09", buckets[0].DateKey)
	}
	if buckets[0].Total != 5 {
		t.Fatalf("Monday total = %d, want count+bonus = 5", buckets[0].Total)
	}
	if buckets[1].Total != 5 {
		t.Fatalf("Tuesday total = %d, want 5", buckets[1].Total)
	}
}

func TestSalesChartWeekOffset(t *testing.T) {
	buckets := SalesChart(chartSales(), "u1", TimeframeWeek, ChartOptions{WeekOffset: -2}, chartNow, time.UTC)
	if buckets[0].DateKey != "2026-02-23" {
		t.Fatalf("offset week starts at %s, want 2026-02-23", buckets[0].DateKey)
	}
	// Friday of that week is 02-27.
	if buckets[4].Total != 8 {
		t.Fatalf("Friday total = %d, want 8", buckets[4].Total)
	}
}

func TestSalesChartMonthCountsOnly(t *testing.T) {
	buckets := SalesChart(chartSales(), "u1", TimeframeMonth, ChartOptions{}, chartNow, time.UTC)
	if len(buckets) != 31 {
		t.Fatalf("March has 31 buckets, got %d", len(buckets))
	}
	if buckets[8].DateKey != "2026-03-09" {
		t.Fatalf("bucket 9 covers %s, want 2026-03-09", buckets[8].DateKey)
	}
	if buckets[8].Total != 3 {
		t.Fatalf("month bucket total = %d, want count without bonus = 3", buckets[8].Total)
	}
}

func TestSalesChartYearByMonthPrefix(t *testing.T) {
	buckets := SalesChart(chartSales(), "u1", TimeframeYear, ChartOptions{Year: 2026}, chartNow, time.UTC)
	if len(buckets) != 12 {
		t.Fatalf("expected 12 buckets, got %d", len(buckets))
	}
	if buckets[1].Total != 7 {
		t.Fatalf("February total = %d, want 7", buckets[1].Total)
	}
	if buckets[2].Total != 8 {
		t.Fatalf("March total = %d, want counts only = 8", buckets[2].Total)
	}
	if buckets[0].Label != "Jan" || buckets[0].DateKey != "2026-01-01" {
		t.Fatalf("January bucket = %+v", buckets[0])
	}
}

func TestSalesChartUnknownTimeframe(t *testing.T) {
	if buckets := SalesChart(chartSales(), "u1", "decade", ChartOptions{}, chartNow, time.UTC); len(buckets) != 0 {
		t.Fatalf("expected no buckets, got %d", len(buckets))
	}
	if ValidTimeframe("decade") {
		t.Fatal("ValidTimeframe accepted an unknown timeframe")
	}
}

func TestMondayOfWeekSunday(t *testing.T) {
	// Sunday 2026-03-15 belongs to the week starting Monday 03-09.
	sunday := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	monday := mondayOfWeek(sunday, time.UTC)
	if got := DayKey(monday, time.UTC); got != "2026-03-09" {
		t.Fatalf("mondayOfWeek(Sunday) = %s, want 2026-03-09", got)
	}
}
