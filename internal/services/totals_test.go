package services

import (
	"testing"
	"time"

	"github.com/sambrend/nomer/internal/models"
)

func TestUserSalesTotal(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	sales := []models.SimSale{
		{ID: "1", UserID: "u1", Date: "2026-03-10", Count: 4, Bonus: 1},
		{ID: "2", UserID: "u1", Date: "2026-03-05", Count: 10},
		{ID: "3", UserID: "u1", Date: "2026-02-15", Count: 20, Bonus: 2},
		{ID: "4", UserID: "u2", Date: "2026-03-10", Count: 100},
	}

	tests := []struct {
		name      string
		timeframe string
		want      int
	}{
		{name: "today", timeframe: TotalsToday, want: 5},
		{name: "trailing week", timeframe: TotalsWeek, want: 15},
		{name: "calendar month", timeframe: TotalsMonth, want: 15},
		{name: "all time", timeframe: TotalsAll, want: 37},
		{name: "unknown falls back to all", timeframe: "quarter", want: 37},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserSalesTotal(sales, "u1", tt.timeframe, now, time.UTC); got != tt.want {
				t.Fatalf("UserSalesTotal(%s) = %d, want %d", tt.timeframe, got, tt.want)
			}
		})
	}
}

func TestBuildMonitoringStats(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	user := models.User{ID: "u1", Role: models.RoleOperator, WorkingHours: "09:00-18:00"}

	sales := []models.SimSale{
		{ID: "1", UserID: "u1", Date: "2026-03-01", Count: 5, Bonus: 1},
		{ID: "2", UserID: "u1", Date: "2026-01-01", Count: 50},
	}
	checkIns := []models.CheckIn{
		{UserID: "u1", Timestamp: time.Date(2026, 3, 9, 8, 55, 0, 0, time.UTC)},
		{UserID: "u1", Timestamp: time.Date(2026, 3, 8, 9, 30, 0, 0, time.UTC)},
		{UserID: "u1", Timestamp: time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)},
		{UserID: "u2", Timestamp: time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)},
	}

	stats := BuildMonitoringStats(sales, checkIns, user, now, time.UTC)

	if stats.MonthlyTotal != 6 {
		t.Fatalf("MonthlyTotal = %d, want 6", stats.MonthlyTotal)
	}
	if stats.ActiveDays != 2 {
		t.Fatalf("ActiveDays = %d, want 2", stats.ActiveDays)
	}
	if stats.PunctualityRate != 50 {
		t.Fatalf("PunctualityRate = %d, want 50", stats.PunctualityRate)
	}
}

func TestBuildMonitoringStatsDefaultsToFullPunctuality(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	user := models.User{ID: "u1", Role: models.RoleOperator}

	stats := BuildMonitoringStats(nil, nil, user, now, time.UTC)
	if stats.PunctualityRate != 100 {
		t.Fatalf("PunctualityRate = %d, want 100 with no check-ins", stats.PunctualityRate)
	}
}

func TestTrailingWeekSeries(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	sales := []models.SimSale{
		{ID: "1", UserID: "u1", Date: "2026-03-04", Count: 2, Bonus: 1},
		{ID: "2", UserID: "u1", Date: "2026-03-10", Count: 4},
		{ID: "3", UserID: "u1", Date: "2026-03-03", Count: 99},
	}

	series := TrailingWeekSeries(sales, "u1", now, time.UTC)
	if len(series) != 7 {
		t.Fatalf("expected 7 points, got %d", len(series))
	}
	if series[0].DateKey != "2026-03-04" || series[0].Total != 3 {
		t.Fatalf("oldest point = %+v, want 2026-03-04 total 3", series[0])
	}
	if series[6].DateKey != "2026-03-10" || series[6].Total != 4 {
		t.Fatalf("newest point = %+v, want today total 4", series[6])
	}
}
