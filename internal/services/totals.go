package services

import (
	"strings"
	"time"

	"github.com/sambrend/nomer/internal/models"
)

const (
	TotalsToday = "today"
	TotalsWeek  = "week"
	TotalsMonth = "month"
	TotalsAll   = "all"
)

// UserSalesTotal sums count+bonus for one user over a timeframe: the
// current day, the trailing 7 days, the current calendar month, or all
// time. Unknown timeframes fall back to all time.
func UserSalesTotal(sales []models.SimSale, userID string, timeframe string, now time.Time, location *time.Location) int {
	today := DayKey(now, location)
	monthPrefix := MonthKey(now, location)
	weekStart := LocalMidnight(now, location).AddDate(0, 0, -7)

	total := 0
	for _, sale := range sales {
		if sale.UserID != userID {
			continue
		}
		switch timeframe {
		case TotalsToday:
			if sale.Date != today {
				continue
			}
		case TotalsMonth:
			if !strings.HasPrefix(sale.Date, monthPrefix) {
				continue
			}
		case TotalsWeek:
			saleDay, err := ParseDayKey(sale.Date, location)
			if err != nil || saleDay.Before(weekStart) {
				continue
			}
		}
		total += sale.Total()
	}
	return total
}

// MonitoringStats are the operator's own discipline numbers over the
// trailing 30 days.
type MonitoringStats struct {
	MonthlyTotal    int `json:"monthlyTotal"`
	PunctualityRate int `json:"punctualityRate"`
	ActiveDays      int `json:"activeDays"`
}

// BuildMonitoringStats computes the 30-day sales total, the share of
// on-time check-ins (100 when there were none) and the number of days
// with a check-in.
func BuildMonitoringStats(sales []models.SimSale, checkIns []models.CheckIn, user models.User, now time.Time, location *time.Location) MonitoringStats {
	windowStart := LocalMidnight(now, location).AddDate(0, 0, -30)

	monthlyTotal := 0
	for _, sale := range sales {
		if sale.UserID != user.ID {
			continue
		}
		saleDay, err := ParseDayKey(sale.Date, location)
		if err != nil || saleDay.Before(windowStart) {
			continue
		}
		monthlyTotal += sale.Total()
	}

	totalCheckIns := 0
	onTime := 0
	for _, checkIn := range checkIns {
		if checkIn.UserID != user.ID || checkIn.Timestamp.Before(windowStart) {
			continue
		}
		totalCheckIns++
		if EvaluateLateness(checkIn.Timestamp, user.WorkingHours, location) == nil {
			onTime++
		}
	}

	punctuality := 100
	if totalCheckIns > 0 {
		punctuality = int(float64(onTime)/float64(totalCheckIns)*100 + 0.5)
	}

	return MonitoringStats{
		MonthlyTotal:    monthlyTotal,
		PunctualityRate: punctuality,
		ActiveDays:      totalCheckIns,
	}
}

// TrailingWeekSeries buckets one user's count+bonus per day over the
// last 7 days ending today, oldest first.
func TrailingWeekSeries(sales []models.SimSale, userID string, now time.Time, location *time.Location) []ChartBucket {
	buckets := make([]ChartBucket, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		day := LocalMidnight(now, location).AddDate(0, 0, -offset)
		dayKey := DayKey(day, location)
		buckets = append(buckets, ChartBucket{
			Label:   day.Format("Mon"),
			DateKey: dayKey,
			Total:   sumSalesOnDay(sales, userID, dayKey, true),
		})
	}
	return buckets
}
