package services

import (
	"fmt"
	"time"

	"github.com/sambrend/nomer/internal/models"
)

const (
	TimeframeWeek  = "week"
	TimeframeMonth = "month"
	TimeframeYear  = "year"
)

var shortMonthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// ChartBucket is one point of a sales chart: a human label, the day (or
// month) key it covers, and the summed units for that bucket.
type ChartBucket struct {
	Label   string `json:"label"`
	DateKey string `json:"dateKey"`
	Total   int    `json:"total"`
}

// ChartOptions select the chart window relative to now. WeekOffset and
// MonthOffset are signed; Year names an absolute target year.
type ChartOptions struct {
	Year        int
	WeekOffset  int
	MonthOffset int
}

func ValidTimeframe(timeframe string) bool {
	switch timeframe {
	case TimeframeWeek, TimeframeMonth, TimeframeYear:
		return true
	}
	return false
}

// SalesChart buckets one user's sales for the requested timeframe.
//
// The week view sums count+bonus; month and year sum count only. The
// asymmetry is inherited from the product's reporting rules and is kept
// as-is.
func SalesChart(sales []models.SimSale, userID string, timeframe string, options ChartOptions, now time.Time, location *time.Location) []ChartBucket {
	switch timeframe {
	case TimeframeWeek:
		return weekChart(sales, userID, options.WeekOffset, now, location)
	case TimeframeMonth:
		return monthChart(sales, userID, options.MonthOffset, now, location)
	case TimeframeYear:
		return yearChart(sales, userID, options.Year)
	}
	return []ChartBucket{}
}

// weekChart covers the seven days of the Monday-starting week containing
// now, shifted by whole weeks.
func weekChart(sales []models.SimSale, userID string, weekOffset int, now time.Time, location *time.Location) []ChartBucket {
	monday := mondayOfWeek(now, location).AddDate(0, 0, weekOffset*7)

	buckets := make([]ChartBucket, 0, 7)
	for dayIndex := 0; dayIndex < 7; dayIndex++ {
		day := monday.AddDate(0, 0, dayIndex)
		dayKey := DayKey(day, location)
		buckets = append(buckets, ChartBucket{
			Label:   day.Format("Mon"),
			DateKey: dayKey,
			Total:   sumSalesOnDay(sales, userID, dayKey, true),
		})
	}
	return buckets
}

func monthChart(sales []models.SimSale, userID string, monthOffset int, now time.Time, location *time.Location) []ChartBucket {
	if location == nil {
		location = time.UTC
	}
	localized := now.In(location)
	firstOfMonth := time.Date(localized.Year(), localized.Month(), 1, 0, 0, 0, 0, location).AddDate(0, monthOffset, 0)
	lastDay := firstOfMonth.AddDate(0, 1, -1).Day()

	buckets := make([]ChartBucket, 0, lastDay)
	for dayNumber := 1; dayNumber <= lastDay; dayNumber++ {
		day := time.Date(firstOfMonth.Year(), firstOfMonth.Month(), dayNumber, 0, 0, 0, 0, location)
		dayKey := DayKey(day, location)
		buckets = append(buckets, ChartBucket{
			Label:   fmt.Sprintf("%d", dayNumber),
			DateKey: dayKey,
			Total:   sumSalesOnDay(sales, userID, dayKey, false),
		})
	}
	return buckets
}

// yearChart matches sales to months by YYYY-MM prefix of the date key.
func yearChart(sales []models.SimSale, userID string, targetYear int) []ChartBucket {
	buckets := make([]ChartBucket, 0, 12)
	for monthIndex := 0; monthIndex < 12; monthIndex++ {
		monthPrefix := fmt.Sprintf("%04d-%02d", targetYear, monthIndex+1)

		total := 0
		for _, sale := range sales {
			if sale.UserID == userID && len(sale.Date) >= len(monthPrefix) && sale.Date[:len(monthPrefix)] == monthPrefix {
				total += sale.Count
			}
		}

		buckets = append(buckets, ChartBucket{
			Label:   shortMonthNames[monthIndex],
			DateKey: monthPrefix + "-01",
			Total:   total,
		})
	}
	return buckets
}

func sumSalesOnDay(sales []models.SimSale, userID string, dayKey string, includeBonus bool) int {
	total := 0
	for _, sale := range sales {
		if sale.UserID != userID || sale.Date != dayKey {
			continue
		}
		if includeBonus {
			total += sale.Total()
		} else {
			total += sale.Count
		}
	}
	return total
}

func mondayOfWeek(now time.Time, location *time.Location) time.Time {
	day := LocalMidnight(now, location)
	weekday := int(day.Weekday())
	diffToMonday := 1 - weekday
	if weekday == 0 {
		diffToMonday = -6
	}
	return day.AddDate(0, 0, diffToMonday)
}
