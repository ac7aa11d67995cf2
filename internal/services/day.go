package services

import "time"

const dayKeyLayout = "2006-01-02"

// DayKey formats a timestamp as the local-calendar YYYY-MM-DD key used
// to match check-ins, sales and reports to a date. Local time, not UTC:
// a check-in at 23:30 belongs to the day it happened, not the UTC day.
func DayKey(value time.Time, location *time.Location) string {
	if location == nil {
		location = time.UTC
	}
	return value.In(location).Format(dayKeyLayout)
}

// SameLocalDay reports whether the timestamp falls on the given day key
// in the given location.
func SameLocalDay(value time.Time, dayKey string, location *time.Location) bool {
	return DayKey(value, location) == dayKey
}

// ParseDayKey turns a YYYY-MM-DD key back into local midnight.
func ParseDayKey(dayKey string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	return time.ParseInLocation(dayKeyLayout, dayKey, location)
}

func MonthKey(value time.Time, location *time.Location) string {
	if location == nil {
		location = time.UTC
	}
	return value.In(location).Format("2006-01")
}

// LocalMidnight truncates a timestamp to midnight in the location.
func LocalMidnight(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}
