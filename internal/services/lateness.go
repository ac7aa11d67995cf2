package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var scheduleStartPattern = regexp.MustCompile(`(\d{1,2})[:.](\d{2})`)

// Lateness describes by how much a check-in missed the scheduled start.
// A nil Lateness means on time, early, or no usable schedule.
type Lateness struct {
	Minutes int    `json:"minutes"`
	Label   string `json:"label"`
}

// EvaluateLateness compares the check-in's local clock time against the
// start of a "HH:MM-HH:MM" working-hours window. Only hour and minute
// are compared; the date is ignored. An absent or unparsable schedule
// yields nil rather than an error: lateness is simply not applicable.
func EvaluateLateness(checkInAt time.Time, workingHours string, location *time.Location) *Lateness {
	if location == nil {
		location = time.UTC
	}
	if !strings.Contains(workingHours, "-") {
		return nil
	}

	startPart := strings.TrimSpace(strings.SplitN(workingHours, "-", 2)[0])
	match := scheduleStartPattern.FindStringSubmatch(startPart)
	if match == nil {
		return nil
	}

	startHour, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}
	startMinute, err := strconv.Atoi(match[2])
	if err != nil {
		return nil
	}

	localized := checkInAt.In(location)
	startTotal := startHour*60 + startMinute
	checkInTotal := localized.Hour()*60 + localized.Minute()
	if checkInTotal <= startTotal {
		return nil
	}

	diff := checkInTotal - startTotal
	return &Lateness{Minutes: diff, Label: latenessLabel(diff)}
}

func latenessLabel(minutes int) string {
	hours := minutes / 60
	remainder := minutes % 60
	if hours > 0 {
		return fmt.Sprintf("%d soat %d daqiqa", hours, remainder)
	}
	return fmt.Sprintf("%d daqiqa", remainder)
}
