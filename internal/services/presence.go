package services

import (
	"sort"
	"time"

	"github.com/sambrend/nomer/internal/models"
)

const (
	StatusWorking  = "working"
	StatusFinished = "finished"
	StatusAbsent   = "absent"
)

// StaffStatus is the monitoring view of one operator: today's presence
// state, their last known position and today's lateness if any.
type StaffStatus struct {
	User         models.User     `json:"user"`
	Status       string          `json:"status"`
	LastKnown    *models.CheckIn `json:"lastKnown,omitempty"`
	TodayCheckIn *models.CheckIn `json:"todayCheckIn,omitempty"`
	Lateness     *Lateness       `json:"lateness,omitempty"`
}

// BuildStaffStatuses classifies every approved non-manager user for the
// given day key. Status depends only on today's check-in and report:
// historical check-ins contribute the last known location, nothing else.
func BuildStaffStatuses(users []models.User, checkIns []models.CheckIn, reports []models.DailyReport, today string, location *time.Location) []StaffStatus {
	statuses := make([]StaffStatus, 0, len(users))
	for _, user := range users {
		if !user.IsApproved || user.IsManager() {
			continue
		}

		owned := make([]models.CheckIn, 0)
		for _, checkIn := range checkIns {
			if checkIn.UserID == user.ID {
				owned = append(owned, checkIn)
			}
		}
		sort.SliceStable(owned, func(i, j int) bool {
			return owned[i].Timestamp.After(owned[j].Timestamp)
		})

		status := StaffStatus{User: user, Status: StatusAbsent}
		if len(owned) > 0 {
			last := owned[0]
			status.LastKnown = &last
		}
		for index := range owned {
			if SameLocalDay(owned[index].Timestamp, today, location) {
				todayCheckIn := owned[index]
				status.TodayCheckIn = &todayCheckIn
				break
			}
		}

		if status.TodayCheckIn != nil {
			status.Status = StatusWorking
			if hasReportFor(reports, user.ID, today) {
				status.Status = StatusFinished
			}
			status.Lateness = EvaluateLateness(status.TodayCheckIn.Timestamp, user.WorkingHours, location)
		}

		statuses = append(statuses, status)
	}
	return statuses
}

func hasReportFor(reports []models.DailyReport, userID string, dayKey string) bool {
	for _, report := range reports {
		if report.UserID == userID && report.Date == dayKey {
			return true
		}
	}
	return false
}
