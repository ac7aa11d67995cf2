package store

import (
	"github.com/sambrend/nomer/internal/models"
	"github.com/sambrend/nomer/internal/services"
)

// Read helpers. Each works on a fresh snapshot, so returned values never
// alias store-owned memory.

func (store *Store) UserByID(userID string) (models.User, bool) {
	snapshot := store.Snapshot()
	for _, user := range snapshot.Users {
		if user.ID == userID {
			return user, true
		}
	}
	return models.User{}, false
}

func (store *Store) UserByPhone(phone string) (models.User, bool) {
	snapshot := store.Snapshot()
	for _, user := range snapshot.Users {
		if user.Phone == phone {
			return user, true
		}
	}
	return models.User{}, false
}

// CheckInForDay finds the user's check-in on the given local day key.
func (store *Store) CheckInForDay(userID string, dayKey string) (models.CheckIn, bool) {
	snapshot := store.Snapshot()
	for _, checkIn := range snapshot.CheckIns {
		if checkIn.UserID == userID && services.SameLocalDay(checkIn.Timestamp, dayKey, store.location) {
			return checkIn, true
		}
	}
	return models.CheckIn{}, false
}

func (store *Store) ReportForDay(userID string, dayKey string) (models.DailyReport, bool) {
	snapshot := store.Snapshot()
	for _, report := range snapshot.Reports {
		if report.UserID == userID && report.Date == dayKey {
			return report, true
		}
	}
	return models.DailyReport{}, false
}

func (store *Store) SalesForUserDate(userID string, dayKey string) []models.SimSale {
	snapshot := store.Snapshot()
	matched := make([]models.SimSale, 0)
	for _, sale := range snapshot.Sales {
		if sale.UserID == userID && sale.Date == dayKey {
			matched = append(matched, sale)
		}
	}
	return matched
}
