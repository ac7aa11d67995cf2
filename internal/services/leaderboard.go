package services

import (
	"sort"
	"time"

	"github.com/sambrend/nomer/internal/models"
)

const leaderboardWindowDays = 30

// RankedUser pairs a user with their trailing-window sales total.
type RankedUser struct {
	User  models.User `json:"user"`
	Total int         `json:"total"`
}

// Leaderboard holds the podium and everyone else, ranked descending by
// total with ties kept in original relative order.
type Leaderboard struct {
	TopThree []RankedUser `json:"topThree"`
	Others   []RankedUser `json:"others"`
}

// BuildLeaderboard ranks all non-manager users by count+bonus summed
// over sales dated within the trailing 30-day window.
func BuildLeaderboard(users []models.User, sales []models.SimSale, now time.Time, location *time.Location) Leaderboard {
	windowStart := LocalMidnight(now, location).AddDate(0, 0, -leaderboardWindowDays)

	ranked := make([]RankedUser, 0, len(users))
	for _, user := range users {
		if user.IsManager() {
			continue
		}
		ranked = append(ranked, RankedUser{
			User:  user,
			Total: windowTotal(sales, user.ID, windowStart, location),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})

	split := 3
	if len(ranked) < split {
		split = len(ranked)
	}
	return Leaderboard{
		TopThree: ranked[:split],
		Others:   ranked[split:],
	}
}

func windowTotal(sales []models.SimSale, userID string, windowStart time.Time, location *time.Location) int {
	total := 0
	for _, sale := range sales {
		if sale.UserID != userID {
			continue
		}
		saleDay, err := ParseDayKey(sale.Date, location)
		if err != nil || saleDay.Before(windowStart) {
			continue
		}
		total += sale.Total()
	}
	return total
}
