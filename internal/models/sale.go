package models

import "time"

// SimSale is conceptually keyed by (UserID, Date, Company, Tariff):
// the store keeps at most one record per tuple and merges new sales into
// the existing one.
type SimSale struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Date      string    `json:"date"`
	Company   string    `json:"company"`
	Tariff    string    `json:"tariff"`
	Count     int       `json:"count"`
	Bonus     int       `json:"bonus"`
	Timestamp time.Time `json:"timestamp"`
}

func (sale SimSale) SameTuple(other SimSale) bool {
	return sale.UserID == other.UserID &&
		sale.Date == other.Date &&
		sale.Company == other.Company &&
		sale.Tariff == other.Tariff
}

// Total is the unit count plus bonus units, the figure shown on today
// views, the weekly chart and the leaderboard.
func (sale SimSale) Total() int {
	return sale.Count + sale.Bonus
}
