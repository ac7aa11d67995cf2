package models

import "time"

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CheckIn has no identifier of its own: identity is the pair of UserID
// and the local calendar day of Timestamp.
type CheckIn struct {
	UserID    string    `json:"userId"`
	Timestamp time.Time `json:"timestamp"`
	Location  GeoPoint  `json:"location"`
	Photo     string    `json:"photo"`
}
