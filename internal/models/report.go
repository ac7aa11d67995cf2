package models

import "time"

// DailyReport closes an operator's working day. Photos stays nil when
// the report carries none so the serialized blob omits the field.
type DailyReport struct {
	UserID    string    `json:"userId"`
	Date      string    `json:"date"`
	Summary   string    `json:"summary"`
	Timestamp time.Time `json:"timestamp"`
	Photos    []string  `json:"photos,omitempty"`
}
