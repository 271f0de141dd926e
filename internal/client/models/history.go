package models

import "time"

// TestRecord is one past test kept in the history sequence.
type TestRecord struct {
	ID      string    `json:"id"`
	UserID  string    `json:"userId,omitempty"`
	Kind    string    `json:"kind"`
	Score   float64   `json:"score"`
	TakenAt time.Time `json:"takenAt"`
}

// HistoryStatus tells "nothing recorded yet" apart from a real count.
type HistoryStatus string

const (
	HistoryNoData    HistoryStatus = "no_data"
	HistoryAvailable HistoryStatus = "available"
)

type HistoryStats struct {
	Status HistoryStatus
	Count  int
}

func NewHistoryStats(n int) HistoryStats {
	if n <= 0 {
		return HistoryStats{Status: HistoryNoData}
	}
	return HistoryStats{Status: HistoryAvailable, Count: n}
}
