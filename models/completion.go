package models

import "time"

// CompletionHistoryEntry is the per-user summary of one adjusted day.
type CompletionHistoryEntry struct {
	UserID string `json:"userId,omitempty"`

	// Date is the adjusted day (04:00 local) the entry describes.
	Date time.Time `json:"date"`

	// Completed reports whether at least one tracked item was completed.
	Completed bool `json:"completed"`

	CompletedTodos int `json:"completedTodos"`
	TotalTodos     int `json:"totalTodos"`
	TotalScore     int `json:"totalScore"`
	PossibleScore  int `json:"possibleScore"`
}

// Percentage returns TotalScore as a share of PossibleScore in the 0..100
// range, or 0 when nothing could be scored.
func (e CompletionHistoryEntry) Percentage() float64 {
	if e.PossibleScore <= 0 {
		return 0
	}

	return float64(e.TotalScore) * 100 / float64(e.PossibleScore)
}

// StreakResult is derived on every request and never persisted.
type StreakResult struct {
	CurrentStreak   int        `json:"currentStreak"`
	LongestStreak   int        `json:"longestStreak"`
	StreakStartDate *time.Time `json:"streakStartDate"`
}

// Countdown is the time left until the next 04:00 day boundary.
type Countdown struct {
	Hours             int   `json:"hours"`
	Minutes           int   `json:"minutes"`
	TotalMilliseconds int64 `json:"totalMilliseconds"`
}

// Progress is the dashboard summary returned by the progress endpoint.
type Progress struct {
	DayNumber  int                    `json:"dayNumber"`
	Today      CompletionHistoryEntry `json:"today"`
	Percentage float64                `json:"percentage"`
	Streak     StreakResult           `json:"streak"`
	Countdown  Countdown              `json:"countdown"`
}
