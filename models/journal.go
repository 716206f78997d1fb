package models

import (
	"slices"
	"time"
)

// Mood is the optional emotional tag attached to a journal entry.
type Mood string

const (
	MoodGreat Mood = "great"
	MoodGood  Mood = "good"
	MoodOkay  Mood = "okay"
	MoodBad   Mood = "bad"
	MoodAwful Mood = "awful"
)

var knownMoods = []Mood{MoodGreat, MoodGood, MoodOkay, MoodBad, MoodAwful}

// IsValid reports whether m is empty or one of the known moods.
func (m Mood) IsValid() bool {
	return m == "" || slices.Contains(knownMoods, m)
}

// JournalEntry is the calendar journal record for one adjusted day.
// Content is encrypted at rest; Mood is stored in clear so it can be charted.
type JournalEntry struct {
	ID      string    `json:"id,omitempty"`
	UserID  string    `json:"userId,omitempty"`
	Day     time.Time `json:"day"`
	Content string    `json:"content"`
	Mood    Mood      `json:"mood,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}
