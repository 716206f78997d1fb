package streak

import (
	"slices"
	"time"

	"github.com/MKhiriev/go-progress-keeper/models"
)

// Calculate derives the current and longest streak from history as of now.
//
// Entry dates are interpreted in now's location. Zero dates never match a
// day. Several entries on one day count as completed if any of them is.
// Entries after today are ignored. A day without an entry breaks both the
// current and the longest streak.
//
// start is the journey start of the user. It does not influence the result:
// changing the start date never erases a streak already earned.
func Calculate(history []models.CompletionHistoryEntry, start *time.Time, now time.Time) models.StreakResult {
	loc := now.Location()
	today := dayIndex(now)

	completed := make(map[int64]bool, len(history))
	for _, entry := range history {
		if entry.Date.IsZero() {
			continue
		}

		idx := dayIndex(entry.Date.In(loc))
		if idx > today {
			continue
		}
		completed[idx] = completed[idx] || entry.Completed
	}

	if len(completed) == 0 {
		return models.StreakResult{}
	}

	var result models.StreakResult
	for idx := today; completed[idx]; idx-- {
		result.CurrentStreak++
	}
	if result.CurrentStreak > 0 {
		y, m, d := AdjustedStartOfDay(now).Date()
		streakStart := time.Date(y, m, d-(result.CurrentStreak-1), DayStartHour, 0, 0, 0, loc)
		result.StreakStartDate = &streakStart
	}

	result.LongestStreak = longestRun(completed)

	return result
}

// longestRun scans days in chronological order and returns the longest run
// of completed days with no calendar gap between them.
func longestRun(completed map[int64]bool) int {
	days := make([]int64, 0, len(completed))
	for idx := range completed {
		days = append(days, idx)
	}
	slices.Sort(days)

	var longest, run int
	var prev int64
	for _, idx := range days {
		switch {
		case !completed[idx]:
			run = 0
		case run > 0 && idx == prev+1:
			run++
		default:
			run = 1
		}
		longest = max(longest, run)
		prev = idx
	}

	return longest
}

// TimeUntilNextDay returns the time left until the next 04:00 boundary.
func TimeUntilNextDay(now time.Time) models.Countdown {
	left := NextDayStart(now).Sub(now)

	return models.Countdown{
		Hours:             int(left / time.Hour),
		Minutes:           int(left % time.Hour / time.Minute),
		TotalMilliseconds: left.Milliseconds(),
	}
}
