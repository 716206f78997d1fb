package streak

import (
	"time"

	"github.com/MKhiriev/go-progress-keeper/internal/clock"
	"github.com/MKhiriev/go-progress-keeper/models"
)

// Calculator binds the pure day functions to a clock and a configured
// location.
type Calculator struct {
	clock clock.Clock
	loc   *time.Location
}

// NewCalculator returns a Calculator. A nil clock means the system clock and
// a nil location means time.Local.
func NewCalculator(clk clock.Clock, loc *time.Location) *Calculator {
	if clk == nil {
		clk = clock.Real{}
	}
	if loc == nil {
		loc = time.Local
	}

	return &Calculator{clock: clk, loc: loc}
}

// Now returns the current time in the calculator's location.
func (c *Calculator) Now() time.Time {
	return c.clock.Now().In(c.loc)
}

// Location returns the location days are evaluated in.
func (c *Calculator) Location() *time.Location {
	return c.loc
}

// Today returns the start of the current day.
func (c *Calculator) Today() time.Time {
	return AdjustedStartOfDay(c.Now())
}

// DayOf returns the start of the day t belongs to.
func (c *Calculator) DayOf(t time.Time) time.Time {
	return AdjustedStartOfDay(t.In(c.loc))
}

// ParseDay parses "YYYY-MM-DD" into the start of that day.
func (c *Calculator) ParseDay(s string) (time.Time, error) {
	return ParseDay(s, c.loc)
}

// DayNumber returns the current journey day number for start.
func (c *Calculator) DayNumber(start *time.Time) int {
	return CurrentDayNumber(c.Now(), start)
}

// Streak computes the streak statistics as of now.
func (c *Calculator) Streak(history []models.CompletionHistoryEntry, start *time.Time) models.StreakResult {
	return Calculate(history, start, c.Now())
}

// Countdown returns the time left until the next day starts.
func (c *Calculator) Countdown() models.Countdown {
	return TimeUntilNextDay(c.Now())
}

// UntilNextDay returns the same countdown as a duration.
func (c *Calculator) UntilNextDay() time.Duration {
	now := c.Now()
	return NextDayStart(now).Sub(now)
}
