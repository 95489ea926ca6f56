package scheduler

import "time"

// TriggerPolicy decides when the next sync cycle should run.
type TriggerPolicy interface {
	// Next returns the first deadline strictly after the given instant.
	Next(after time.Time) time.Time
}

// DailyAt triggers once a day at a fixed local time of day.
type DailyAt struct {
	Hour   int
	Minute int
}

// Next returns today at the configured time, or tomorrow if that has already
// passed.
func (p DailyAt) Next(after time.Time) time.Time {
	next := time.Date(after.Year(), after.Month(), after.Day(), p.Hour, p.Minute, 0, 0, after.Location())
	if !next.After(after) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Every triggers on a fixed repeating interval, recomputed after each cycle
// regardless of how long the cycle took.
type Every struct {
	Interval time.Duration
}

// Next returns the given instant plus the interval.
func (p Every) Next(after time.Time) time.Time {
	return after.Add(p.Interval)
}
