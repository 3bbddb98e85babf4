// Package srs implements the SM-2 variant that schedules card reviews.
// Intervals are in minutes: the engine drills short in-session repetitions,
// not day-scale decks.
package srs

// Params defines the configurable parameters of the scheduler.
type Params struct {
	// MinEaseFactor is the floor the ease factor is clamped to.
	MinEaseFactor float64

	// MinIntervalMinutes is the interval a failed card resets to.
	MinIntervalMinutes int

	// FirstStepMinutes is the interval after the first successful review.
	FirstStepMinutes int

	// SecondStepMinutes is the interval after the second successful review.
	// From the third success on, the interval grows by the ease factor.
	SecondStepMinutes int
}

// NewDefaultParams returns the scheduler parameters the engine ships with.
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor:      1.3,
		MinIntervalMinutes: 1,
		FirstStepMinutes:   2,
		SecondStepMinutes:  10,
	}
}
