package srs

import (
	"math"
	"time"

	"github.com/otiyot/gematria/internal/domain"
)

// adjustEase computes the updated ease factor for a review. The delta is
// the classic SM-2 quadratic in (5 - quality), clamped at the minimum:
//
//	delta = 0.1 - (5-q) * (0.08 + (5-q) * 0.02)
//
// Quality 5 raises ease by 0.1, quality 4 leaves it unchanged, quality 3
// lowers it by 0.14, quality 1 by 0.54.
func adjustEase(easeFactor float64, quality domain.ReviewQuality, params *Params) float64 {
	missed := float64(5 - quality)
	delta := 0.1 - missed*(0.08+missed*0.02)
	newEase := easeFactor + delta
	if newEase < params.MinEaseFactor {
		newEase = params.MinEaseFactor
	}
	return newEase
}

// nextInterval computes the new interval in minutes. Failure always resets
// to the minimum step regardless of history; the first two successes take
// the fixed ladder steps, later successes multiply by the new ease factor.
func nextInterval(
	currentInterval int,
	repetitions int,
	newEase float64,
	quality domain.ReviewQuality,
	params *Params,
) int {
	if !quality.IsCorrect() {
		return params.MinIntervalMinutes
	}

	switch repetitions {
	case 0:
		return params.FirstStepMinutes
	case 1:
		return params.SecondStepMinutes
	default:
		return int(math.Round(float64(currentInterval) * newEase))
	}
}

// nextState applies one review to a card's scheduling state, returning a
// new state and leaving the input untouched.
func nextState(
	state domain.CardState,
	quality domain.ReviewQuality,
	now time.Time,
	params *Params,
) domain.CardState {
	next := state

	next.EaseFactor = adjustEase(state.EaseFactor, quality, params)
	next.IntervalMinutes = nextInterval(
		state.IntervalMinutes,
		state.Repetitions,
		next.EaseFactor,
		quality,
		params,
	)

	if quality.IsCorrect() {
		next.Repetitions = state.Repetitions + 1
		next.CorrectCount = state.CorrectCount + 1
	} else {
		next.Repetitions = 0
	}

	next.ReviewCount = state.ReviewCount + 1
	next.LastQuality = quality
	next.NextReview = now.Add(time.Duration(next.IntervalMinutes) * time.Minute)

	return next
}
