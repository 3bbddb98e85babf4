package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewQuality is the learner's self-rating for one review. The drill UI
// offers four ratings; quality 2 is unused.
type ReviewQuality int

// Possible review qualities.
const (
	QualityWrong  ReviewQuality = 1
	QualityUnsure ReviewQuality = 3
	QualityGood   ReviewQuality = 4
	QualityEasy   ReviewQuality = 5
)

// IsValid reports whether q is one of the four ratings.
func (q ReviewQuality) IsValid() bool {
	switch q {
	case QualityWrong, QualityUnsure, QualityGood, QualityEasy:
		return true
	default:
		return false
	}
}

// IsCorrect reports whether the rating counts as a successful recall.
// Unsure and above advance the repetition ladder.
func (q ReviewQuality) IsCorrect() bool {
	return q >= QualityUnsure
}

// Scheduling defaults for freshly created cards.
const (
	DefaultEaseFactor  = 2.5
	MinEaseFactor      = 1.3
	MinIntervalMinutes = 1
)

// CardState-specific validation errors.
var (
	ErrStatsCardIDEmpty  = NewValidationError("card state", "card_id", "cannot be empty")
	ErrStatsEaseFactor   = NewValidationError("card state", "ease_factor", "must be at least 1.3")
	ErrStatsInterval     = NewValidationError("card state", "interval_minutes", "must be positive")
	ErrStatsRepetitions  = NewValidationError("card state", "repetitions", "cannot be negative")
	ErrStatsReviewCounts = NewValidationError("card state", "correct_count", "cannot exceed review_count")
	ErrStatsLastQuality  = NewValidationError("card state", "last_quality", "must be 1, 3, 4 or 5")
)

// CardState tracks the spaced-repetition schedule for one card. Intervals
// are in minutes throughout. LastQuality is zero until the first review.
type CardState struct {
	CardID          string        `json:"card_id"`
	EaseFactor      float64       `json:"ease_factor"`
	IntervalMinutes int           `json:"interval_minutes"`
	Repetitions     int           `json:"repetitions"`
	NextReview      time.Time     `json:"next_review"`
	LastQuality     ReviewQuality `json:"last_quality,omitempty"`
	ReviewCount     int           `json:"review_count"`
	CorrectCount    int           `json:"correct_count"`
}

// NewCardState creates fresh scheduling state for a card. The card is due
// immediately.
func NewCardState(cardID string, now time.Time) CardState {
	return CardState{
		CardID:          cardID,
		EaseFactor:      DefaultEaseFactor,
		IntervalMinutes: MinIntervalMinutes,
		Repetitions:     0,
		NextReview:      now,
	}
}

// Validate checks the CardState invariants.
func (s CardState) Validate() error {
	if s.CardID == "" {
		return ErrStatsCardIDEmpty
	}
	if s.EaseFactor < MinEaseFactor {
		return ErrStatsEaseFactor
	}
	if s.IntervalMinutes < MinIntervalMinutes {
		return ErrStatsInterval
	}
	if s.Repetitions < 0 {
		return ErrStatsRepetitions
	}
	if s.ReviewCount < 0 || s.CorrectCount < 0 || s.CorrectCount > s.ReviewCount {
		return ErrStatsReviewCounts
	}
	if s.LastQuality != 0 && !s.LastQuality.IsValid() {
		return ErrStatsLastQuality
	}
	return nil
}

// ReviewEvent is one append-only review log entry, consumed only by
// external analytics.
type ReviewEvent struct {
	ID        uuid.UUID     `json:"id"`
	CardID    string        `json:"card_id"`
	Quality   ReviewQuality `json:"quality"`
	Timestamp time.Time     `json:"timestamp"`
}

// NewReviewEvent records one review of a card.
func NewReviewEvent(cardID string, quality ReviewQuality, at time.Time) ReviewEvent {
	return ReviewEvent{
		ID:        uuid.New(),
		CardID:    cardID,
		Quality:   quality,
		Timestamp: at,
	}
}
