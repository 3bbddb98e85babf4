// Package selection decides which card a drill session presents next and
// evaluates tier mastery. Due status is computed lazily against the clock
// passed in; nothing here schedules in the background.
package selection

import (
	"time"

	"github.com/otiyot/gematria/internal/domain"
)

// Mastery thresholds for tier advancement.
const (
	MasteryMinReviews = 3
	MasteryAccuracy   = 0.8
)

// ResultType says what the caller should do next.
type ResultType string

// Possible selection outcomes.
const (
	// ResultCard presents the selected card.
	ResultCard ResultType = "card"
	// ResultAdvance signals the tier is mastered and progression may move on.
	ResultAdvance ResultType = "advance"
	// ResultReview means there is nothing to present (empty tier).
	ResultReview ResultType = "review"
)

// Result is the outcome of one selection call. Card and Spec are nil
// unless Type is ResultCard; Spec may still be nil if the card's spec is
// missing from the supplied list.
type Result struct {
	Type ResultType
	Card *domain.CardState
	Spec *domain.CardSpec
}

// Next picks what to present, in strict priority order:
//
//  1. the most overdue card, if any card is past due
//  2. the first never-reviewed card in the supplied spec order
//  3. the advance signal, if the tier is mastered
//  4. the card due soonest
//  5. nothing, when there are no cards at all
//
// The spec ordering is the caller's: new cards are introduced in exactly
// the order specs arrive, so the caller shuffles them once per fresh tier.
func Next(cards []domain.CardState, specs []domain.CardSpec, now time.Time) Result {
	specByID := make(map[string]*domain.CardSpec, len(specs))
	for i := range specs {
		specByID[specs[i].ID] = &specs[i]
	}

	if overdue := mostOverdue(cards, now); overdue != nil {
		return Result{Type: ResultCard, Card: overdue, Spec: specByID[overdue.CardID]}
	}

	if card, spec := firstUnreviewed(cards, specs); card != nil {
		return Result{Type: ResultCard, Card: card, Spec: spec}
	}

	if Mastered(cards) {
		return Result{Type: ResultAdvance}
	}

	if soonest := soonestDue(cards, now); soonest != nil {
		return Result{Type: ResultCard, Card: soonest, Spec: specByID[soonest.CardID]}
	}

	return Result{Type: ResultReview}
}

// mostOverdue returns the card with the largest positive overdue duration,
// or nil if nothing is past due. Ties keep the first card encountered.
func mostOverdue(cards []domain.CardState, now time.Time) *domain.CardState {
	var best *domain.CardState
	var bestOverdue time.Duration
	for i := range cards {
		overdue := now.Sub(cards[i].NextReview)
		if overdue <= 0 {
			continue
		}
		if best == nil || overdue > bestOverdue {
			best = &cards[i]
			bestOverdue = overdue
		}
	}
	return best
}

// firstUnreviewed scans specs in order and returns the first card that has
// never been reviewed.
func firstUnreviewed(cards []domain.CardState, specs []domain.CardSpec) (*domain.CardState, *domain.CardSpec) {
	cardByID := make(map[string]*domain.CardState, len(cards))
	for i := range cards {
		cardByID[cards[i].CardID] = &cards[i]
	}
	for i := range specs {
		card := cardByID[specs[i].ID]
		if card != nil && card.ReviewCount == 0 {
			return card, &specs[i]
		}
	}
	return nil, nil
}

// soonestDue returns the card with the largest overdue value across all
// cards, i.e. the one whose review comes up first. Ties keep the first.
func soonestDue(cards []domain.CardState, now time.Time) *domain.CardState {
	var best *domain.CardState
	var bestOverdue time.Duration
	for i := range cards {
		overdue := now.Sub(cards[i].NextReview)
		if best == nil || overdue > bestOverdue {
			best = &cards[i]
			bestOverdue = overdue
		}
	}
	return best
}

// Accuracy returns the aggregate correct/review ratio across cards, or 0
// when nothing has been reviewed.
func Accuracy(cards []domain.CardState) float64 {
	totalReviews, totalCorrect := 0, 0
	for _, card := range cards {
		totalReviews += card.ReviewCount
		totalCorrect += card.CorrectCount
	}
	if totalReviews == 0 {
		return 0
	}
	return float64(totalCorrect) / float64(totalReviews)
}

// Mastered reports whether a tier's cards meet the advancement threshold:
// every card reviewed at least MasteryMinReviews times and aggregate
// accuracy at or above MasteryAccuracy. An empty tier is never mastered.
func Mastered(cards []domain.CardState) bool {
	if len(cards) == 0 {
		return false
	}
	for _, card := range cards {
		if card.ReviewCount < MasteryMinReviews {
			return false
		}
	}
	return Accuracy(cards) >= MasteryAccuracy
}
