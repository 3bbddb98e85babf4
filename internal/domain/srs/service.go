package srs

import (
	"time"

	"github.com/otiyot/gematria/internal/domain"
)

// Service defines the scheduler operations the progression layer uses.
type Service interface {
	// ReviewCard applies one review to a card's scheduling state and
	// returns the updated state. The input state is not modified.
	// Returns domain.ErrInvalidQuality for ratings outside {1,3,4,5}.
	ReviewCard(
		state domain.CardState,
		quality domain.ReviewQuality,
		now time.Time,
	) (domain.CardState, error)
}

type defaultService struct {
	params *Params
}

// NewDefaultService creates a scheduler with the default parameters.
func NewDefaultService() Service {
	return &defaultService{params: NewDefaultParams()}
}

// NewServiceWithParams creates a scheduler with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{params: params}
}

func (s *defaultService) ReviewCard(
	state domain.CardState,
	quality domain.ReviewQuality,
	now time.Time,
) (domain.CardState, error) {
	if !quality.IsValid() {
		return domain.CardState{}, domain.ErrInvalidQuality
	}
	return nextState(state, quality, now, s.params), nil
}
