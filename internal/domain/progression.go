package domain

import "fmt"

// TierCount returns the fixed number of tiers for a system, or 0 for an
// unknown system.
func (s System) TierCount() int {
	switch s {
	case SystemHechrachi, SystemGadol:
		return 8
	case SystemKatan, SystemSiduri:
		return 4
	case SystemAtbash, SystemAlbam, SystemAvgad:
		return 3
	default:
		return 0
	}
}

// ProgressionState is the full persisted record of a learner's progress in
// one system. It is loaded, mutated in memory, and written back as a single
// value; concurrent writers are unsupported.
type ProgressionState struct {
	System      System              `json:"system"`
	CurrentTier int                 `json:"currentTier"`
	TierCount   int                 `json:"tierCount"`
	Completed   bool                `json:"completed"`
	Tiers       map[int][]CardState `json:"tiers"`
	ReviewLog   []ReviewEvent       `json:"reviewLog"`
}

// NewProgressionState creates a fresh record at tier 1 for the given system.
func NewProgressionState(system System) (*ProgressionState, error) {
	if !system.IsValid() {
		return nil, ErrInvalidSystem
	}
	return &ProgressionState{
		System:      system,
		CurrentTier: 1,
		TierCount:   system.TierCount(),
		Completed:   false,
		Tiers:       make(map[int][]CardState),
	}, nil
}

// Validate checks the structural invariants of a persisted record. The core
// never auto-repairs a malformed record; recovery is the caller's concern.
func (p *ProgressionState) Validate() error {
	if !p.System.IsValid() {
		return NewValidationError("progression state", "system", fmt.Sprintf("unknown system %q", string(p.System)))
	}
	if p.TierCount != p.System.TierCount() {
		return NewValidationError("progression state", "tierCount",
			fmt.Sprintf("system %s requires %d tiers, got %d", p.System, p.System.TierCount(), p.TierCount))
	}
	if p.CurrentTier < 1 || p.CurrentTier > p.TierCount {
		return NewValidationError("progression state", "currentTier",
			fmt.Sprintf("must be between 1 and %d", p.TierCount))
	}
	if p.Completed && p.CurrentTier != p.TierCount {
		return NewValidationError("progression state", "completed", "only the last tier can complete")
	}
	for tier, cards := range p.Tiers {
		if tier < 1 || tier > p.TierCount {
			return NewValidationError("progression state", "tiers",
				fmt.Sprintf("tier index %d out of range", tier))
		}
		for _, card := range cards {
			if err := card.Validate(); err != nil {
				return err
			}
		}
	}
	for _, event := range p.ReviewLog {
		if event.CardID == "" {
			return NewValidationError("progression state", "reviewLog", "event missing card_id")
		}
		if !event.Quality.IsValid() {
			return NewValidationError("progression state", "reviewLog", "event has invalid quality")
		}
	}
	return nil
}

// CurrentCards returns the card states of the active tier. The returned
// slice aliases the state; callers mutate through the controller only.
func (p *ProgressionState) CurrentCards() []CardState {
	return p.Tiers[p.CurrentTier]
}
