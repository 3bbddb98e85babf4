// Package progression owns the tier state machine for one gematria system:
// populating tiers from the catalog, routing reviews through the scheduler,
// and advancing on mastery until the system completes.
package progression

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/otiyot/gematria/internal/catalog"
	"github.com/otiyot/gematria/internal/domain"
	"github.com/otiyot/gematria/internal/domain/srs"
	"github.com/otiyot/gematria/internal/selection"
)

// ErrCardNotFound is returned when a review names a card that is not in
// the active tier.
var ErrCardNotFound = fmt.Errorf("card not found in active tier")

// Controller drives one system's progression. It is not safe for
// concurrent use; a drill session is single-threaded by design.
type Controller struct {
	letters []domain.LetterDefinition
	state   *domain.ProgressionState
	srs     srs.Service
	rng     *rand.Rand
	now     func() time.Time
	logger  *slog.Logger

	// specOrder holds the per-tier presentation order for new cards,
	// shuffled once per session so fresh sessions differ.
	specOrder map[int][]domain.CardSpec
}

// Option configures a Controller.
type Option func(*Controller)

// WithRand injects the random source used to shuffle new-card order.
// Tests pass a seeded source; production uses a time-seeded one.
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) { c.rng = rng }
}

// WithClock injects the time source used for due checks and scheduling.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithScheduler injects a scheduler with non-default parameters.
func WithScheduler(service srs.Service) Option {
	return func(c *Controller) { c.srs = service }
}

// WithLogger injects the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) { c.logger = logger.With("component", "progression") }
}

// New creates a controller over a fresh progression at tier 1.
func New(letters []domain.LetterDefinition, system domain.System, opts ...Option) (*Controller, error) {
	state, err := domain.NewProgressionState(system)
	if err != nil {
		return nil, err
	}
	return newController(letters, state, opts...)
}

// Load creates a controller over a persisted progression record. The
// record is validated and returned errors wrap domain.ErrValidation; the
// caller decides whether to fall back to a fresh state.
func Load(letters []domain.LetterDefinition, state *domain.ProgressionState, opts ...Option) (*Controller, error) {
	if state == nil {
		return nil, domain.NewValidationError("progression state", "", "record is nil")
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}
	return newController(letters, state, opts...)
}

func newController(letters []domain.LetterDefinition, state *domain.ProgressionState, opts ...Option) (*Controller, error) {
	c := &Controller{
		letters:   letters,
		state:     state,
		srs:       srs.NewDefaultService(),
		now:       time.Now,
		logger:    slog.Default().With("component", "progression"),
		specOrder: make(map[int][]domain.CardSpec),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(NewSeed()))
	}
	if err := c.ensureTier(); err != nil {
		return nil, err
	}
	return c, nil
}

// State exposes the underlying record for persistence after mutations.
func (c *Controller) State() *domain.ProgressionState {
	return c.state
}

// ensureTier populates card states for the active tier's specs and fixes
// this session's presentation order with a fresh shuffle.
func (c *Controller) ensureTier() error {
	tier := c.state.CurrentTier
	if _, ok := c.specOrder[tier]; ok {
		return nil
	}

	level, err := catalog.Build(c.letters, c.state.System, tier)
	if err != nil {
		return err
	}

	order := make([]domain.CardSpec, len(level.Specs))
	copy(order, level.Specs)
	c.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	c.specOrder[tier] = order

	existing := make(map[string]bool, len(c.state.Tiers[tier]))
	for _, card := range c.state.Tiers[tier] {
		existing[card.CardID] = true
	}

	// Fresh card states are appended in the shuffled order. All of them
	// become overdue together once the clock moves, and the overdue
	// tie-break keeps the first encountered, so introduction must follow
	// the session order rather than the canonical catalog order.
	now := c.now()
	added := 0
	for _, spec := range order {
		if !existing[spec.ID] {
			c.state.Tiers[tier] = append(c.state.Tiers[tier], domain.NewCardState(spec.ID, now))
			added++
		}
	}

	c.logger.Debug("tier populated",
		"system", c.state.System,
		"tier", tier,
		"specs", len(level.Specs),
		"new_cards", added)
	return nil
}

// TierSpecs returns this session's presentation order for the active tier.
func (c *Controller) TierSpecs() []domain.CardSpec {
	return c.specOrder[c.state.CurrentTier]
}

// SpecByID finds a spec of the active tier by card ID.
func (c *Controller) SpecByID(cardID string) (domain.CardSpec, bool) {
	for _, spec := range c.specOrder[c.state.CurrentTier] {
		if spec.ID == cardID {
			return spec, true
		}
	}
	return domain.CardSpec{}, false
}

// NextCard evaluates the selection policy against the active tier at the
// current wall-clock time.
func (c *Controller) NextCard() selection.Result {
	return selection.Next(c.state.CurrentCards(), c.TierSpecs(), c.now())
}

// SubmitReview applies one review to a card of the active tier, appends
// the review log entry, and returns the updated card state.
func (c *Controller) SubmitReview(cardID string, quality domain.ReviewQuality) (domain.CardState, error) {
	if !quality.IsValid() {
		return domain.CardState{}, domain.ErrInvalidQuality
	}

	tier := c.state.CurrentTier
	cards := c.state.Tiers[tier]
	idx := -1
	for i := range cards {
		if cards[i].CardID == cardID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.CardState{}, fmt.Errorf("%w: %s", ErrCardNotFound, cardID)
	}

	now := c.now()
	updated, err := c.srs.ReviewCard(cards[idx], quality, now)
	if err != nil {
		return domain.CardState{}, err
	}
	cards[idx] = updated
	c.state.ReviewLog = append(c.state.ReviewLog, domain.NewReviewEvent(cardID, quality, now))

	c.logger.Debug("card reviewed",
		"system", c.state.System,
		"tier", tier,
		"card", cardID,
		"quality", int(quality),
		"interval_minutes", updated.IntervalMinutes)
	return updated, nil
}

// Mastered reports whether the active tier currently meets the mastery
// threshold. Always false for an unpopulated tier.
func (c *Controller) Mastered() bool {
	return selection.Mastered(c.state.CurrentCards())
}

// TryAdvance re-evaluates mastery and advances the state machine: to the
// next tier if one remains, otherwise to the completed state. Completion
// is absorbing; once completed, calls change nothing. The return value
// reports whether a new tier was entered.
func (c *Controller) TryAdvance() (bool, error) {
	if c.state.Completed {
		return false, nil
	}
	if !c.Mastered() {
		return false, nil
	}

	if c.state.CurrentTier < c.state.TierCount {
		c.state.CurrentTier++
		if err := c.ensureTier(); err != nil {
			c.state.CurrentTier--
			return false, err
		}
		c.logger.Info("tier advanced",
			"system", c.state.System,
			"tier", c.state.CurrentTier)
		return true, nil
	}

	c.state.Completed = true
	c.logger.Info("system completed", "system", c.state.System)
	return false, nil
}

// Completed reports whether the whole system is finished.
func (c *Controller) Completed() bool {
	return c.state.Completed
}

// Reset discards all progress and returns the controller to tier 1 with
// an empty card-state map.
func (c *Controller) Reset() error {
	fresh, err := domain.NewProgressionState(c.state.System)
	if err != nil {
		return err
	}
	c.state = fresh
	c.specOrder = make(map[int][]domain.CardSpec)
	c.logger.Info("progression reset", "system", c.state.System)
	return c.ensureTier()
}
