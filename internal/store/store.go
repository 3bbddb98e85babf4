// Package store defines the persistence interfaces and error taxonomy for
// progression records. Implementations live under internal/platform.
package store

import (
	"context"

	"github.com/otiyot/gematria/internal/domain"
)

// ProgressionStore persists one progression record per gematria system.
// The model is single-user and last-write-wins: Save replaces the whole
// record.
type ProgressionStore interface {
	// Get retrieves the record for a system.
	// Returns ErrProgressionNotFound if none has been saved yet.
	Get(ctx context.Context, system domain.System) (*domain.ProgressionState, error)

	// Save writes the record for its system, creating or replacing it,
	// and appends any review events not yet persisted.
	Save(ctx context.Context, state *domain.ProgressionState) error

	// Delete removes a system's record and its review log.
	// Returns ErrProgressionNotFound if no record exists.
	Delete(ctx context.Context, system domain.System) error

	// ReviewLog returns the persisted review events for a system in
	// insertion order. An empty log is not an error.
	ReviewLog(ctx context.Context, system domain.System) ([]domain.ReviewEvent, error)
}
