package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otiyot/gematria/internal/domain"
	"github.com/otiyot/gematria/internal/platform/sqlite"
	"github.com/otiyot/gematria/internal/store"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	db, err := sqlx.Connect("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s, err := sqlite.New(db)
	require.NoError(t, err)
	return s
}

func sampleState(t *testing.T) *domain.ProgressionState {
	t.Helper()
	state, err := domain.NewProgressionState(domain.SystemAtbash)
	require.NoError(t, err)

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	card := domain.NewCardState("cipher-alef", base)
	card.ReviewCount = 1
	card.CorrectCount = 1
	card.Repetitions = 1
	card.IntervalMinutes = 2
	card.LastQuality = domain.QualityGood
	card.NextReview = base.Add(2 * time.Minute)
	state.Tiers[1] = append(state.Tiers[1], card)
	state.ReviewLog = append(state.ReviewLog,
		domain.NewReviewEvent("cipher-alef", domain.QualityGood, base))
	return state
}

func TestSaveAndGet(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()
	state := sampleState(t)

	require.NoError(t, s.Save(ctx, state))

	got, err := s.Get(ctx, domain.SystemAtbash)
	require.NoError(t, err)
	assert.Equal(t, state.System, got.System)
	assert.Equal(t, state.CurrentTier, got.CurrentTier)
	assert.Equal(t, state.Tiers[1], got.Tiers[1])
	assert.Equal(t, state.ReviewLog, got.ReviewLog)
}

func TestGetMissingRecord(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	_, err := s.Get(context.Background(), domain.SystemKatan)
	assert.ErrorIs(t, err, store.ErrProgressionNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestSaveReplacesRecord(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()
	state := sampleState(t)
	require.NoError(t, s.Save(ctx, state))

	state.CurrentTier = 2
	state.Tiers[2] = []domain.CardState{}
	require.NoError(t, s.Save(ctx, state))

	got, err := s.Get(ctx, domain.SystemAtbash)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentTier)
}

func TestSaveRejectsInvalidState(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, s.Save(ctx, nil), store.ErrInvalidEntity)

	bad := sampleState(t)
	bad.CurrentTier = 99
	assert.ErrorIs(t, s.Save(ctx, bad), store.ErrInvalidEntity)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, sampleState(t)))

	require.NoError(t, s.Delete(ctx, domain.SystemAtbash))

	_, err := s.Get(ctx, domain.SystemAtbash)
	assert.ErrorIs(t, err, store.ErrProgressionNotFound)

	events, err := s.ReviewLog(ctx, domain.SystemAtbash)
	require.NoError(t, err)
	assert.Empty(t, events, "delete cascades to the review log")

	assert.ErrorIs(t, s.Delete(ctx, domain.SystemAtbash), store.ErrProgressionNotFound)
}

func TestReviewLogAppendOnly(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()
	state := sampleState(t)
	require.NoError(t, s.Save(ctx, state))

	// Re-saving the same state must not duplicate events.
	require.NoError(t, s.Save(ctx, state))
	events, err := s.ReviewLog(ctx, domain.SystemAtbash)
	require.NoError(t, err)
	require.Len(t, events, 1)

	second := domain.NewReviewEvent("cipher-alef",
		domain.QualityWrong, time.Date(2025, 3, 1, 9, 5, 0, 0, time.UTC))
	state.ReviewLog = append(state.ReviewLog, second)
	require.NoError(t, s.Save(ctx, state))

	events, err = s.ReviewLog(ctx, domain.SystemAtbash)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, state.ReviewLog[0].ID, events[0].ID)
	assert.Equal(t, second.ID, events[1].ID)
	assert.Equal(t, domain.QualityWrong, events[1].Quality)
	assert.True(t, events[1].Timestamp.Equal(second.Timestamp))
}
