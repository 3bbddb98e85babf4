package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/otiyot/gematria/internal/store"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, store.IsNotFoundError(store.ErrNotFound))
	assert.True(t, store.IsNotFoundError(store.ErrProgressionNotFound))
	assert.True(t, store.IsNotFoundError(fmt.Errorf("loading: %w", store.ErrProgressionNotFound)))
	assert.False(t, store.IsNotFoundError(store.ErrInvalidEntity))
	assert.False(t, store.IsNotFoundError(errors.New("something else")))
	assert.False(t, store.IsNotFoundError(nil))
}

func TestStoreErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	err := store.NewStoreError("progression", "save", "write failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "save operation on progression failed")
	assert.Contains(t, err.Error(), "disk full")

	var storeErr *store.StoreError
	assert.ErrorAs(t, fmt.Errorf("outer: %w", err), &storeErr)
	assert.Equal(t, "save", storeErr.Operation)
}

func TestStoreErrorWithoutCause(t *testing.T) {
	t.Parallel()

	err := store.NewStoreError("progression", "get", "no rows", nil)
	assert.Equal(t, "get operation on progression failed: no rows", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
