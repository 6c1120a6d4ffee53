package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestStoreCreateAndGet(t *testing.T) {
	store := NewStore(0)

	s, err := store.Create(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, 1, store.Len())

	got, err := store.Get(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got)

	other, err := store.Create(nil)
	require.NoError(t, err)
	assert.NotEqual(t, s.ID(), other.ID())
	assert.Equal(t, 2, store.Len())
}

func TestStoreGetMissing(t *testing.T) {
	store := NewStore(0)

	_, err := store.Get("nope")
	require.ErrorIs(t, err, errors.ErrGameNotFound)

	var moveErr *errors.MoveError
	require.True(t, errors.As(err, &moveErr))
	assert.Equal(t, "nope", moveErr.GameID)
}

func TestStoreLimit(t *testing.T) {
	store := NewStore(1)

	s, err := store.Create(nil)
	require.NoError(t, err)

	_, err = store.Create(nil)
	assert.ErrorIs(t, err, errors.ErrStoreFull)

	assert.True(t, store.Delete(s.ID()))
	_, err = store.Create(nil)
	assert.NoError(t, err)
}

func TestStoreDelete(t *testing.T) {
	store := NewStore(0)
	s, err := store.Create(nil)
	require.NoError(t, err)

	assert.True(t, store.Delete(s.ID()))
	assert.False(t, store.Delete(s.ID()))
	assert.Equal(t, 0, store.Len())

	_, err = store.Get(s.ID())
	assert.ErrorIs(t, err, errors.ErrGameNotFound)
}
