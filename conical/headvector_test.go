package conical

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// linkRow is a plain LinkSetter standing in for a node's link array.
type linkRow []LinkRecord

func (r linkRow) Set(level int, rec LinkRecord) { r[level] = rec }

func requirePanicsIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value is not an error: %v", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}

func TestHeadVectorGrowLinksSingletons(t *testing.T) {
	h, err := NewHeadVector(DefaultHeadCapacity)
	require.NoError(t, err)
	require.Equal(t, 0, h.Count())
	require.Equal(t, 8, h.Capacity())

	row := make(linkRow, 3)
	require.NoError(t, h.Grow(3, 5, row))
	require.Equal(t, 3, h.Count())
	require.Equal(t, 8, h.Capacity())
	for level := 0; level < 3; level++ {
		require.Equal(t, LinkRecord{Prev: 5, Next: 5}, h.At(level))
		require.Equal(t, LinkRecord{Prev: 5, Next: 5}, row[level])
	}

	require.ErrorIs(t, h.Grow(3, 6, row), ErrGrowHeight)
	require.ErrorIs(t, h.Grow(2, 6, row), ErrGrowHeight)
	requirePanicsIs(t, ErrLevelOutOfRange, func() { h.At(3) })
	requirePanicsIs(t, ErrLevelOutOfRange, func() { h.Set(-1, LinkRecord{}) })
}

func TestHeadVectorReallocationPreservesRecords(t *testing.T) {
	h, err := NewHeadVector(2)
	require.NoError(t, err)

	require.NoError(t, h.Grow(2, 0, make(linkRow, 2)))
	h.Set(0, LinkRecord{Prev: 10, Next: 11})
	h.Set(1, LinkRecord{Prev: 20, Next: 21})

	row := make(linkRow, 30)
	require.NoError(t, h.Grow(30, 7, row))
	require.Equal(t, 30, h.Count())
	require.Equal(t, 44, h.Capacity())

	require.Equal(t, LinkRecord{Prev: 10, Next: 11}, h.At(0))
	require.Equal(t, LinkRecord{Prev: 20, Next: 21}, h.At(1))
	for level := 2; level < 30; level++ {
		require.Equal(t, LinkRecord{Prev: 7, Next: 7}, h.At(level))
		require.Equal(t, LinkRecord{Prev: 7, Next: 7}, row[level])
	}
	// Levels that were already active are not relinked.
	require.Equal(t, LinkRecord{}, row[0])
	require.Equal(t, LinkRecord{}, row[1])
}

func TestHeadVectorGrowFromZeroCapacity(t *testing.T) {
	h, err := NewHeadVector(0)
	require.NoError(t, err)
	require.NoError(t, h.Grow(1, 3, make(linkRow, 1)))
	require.Equal(t, 8, h.Capacity())
	require.Equal(t, LinkRecord{Prev: 3, Next: 3}, h.At(0))
}

func TestHeadVectorShrinkKeepsStorage(t *testing.T) {
	h, err := NewHeadVector(4)
	require.NoError(t, err)
	require.NoError(t, h.Grow(3, 1, make(linkRow, 3)))
	h.Set(0, LinkRecord{Prev: 8, Next: 9})

	require.ErrorIs(t, h.Shrink(3), ErrShrinkHeight)
	require.ErrorIs(t, h.Shrink(-1), ErrShrinkHeight)
	require.NoError(t, h.Shrink(1))
	require.Equal(t, 1, h.Count())
	require.Equal(t, 4, h.Capacity())
	requirePanicsIs(t, ErrLevelOutOfRange, func() { h.At(1) })

	// Regrowing reuses the slots that were already constructed.
	row := make(linkRow, 4)
	require.NoError(t, h.Grow(4, 2, row))
	require.Equal(t, LinkRecord{Prev: 8, Next: 9}, h.At(0))
	for level := 1; level < 4; level++ {
		require.Equal(t, LinkRecord{Prev: 2, Next: 2}, h.At(level))
	}
	require.Equal(t, 4, h.Capacity())
}

func TestHeadVectorRelease(t *testing.T) {
	h, err := NewHeadVector(4)
	require.NoError(t, err)
	require.NoError(t, h.Grow(2, 0, make(linkRow, 2)))

	require.NoError(t, h.Release())
	require.Equal(t, 0, h.Count())
	requirePanicsIs(t, ErrReleased, func() { h.At(0) })
	require.ErrorIs(t, h.Grow(1, 0, make(linkRow, 1)), ErrReleased)
	require.ErrorIs(t, h.Shrink(0), ErrReleased)
	require.ErrorIs(t, h.Release(), ErrReleased)
}

func TestNewHeadVectorRejectsNegativeCapacity(t *testing.T) {
	_, err := NewHeadVector(-1)
	require.ErrorIs(t, err, ErrBadCapacity)
}
