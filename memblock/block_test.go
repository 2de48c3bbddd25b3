package memblock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requirePanicsIs fails unless fn panics with an error matching target.
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

func TestBlockLifecycle(t *testing.T) {
	var hdrDestroyed, elemDestroyed int
	d := Destructors[string, int]{
		Header:  func(*string) { hdrDestroyed++ },
		Element: func(*int) { elemDestroyed++ },
	}

	b, err := Allocate(4, d)
	require.NoError(t, err)

	require.NoError(t, b.InitializeHeader("head"))
	require.Equal(t, "head", b.Header())
	b.SetHeader("renamed")
	require.Equal(t, "renamed", b.Header())

	require.NoError(t, b.InitializeElements(0, 10, 11, 12, 13))
	for i := 0; i < 4; i++ {
		require.Equal(t, 10+i, b.At(i))
	}
	b.Set(2, 42)
	require.Equal(t, 42, b.At(2))
	*b.Ptr(3) = 7
	require.Equal(t, 7, b.At(3))

	require.NoError(t, b.DeinitializeElements(4))
	require.NoError(t, b.DeinitializeHeader())
	require.Equal(t, 1, hdrDestroyed)
	require.Equal(t, 4, elemDestroyed)

	require.NoError(t, b.Deallocate())
	require.True(t, b.Deallocated())
}

func TestBlockRejectsDoubleConstruction(t *testing.T) {
	b, err := Allocate(2, Destructors[int, int]{})
	require.NoError(t, err)

	require.NoError(t, b.InitializeHeader(1))
	require.ErrorIs(t, b.InitializeHeader(2), ErrHeaderInitialized)
	require.Equal(t, 1, b.Header())

	require.NoError(t, b.InitializeElements(1, 5))
	require.ErrorIs(t, b.InitializeElements(0, 1, 2), ErrElemInitialized)

	// Slot 0 was untouched by the failed call.
	requirePanicsIs(t, ErrElemUninitialized, func() { b.At(0) })
	require.NoError(t, b.InitializeElements(0, 4))
	require.Equal(t, 4, b.At(0))
}

func TestBlockRejectsDoubleDestruction(t *testing.T) {
	destroyed := 0
	b, err := Allocate(1, Destructors[int, int]{Element: func(*int) { destroyed++ }})
	require.NoError(t, err)

	require.ErrorIs(t, b.DeinitializeHeader(), ErrHeaderUninitialized)
	require.ErrorIs(t, b.DeinitializeElements(1), ErrElemUninitialized)

	require.NoError(t, b.InitializeElements(0, 3))
	require.NoError(t, b.DeinitializeElements(1))
	require.ErrorIs(t, b.DeinitializeElements(1), ErrElemUninitialized)
	require.Equal(t, 1, destroyed)
}

func TestBlockAccessorsTrapMisuse(t *testing.T) {
	b, err := Allocate(2, Destructors[int, int]{})
	require.NoError(t, err)

	requirePanicsIs(t, ErrHeaderUninitialized, func() { b.Header() })
	requirePanicsIs(t, ErrElemUninitialized, func() { b.At(0) })
	requirePanicsIs(t, ErrIndexOutOfRange, func() { b.At(2) })
	requirePanicsIs(t, ErrIndexOutOfRange, func() { b.Set(-1, 0) })
	require.ErrorIs(t, b.InitializeElements(1, 1, 2), ErrIndexOutOfRange)

	require.NoError(t, b.InitializeHeader(9))
	require.NoError(t, b.Deallocate())

	requirePanicsIs(t, ErrDeallocated, func() { b.Header() })
	requirePanicsIs(t, ErrDeallocated, func() { b.Ptr(0) })
	require.ErrorIs(t, b.Deallocate(), ErrDeallocated)
	require.ErrorIs(t, b.InitializeHeader(1), ErrDeallocated)
}

func TestBlockDeallocateIgnoresConstructedCount(t *testing.T) {
	destroyed := 0
	b, err := Allocate(8, Destructors[int, int]{Element: func(*int) { destroyed++ }})
	require.NoError(t, err)

	require.NoError(t, b.InitializeElements(0, 1, 2, 3))
	require.NoError(t, b.Deallocate())
	require.Equal(t, 0, destroyed)
}

func TestBlockMoveInitializeElements(t *testing.T) {
	type link struct{ prev, next uint32 }

	src, err := Allocate(2, Destructors[struct{}, link]{})
	require.NoError(t, err)
	require.NoError(t, src.InitializeElements(0, link{1, 2}, link{3, 4}))

	dst, err := Allocate(5, Destructors[struct{}, link]{})
	require.NoError(t, err)
	require.NoError(t, dst.MoveInitializeElements(src, 2))

	require.Equal(t, link{1, 2}, dst.At(0))
	require.Equal(t, link{3, 4}, dst.At(1))
	requirePanicsIs(t, ErrElemUninitialized, func() { dst.At(2) })

	// Source slots no longer hold constructed values.
	requirePanicsIs(t, ErrElemUninitialized, func() { src.At(0) })
	require.ErrorIs(t, dst.MoveInitializeElements(src, 1), ErrElemUninitialized)

	require.ErrorIs(t, dst.MoveInitializeElements(dst, 1), ErrSameBlock)
	require.ErrorIs(t, dst.MoveInitializeElements(src, 3), ErrIndexOutOfRange)

	require.NoError(t, src.Deallocate())
	require.ErrorIs(t, dst.MoveInitializeElements(src, 0), ErrDeallocated)
}

func TestBlockIdentity(t *testing.T) {
	a, err := Allocate(1, Destructors[int, int]{})
	require.NoError(t, err)
	b, err := Allocate(1, Destructors[int, int]{})
	require.NoError(t, err)

	require.NoError(t, a.InitializeHeader(5))
	require.NoError(t, b.InitializeHeader(5))

	require.True(t, a.Same(a))
	require.False(t, a.Same(b))
}

func TestAllocateRejectsNegativeCapacity(t *testing.T) {
	_, err := Allocate(-1, Destructors[int, int]{})
	require.ErrorIs(t, err, ErrBadCapacity)

	b, err := Allocate(0, Destructors[int, int]{})
	require.NoError(t, err)
	require.NoError(t, b.InitializeElements(0))
	require.NoError(t, b.Deallocate())
}
