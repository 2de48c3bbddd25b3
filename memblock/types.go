package memblock

import "errors"

var (
	ErrBadCapacity         = errors.New("memblock: capacity must be >= 0")
	ErrDeallocated         = errors.New("memblock: block has been deallocated")
	ErrHeaderInitialized   = errors.New("memblock: header already initialized")
	ErrHeaderUninitialized = errors.New("memblock: header not initialized")
	ErrElemInitialized     = errors.New("memblock: element already initialized")
	ErrElemUninitialized   = errors.New("memblock: element not initialized")
	ErrIndexOutOfRange     = errors.New("memblock: element index out of range")
	ErrSameBlock           = errors.New("memblock: move source and destination are the same block")
)

// Destructors are run, at most once per constructed value, by the
// Deinitialize methods. Either field may be nil.
type Destructors[H, E any] struct {
	Header  func(*H)
	Element func(*E)
}
