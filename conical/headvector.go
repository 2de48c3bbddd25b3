package conical

import (
	"fmt"

	"github.com/forestrie/go-conical/memblock"
)

type headBlock = memblock.Block[struct{}, LinkRecord]

// HeadVector is the sentinel row of a list: one LinkRecord per active level,
// stored in the element region of a block whose header is never used.
//
// Any method that can reallocate (Grow) replaces the backing block. Nothing
// outside the vector may hold on to the block across such a call.
type HeadVector struct {
	count    int
	capacity int

	// constructed is the number of leading slots holding a LinkRecord. It is
	// at least count, and stays above it after a Shrink so that a later Grow
	// overwrites rather than reconstructs those slots.
	constructed int

	storage *headBlock
}

// NewHeadVector returns an empty vector with room for capacity levels.
func NewHeadVector(capacity int) (*HeadVector, error) {
	if capacity < 0 {
		return nil, ErrBadCapacity
	}
	storage, err := memblock.Allocate(capacity, memblock.Destructors[struct{}, LinkRecord]{})
	if err != nil {
		return nil, err
	}
	return &HeadVector{capacity: capacity, storage: storage}, nil
}

// Count returns the number of active levels.
func (h *HeadVector) Count() int { return h.count }

// Capacity returns the number of allocated level slots.
func (h *HeadVector) Capacity() int { return h.capacity }

func (h *HeadVector) checkLevel(level int) {
	if h.storage == nil {
		panic(ErrReleased)
	}
	if level < 0 || level >= h.count {
		panic(fmt.Errorf("%w: level %d, count %d", ErrLevelOutOfRange, level, h.count))
	}
}

// At returns the sentinel LinkRecord for level.
func (h *HeadVector) At(level int) LinkRecord {
	h.checkLevel(level)
	return h.storage.At(level)
}

// Set overwrites the sentinel LinkRecord for level.
func (h *HeadVector) Set(level int, rec LinkRecord) {
	h.checkLevel(level)
	h.storage.Set(level, rec)
}

// Grow activates levels [Count(), height). Each new level becomes a singleton
// ring holding node: both the sentinel slot and node's own slot at that level
// are set to point at node.
//
// If height exceeds the capacity the storage is reallocated, following the
// GrowCapacity sequence, and the existing records are moved across.
func (h *HeadVector) Grow(height int, node Ref, links LinkSetter) error {
	if h.storage == nil {
		return ErrReleased
	}
	if height <= h.count {
		return fmt.Errorf("%w: height %d, count %d", ErrGrowHeight, height, h.count)
	}

	if height > h.capacity {
		if err := h.reallocate(CapacityFor(h.capacity, height)); err != nil {
			return err
		}
	}

	rec := selfLinked(node)
	for level := h.count; level < height; level++ {
		if level < h.constructed {
			h.storage.Set(level, rec)
		} else {
			if err := h.storage.InitializeElements(level, rec); err != nil {
				return err
			}
			h.constructed++
		}
		links.Set(level, rec)
	}
	h.count = height
	return nil
}

func (h *HeadVector) reallocate(capacity int) error {
	next, err := memblock.Allocate(capacity, memblock.Destructors[struct{}, LinkRecord]{})
	if err != nil {
		return err
	}
	if err := next.MoveInitializeElements(h.storage, h.constructed); err != nil {
		return err
	}
	if err := h.storage.Deallocate(); err != nil {
		return err
	}
	h.storage = next
	h.capacity = capacity
	return nil
}

// Shrink lowers the active level count to height. The storage is left as is.
func (h *HeadVector) Shrink(height int) error {
	if h.storage == nil {
		return ErrReleased
	}
	if height < 0 || height >= h.count {
		return fmt.Errorf("%w: height %d, count %d", ErrShrinkHeight, height, h.count)
	}
	h.count = height
	return nil
}

// Release destructs every constructed slot and frees the storage.
func (h *HeadVector) Release() error {
	if h.storage == nil {
		return ErrReleased
	}
	if err := h.storage.DeinitializeElements(h.constructed); err != nil {
		return err
	}
	if err := h.storage.Deallocate(); err != nil {
		return err
	}
	h.storage = nil
	h.count = 0
	h.constructed = 0
	return nil
}
