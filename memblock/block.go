package memblock

import "fmt"

// Block owns one header of type H and a fixed number of element slots of type E.
//
// A freshly allocated block has nothing constructed. See the package
// documentation for the lifecycle.
type Block[H, E any] struct {
	header  H
	hdrLive bool

	elems []E
	live  []byte

	freed bool
	d     Destructors[H, E]
}

// Allocate returns an uninitialized block with room for capacity elements.
//
// Running out of memory is fatal, as it is for any Go allocation.
func Allocate[H, E any](capacity int, d Destructors[H, E]) (*Block[H, E], error) {
	if capacity < 0 {
		return nil, ErrBadCapacity
	}
	return &Block[H, E]{
		elems: make([]E, capacity),
		live:  make([]byte, liveMaskBytes(capacity)),
		d:     d,
	}, nil
}

// Same reports whether b and other are the same allocation.
func (b *Block[H, E]) Same(other *Block[H, E]) bool {
	return b == other
}

// Deallocated reports whether Deallocate has been called on b.
func (b *Block[H, E]) Deallocated() bool {
	return b.freed
}

func (b *Block[H, E]) checkRange(from, count int) error {
	if from < 0 || count < 0 || from+count > len(b.elems) {
		return fmt.Errorf("%w: [%d, %d)", ErrIndexOutOfRange, from, from+count)
	}
	return nil
}

func (b *Block[H, E]) checkElem(i int) {
	if b.freed {
		panic(ErrDeallocated)
	}
	if i < 0 || i >= len(b.elems) {
		panic(fmt.Errorf("%w: %d", ErrIndexOutOfRange, i))
	}
	if !testLiveLSB0(b.live, i) {
		panic(fmt.Errorf("%w: %d", ErrElemUninitialized, i))
	}
}

func (b *Block[H, E]) checkHeader() {
	if b.freed {
		panic(ErrDeallocated)
	}
	if !b.hdrLive {
		panic(ErrHeaderUninitialized)
	}
}

// InitializeHeader constructs the header from h.
func (b *Block[H, E]) InitializeHeader(h H) error {
	if b.freed {
		return ErrDeallocated
	}
	if b.hdrLive {
		return ErrHeaderInitialized
	}
	b.header = h
	b.hdrLive = true
	return nil
}

// Header returns the constructed header value.
func (b *Block[H, E]) Header() H {
	b.checkHeader()
	return b.header
}

// SetHeader overwrites the constructed header.
func (b *Block[H, E]) SetHeader(h H) {
	b.checkHeader()
	b.header = h
}

// HeaderPtr returns the address of the constructed header. The pointer must
// not be used once the header is deinitialized.
func (b *Block[H, E]) HeaderPtr() *H {
	b.checkHeader()
	return &b.header
}

// DeinitializeHeader runs the header destructor exactly once.
func (b *Block[H, E]) DeinitializeHeader() error {
	if b.freed {
		return ErrDeallocated
	}
	if !b.hdrLive {
		return ErrHeaderUninitialized
	}
	if b.d.Header != nil {
		b.d.Header(&b.header)
	}
	var zero H
	b.header = zero
	b.hdrLive = false
	return nil
}

// InitializeElements constructs len(values) elements starting at slot from.
// No slot in the range may already be constructed.
func (b *Block[H, E]) InitializeElements(from int, values ...E) error {
	if b.freed {
		return ErrDeallocated
	}
	if err := b.checkRange(from, len(values)); err != nil {
		return err
	}
	if i := firstLive(b.live, from, len(values)); i >= 0 {
		return fmt.Errorf("%w: %d", ErrElemInitialized, i)
	}
	for j, v := range values {
		b.elems[from+j] = v
		setLiveLSB0(b.live, from+j)
	}
	return nil
}

// MoveInitializeElements relocates elements [0, count) of src into slots
// [0, count) of b. Ownership moves with the values: the source slots become
// unconstructed and no destructor runs for them.
func (b *Block[H, E]) MoveInitializeElements(src *Block[H, E], count int) error {
	if b.Same(src) {
		return ErrSameBlock
	}
	if b.freed || src.freed {
		return ErrDeallocated
	}
	if err := b.checkRange(0, count); err != nil {
		return err
	}
	if err := src.checkRange(0, count); err != nil {
		return err
	}
	if i := firstDead(src.live, 0, count); i >= 0 {
		return fmt.Errorf("%w: source slot %d", ErrElemUninitialized, i)
	}
	if i := firstLive(b.live, 0, count); i >= 0 {
		return fmt.Errorf("%w: %d", ErrElemInitialized, i)
	}

	copy(b.elems[:count], src.elems[:count])
	clear(src.elems[:count])
	for i := 0; i < count; i++ {
		setLiveLSB0(b.live, i)
		clearLiveLSB0(src.live, i)
	}
	return nil
}

// At returns the constructed element in slot i.
func (b *Block[H, E]) At(i int) E {
	b.checkElem(i)
	return b.elems[i]
}

// Set overwrites the constructed element in slot i.
func (b *Block[H, E]) Set(i int, e E) {
	b.checkElem(i)
	b.elems[i] = e
}

// Ptr returns the address of the constructed element in slot i. The pointer
// must not be used once the element is deinitialized or moved.
func (b *Block[H, E]) Ptr(i int) *E {
	b.checkElem(i)
	return &b.elems[i]
}

// DeinitializeElements runs the element destructor exactly once for each of
// the slots [0, count), all of which must be constructed.
func (b *Block[H, E]) DeinitializeElements(count int) error {
	if b.freed {
		return ErrDeallocated
	}
	if err := b.checkRange(0, count); err != nil {
		return err
	}
	if i := firstDead(b.live, 0, count); i >= 0 {
		return fmt.Errorf("%w: %d", ErrElemUninitialized, i)
	}
	for i := 0; i < count; i++ {
		if b.d.Element != nil {
			b.d.Element(&b.elems[i])
		}
		clearLiveLSB0(b.live, i)
	}
	clear(b.elems[:count])
	return nil
}

// Deallocate releases the whole block in one step. It does not consult which
// slots are still constructed and runs no destructors.
func (b *Block[H, E]) Deallocate() error {
	if b.freed {
		return ErrDeallocated
	}
	var zero H
	b.header = zero
	b.hdrLive = false
	b.elems = nil
	b.live = nil
	b.freed = true
	return nil
}
