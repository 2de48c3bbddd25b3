package conical

import (
	"cmp"
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-conical/memblock"
)

type nodeBlock[E any] = memblock.Block[E, LinkRecord]

// arenaNode is a node block and its height. Blocks do not record their own
// capacity, so the arena keeps it.
type arenaNode[E any] struct {
	block  *nodeBlock[E]
	height int
}

// List is a circular multi-level ordered list. It is not safe for concurrent
// use.
type List[E any] struct {
	compare func(a, b E) int

	head  *HeadVector
	nodes []arenaNode[E]

	destructors memblock.Destructors[E, LinkRecord]
	log         logger.Logger

	deinitialized bool
}

// New returns an empty list ordered by cmp.Compare.
func New[E cmp.Ordered](opts ...Option) (*List[E], error) {
	return NewFunc[E](cmp.Compare[E], opts...)
}

// NewFunc returns an empty list ordered by compare, which must define a total
// order and return a negative, zero or positive result as for cmp.Compare.
func NewFunc[E any](compare func(a, b E) int, opts ...Option) (*List[E], error) {
	o := Options{HeadCapacity: DefaultHeadCapacity}
	var po payloadOptions[E]
	for _, opt := range opts {
		opt(&o)
		opt(&po)
	}

	head, err := NewHeadVector(o.HeadCapacity)
	if err != nil {
		return nil, err
	}

	l := &List[E]{
		compare: compare,
		head:    head,
		log:     o.Log,
	}
	if po.destroy != nil {
		destroy := po.destroy
		l.destructors.Header = func(v *E) { destroy(*v) }
	}
	return l, nil
}

func (l *List[E]) debugf(format string, args ...any) {
	if l.log != nil {
		l.log.Debugf(format, args...)
	}
}

// Len returns the number of inserted elements.
func (l *List[E]) Len() int { return len(l.nodes) }

// Levels returns the number of active levels, which is the greatest height
// inserted so far.
func (l *List[E]) Levels() int {
	if l.deinitialized {
		return 0
	}
	return l.head.Count()
}

func (l *List[E]) value(ref Ref) E {
	return l.nodes[ref].block.Header()
}

func (l *List[E]) link(ref Ref, level int) LinkRecord {
	return l.nodes[ref].block.At(level)
}

func (l *List[E]) linkPtr(ref Ref, level int) *LinkRecord {
	return l.nodes[ref].block.Ptr(level)
}

func (l *List[E]) setLink(ref Ref, level int, rec LinkRecord) {
	l.nodes[ref].block.Set(level, rec)
}

// Insert adds value as a node participating in levels [0, height).
//
// Among equal values, each new insertion is placed after the existing ones
// on every level it joins.
func (l *List[E]) Insert(value E, height int) error {
	if l.deinitialized {
		return ErrDeinitialized
	}
	if height <= 0 {
		return fmt.Errorf("%w: %d", ErrBadHeight, height)
	}
	if uint64(len(l.nodes)) >= uint64(NoRef) {
		return ErrArenaFull
	}

	ref, block, err := l.allocNode(value, height)
	if err != nil {
		return err
	}

	top := l.head.Count()
	if height > top {
		capacity := l.head.Capacity()
		if err := l.head.Grow(height, ref, block); err != nil {
			return err
		}
		if l.head.Capacity() != capacity {
			l.debugf("conical: head vector reallocated: capacity %d -> %d", capacity, l.head.Capacity())
		}
		l.debugf("conical: levels activated: %d -> %d", top, height)
	}
	if top == 0 {
		return nil
	}

	c := cursor[E]{l: l, level: top - 1, at: NoRef}
	for {
		c.seekAfter(value)
		if c.level < height {
			c.splice(ref)
		}
		if c.level == 0 {
			return nil
		}
		c.descend()
	}
}

func (l *List[E]) allocNode(value E, height int) (Ref, *nodeBlock[E], error) {
	block, err := memblock.Allocate(height, l.destructors)
	if err != nil {
		return NoRef, nil, err
	}
	if err := block.InitializeHeader(value); err != nil {
		return NoRef, nil, err
	}
	links := make([]LinkRecord, height)
	for i := range links {
		links[i] = unlinked
	}
	if err := block.InitializeElements(0, links...); err != nil {
		return NoRef, nil, err
	}

	ref := Ref(len(l.nodes))
	l.nodes = append(l.nodes, arenaNode[E]{block: block, height: height})
	return ref, block, nil
}

// Deinitialize destructs and frees every node exactly once, then releases
// the head vector. The list must not be used afterwards.
func (l *List[E]) Deinitialize() error {
	if l.deinitialized {
		return ErrDeinitialized
	}

	freed := 0
	if l.head.Count() > 0 {
		first := l.head.At(0).Next
		cur := first
		for {
			ref := cur
			cur = l.link(ref, 0).Next
			if err := l.freeNode(ref); err != nil {
				return err
			}
			freed++
			if cur == first {
				break
			}
		}
	}
	if err := l.head.Release(); err != nil {
		return err
	}

	l.debugf("conical: deinitialized: %d nodes freed", freed)
	l.nodes = nil
	l.deinitialized = true
	return nil
}

func (l *List[E]) freeNode(ref Ref) error {
	n := l.nodes[ref]
	if err := n.block.DeinitializeElements(n.height); err != nil {
		return fmt.Errorf("node %d: %w", ref, err)
	}
	if err := n.block.DeinitializeHeader(); err != nil {
		return fmt.Errorf("node %d: %w", ref, err)
	}
	if err := n.block.Deallocate(); err != nil {
		return fmt.Errorf("node %d: %w", ref, err)
	}
	return nil
}
