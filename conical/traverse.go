package conical

import (
	"fmt"
	"iter"
)

// Values yields the payloads on level in list order, starting from the
// level's first node and stopping after one full circuit of its ring.
//
// The list must not be mutated while the sequence is being consumed.
func (l *List[E]) Values(level int) iter.Seq[E] {
	return func(yield func(E) bool) {
		if l.deinitialized || level < 0 || level >= l.head.Count() {
			return
		}
		first := l.head.At(level).Next
		cur := first
		for {
			if !yield(l.value(cur)) {
				return
			}
			cur = l.link(cur, level).Next
			if cur == first {
				return
			}
		}
	}
}

// All yields every payload in order.
func (l *List[E]) All() iter.Seq[E] {
	return l.Values(0)
}

// Level returns a copy of the payloads on level, in order.
func (l *List[E]) Level(level int) ([]E, error) {
	if l.deinitialized {
		return nil, ErrDeinitialized
	}
	if level < 0 || level >= l.head.Count() {
		return nil, fmt.Errorf("%w: level %d, count %d", ErrLevelOutOfRange, level, l.head.Count())
	}
	var out []E
	for v := range l.Values(level) {
		out = append(out, v)
	}
	return out, nil
}
