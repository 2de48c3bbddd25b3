package conical

import "fmt"

// Validate checks the structural invariants of the list:
//
//   - every active level is a closed ring whose Prev links mirror its Next links
//   - each sentinel's Next is its ring's first node and Prev its last
//   - only nodes taller than a level appear on it
//   - level 0 holds every node, in non-decreasing order
//   - level L > 0 is level 0 restricted to nodes taller than L, order preserved
//   - the active level count equals the greatest node height
//
// Failures wrap ErrCorrupt.
func (l *List[E]) Validate() error {
	if l.deinitialized {
		return ErrDeinitialized
	}

	levels := l.head.Count()
	maxHeight := 0
	for _, n := range l.nodes {
		maxHeight = max(maxHeight, n.height)
	}
	if levels != maxHeight {
		return fmt.Errorf("%w: %d active levels, tallest node %d", ErrCorrupt, levels, maxHeight)
	}

	var base []Ref
	for level := 0; level < levels; level++ {
		ring, err := l.walkRing(level)
		if err != nil {
			return err
		}

		if level == 0 {
			if len(ring) != len(l.nodes) {
				return fmt.Errorf("%w: level 0 holds %d of %d nodes", ErrCorrupt, len(ring), len(l.nodes))
			}
			for i := 1; i < len(ring); i++ {
				if l.compare(l.value(ring[i-1]), l.value(ring[i])) > 0 {
					return fmt.Errorf("%w: level 0 out of order at position %d", ErrCorrupt, i)
				}
			}
			base = ring
			continue
		}

		i := 0
		for _, ref := range base {
			if l.nodes[ref].height <= level {
				continue
			}
			if i >= len(ring) || ring[i] != ref {
				return fmt.Errorf("%w: level %d is not the level 0 order restricted to its nodes", ErrCorrupt, level)
			}
			i++
		}
		if i != len(ring) {
			return fmt.Errorf("%w: level %d holds extra nodes", ErrCorrupt, level)
		}
	}
	return nil
}

// walkRing follows level from its sentinel and returns the refs in ring order.
func (l *List[E]) walkRing(level int) ([]Ref, error) {
	sentinel := l.head.At(level)
	if sentinel.Next == NoRef || sentinel.Prev == NoRef {
		return nil, fmt.Errorf("%w: level %d sentinel is unlinked", ErrCorrupt, level)
	}

	var ring []Ref
	prev := sentinel.Prev
	cur := sentinel.Next
	for {
		if uint64(cur) >= uint64(len(l.nodes)) {
			return nil, fmt.Errorf("%w: level %d links to unknown node %d", ErrCorrupt, level, cur)
		}
		if l.nodes[cur].height <= level {
			return nil, fmt.Errorf("%w: node %d of height %d linked on level %d", ErrCorrupt, cur, l.nodes[cur].height, level)
		}
		if len(ring) == len(l.nodes) {
			return nil, fmt.Errorf("%w: level %d ring does not close", ErrCorrupt, level)
		}
		rec := l.link(cur, level)
		if rec.Prev != prev {
			return nil, fmt.Errorf("%w: level %d node %d prev is %d, want %d", ErrCorrupt, level, cur, rec.Prev, prev)
		}
		ring = append(ring, cur)
		prev = cur
		cur = rec.Next
		if cur == sentinel.Next {
			break
		}
	}
	if prev != sentinel.Prev {
		return nil, fmt.Errorf("%w: level %d sentinel prev is %d, last node is %d", ErrCorrupt, level, sentinel.Prev, prev)
	}
	return ring, nil
}
