package conical

// cursor is a position on one level of a list: either the level's sentinel
// (at == NoRef) or a real node.
//
// Rings close on themselves, so following Next from the last node leads back
// to the first. successor treats that step as the end of the level: a walk
// that started at the sentinel has already seen the first node, and
// returning to it would loop forever once the search key exceeds every value
// on the level.
type cursor[E any] struct {
	l     *List[E]
	level int
	at    Ref
}

func (c *cursor[E]) onSentinel() bool {
	return c.at == NoRef
}

// successor returns the node after the cursor on its level. ok is false when
// there is none, either because the level is empty or because the cursor is
// on the level's last node.
func (c *cursor[E]) successor() (next Ref, ok bool) {
	first := c.l.head.At(c.level).Next
	if c.onSentinel() {
		return first, first != NoRef
	}
	next = c.l.link(c.at, c.level).Next
	if next == first {
		return NoRef, false
	}
	return next, true
}

// seekAfter advances while the successor's value is <= value, leaving the
// cursor on the last such node, or on the sentinel if there is none.
func (c *cursor[E]) seekAfter(value E) {
	for {
		next, ok := c.successor()
		if !ok || c.l.compare(c.l.value(next), value) > 0 {
			return
		}
		c.at = next
	}
}

// splice links node into the level directly after the cursor.
//
// From the sentinel the node becomes the new first; from the last node it
// becomes the new last. Either way the ring neighbours are the cursor's ring
// predecessor and successor, which for the sentinel are the level's last and
// first nodes.
func (c *cursor[E]) splice(node Ref) {
	sentinel := c.l.head.At(c.level)

	if sentinel.Next == NoRef {
		c.l.setLink(node, c.level, selfLinked(node))
		c.l.head.Set(c.level, selfLinked(node))
		return
	}

	var prev, next Ref
	if c.onSentinel() {
		prev, next = sentinel.Prev, sentinel.Next
	} else {
		prev, next = c.at, c.l.link(c.at, c.level).Next
	}

	c.l.setLink(node, c.level, LinkRecord{Prev: prev, Next: next})
	c.l.linkPtr(prev, c.level).Next = node
	c.l.linkPtr(next, c.level).Prev = node

	if c.onSentinel() {
		sentinel.Next = node
	} else if c.at == sentinel.Prev {
		sentinel.Prev = node
	}
	c.l.head.Set(c.level, sentinel)
}

// descend moves the cursor to the next lower level. A node present on a
// level is present on every level below it, so the position carries over.
func (c *cursor[E]) descend() {
	c.level--
}
