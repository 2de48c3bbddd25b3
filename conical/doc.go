package conical

/*

# Conical lists

A conical list is a circular, multi-level ordered list (a skip list variant)
whose nodes are memblock blocks: the payload is the block header and the
node's per-level links are its elements.

## Shape

Level 0 holds every node. Level L > 0 holds, in the same order, the nodes
whose height is greater than L. Each level is a ring over real nodes only:

	last.Next == first, first.Prev == last

The head vector holds one sentinel LinkRecord per active level. A sentinel is
not part of its ring; it only records the ring's first (Next) and last (Prev)
node. Because the rings close on themselves, a forward walk that starts
anywhere but the sentinel must detect the point where it would re-enter the
level's first node. The cursor in cursor.go owns that decision.

## Heights

Heights are supplied by the caller (for example from a randomized leveling
policy) and are fixed at insertion. Inserting a node taller than the list
activates the new levels as singleton rings holding just that node.

## References

Nodes live in an arena owned by the list and are referred to by Ref, their
arena index. NoRef means "no node". The head vector storage is a separate
block, so reallocating it never invalidates a node reference.

## Lifecycle

	New -> Insert* -> Deinitialize

Deinitialize visits each node exactly once along level 0, destructs and frees
it, and then releases the head vector. There is no point removal and no
lookup: node identities are never handed to callers.

*/
