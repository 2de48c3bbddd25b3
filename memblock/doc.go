package memblock

/*

# Header + inline element blocks

This package provides a single primitive: a block that owns exactly one
header value followed by a fixed number of element slots. It is the storage
unit for ordered containers that would otherwise allocate a node struct and a
separate per-node array.

It follows the same "functional primitives" style as the rest of this module:

- explicit layout arithmetic (see `layout.go`)
- explicit, individually mandatory lifecycle steps
- a burden of knowledge on the caller for capacity tracking

## Lifecycle

A block moves through four distinct steps, none of which may be skipped:

	Allocate -> Initialize{Header,Elements} -> Deinitialize{Header,Elements} -> Deallocate

Allocate returns storage with nothing constructed. Header and element slots are
constructed and destructed independently. Deallocate releases the whole block
regardless of how many elements are still constructed.

## Layout

The element region starts at

	bufferOffset = roundUp(sizeof(H), alignof(E))

which depends only on the header and element types, never on capacity. The
byte count a raw allocator would need is

	bufferOffset + capacity*stride(E)

aligned to max(alignof(H), alignof(E)). LayoutOf exposes these numbers.

## Go representation

The block is an owning Go value: the header is a field and the element region
is an owned slice. That costs one extra allocation per block compared with a
raw byte arena, and in exchange every misuse the layout permits (double
construct, double destruct, use before construct, use after free, out of range
index) is detected instead of corrupting memory:

- lifecycle methods return an error wrapping one of the package sentinels
- accessors (Header, At, Set, Ptr) panic with such an error

Capacity is not part of the block's public contract. Callers track it, as the
element count they asked Allocate for.

## Identity

Two blocks are the same block only if they are the same allocation. Same
compares pointers, never contents.

*/
