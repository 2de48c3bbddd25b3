package memblock

import "unsafe"

// Layout describes where a header and its element region would live inside a
// single raw allocation. All values are in bytes.
type Layout struct {
	HeaderSize  uintptr
	HeaderAlign uintptr
	ElemStride  uintptr
	ElemAlign   uintptr

	// BufferOffset is the offset of element 0 from the block base.
	BufferOffset uintptr

	// Align is the alignment the whole allocation must satisfy.
	Align uintptr
}

// LayoutOf returns the layout of a block with header type H and element type E.
//
// The result depends only on H and E, never on capacity.
func LayoutOf[H, E any]() Layout {
	var (
		h H
		e E
	)
	l := Layout{
		HeaderSize:  unsafe.Sizeof(h),
		HeaderAlign: unsafe.Alignof(h),
		ElemAlign:   unsafe.Alignof(e),
	}
	l.ElemStride = RoundUp(unsafe.Sizeof(e), l.ElemAlign)
	l.BufferOffset = RoundUp(l.HeaderSize, l.ElemAlign)
	l.Align = max(l.HeaderAlign, l.ElemAlign)
	return l
}

// RoundUp rounds n up to the next multiple of align.
//
// align must be a power of two.
func RoundUp(n, align uintptr) uintptr {
	return (n + align - 1) &^ (align - 1)
}

// ElemOffset returns the byte offset of element i from the block base.
func (l Layout) ElemOffset(i int) uint64 {
	return uint64(l.BufferOffset) + uint64(i)*uint64(l.ElemStride)
}

// AllocBytes returns the number of bytes a raw allocation holding one header
// and capacity elements requires.
func (l Layout) AllocBytes(capacity int) uint64 {
	return l.ElemOffset(capacity)
}
