package conical

import "errors"

// Ref is a node arena index.
type Ref uint32

const NoRef = ^Ref(0)

// LinkRecord is a node's (or a sentinel's) neighbours at one level.
type LinkRecord struct {
	Prev Ref
	Next Ref
}

// unlinked is the value every node link holds before it is spliced.
var unlinked = LinkRecord{Prev: NoRef, Next: NoRef}

func selfLinked(ref Ref) LinkRecord {
	return LinkRecord{Prev: ref, Next: ref}
}

// LinkSetter is satisfied by any storage that can overwrite a constructed
// LinkRecord by level.
type LinkSetter interface {
	Set(level int, rec LinkRecord)
}

var (
	ErrBadHeight       = errors.New("conical: height must be > 0")
	ErrBadCapacity     = errors.New("conical: head capacity must be >= 0")
	ErrDeinitialized   = errors.New("conical: list has been deinitialized")
	ErrLevelOutOfRange = errors.New("conical: level out of range")
	ErrGrowHeight      = errors.New("conical: grow height must exceed the active level count")
	ErrShrinkHeight    = errors.New("conical: shrink height must be below the active level count")
	ErrReleased        = errors.New("conical: head vector has been released")
	ErrArenaFull       = errors.New("conical: node arena exhausted")
	ErrCorrupt         = errors.New("conical: structure invariant violated")
)
