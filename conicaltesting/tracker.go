package conicaltesting

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"
)

// Payload is a test element ordered by Key alone. Seq is unique per
// constructed payload and records construction order, so equal keys can be
// told apart.
type Payload struct {
	Key int
	Seq uint64
}

// ComparePayload orders payloads by Key, ignoring Seq.
func ComparePayload(a, b Payload) int {
	return cmp.Compare(a.Key, b.Key)
}

// Tracker counts payload constructions and destructions.
type Tracker struct {
	next      uint64
	destroyed map[uint64]int
}

func NewTracker() *Tracker {
	return &Tracker{destroyed: make(map[uint64]int)}
}

// New constructs a payload for key.
func (tr *Tracker) New(key int) Payload {
	p := Payload{Key: key, Seq: tr.next}
	tr.next++
	return p
}

// Destroy records the destruction of p. Pass it as the list destructor.
func (tr *Tracker) Destroy(p Payload) {
	tr.destroyed[p.Seq]++
}

func (tr *Tracker) Constructed() int { return int(tr.next) }

func (tr *Tracker) Destroyed() int {
	n := 0
	for _, c := range tr.destroyed {
		n += c
	}
	return n
}

// RequireEachDestroyedOnce fails t unless every constructed payload was
// destroyed exactly once.
func (tr *Tracker) RequireEachDestroyedOnce(t *testing.T) {
	t.Helper()
	require.Equal(t, tr.Constructed(), tr.Destroyed())
	for seq := uint64(0); seq < tr.next; seq++ {
		require.Equal(t, 1, tr.destroyed[seq], "payload seq %d", seq)
	}
}
