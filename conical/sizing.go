package conical

// DefaultHeadCapacity is the number of level slots a new head vector reserves.
const DefaultHeadCapacity = 8

// GrowCapacity returns the capacity that follows old: old*1.5 + 8.
//
// The constant term keeps small vectors from reallocating one level at a time.
func GrowCapacity(old int) int {
	return old + old/2 + 8
}

// CapacityFor returns the first capacity in the growth sequence starting at
// old that can hold height levels. It returns old if old already suffices.
func CapacityFor(old, height int) int {
	c := old
	for c < height {
		c = GrowCapacity(c)
	}
	return c
}
