package memblock

// The live mask records which element slots currently hold a constructed
// value. Bit i is the LSB0 bit (i & 7) of byte (i >> 3).

func liveMaskBytes(capacity int) int {
	return (capacity + 7) / 8
}

func setLiveLSB0(mask []byte, i int) {
	mask[i>>3] |= 1 << uint8(i&7)
}

func clearLiveLSB0(mask []byte, i int) {
	mask[i>>3] &^= 1 << uint8(i&7)
}

func testLiveLSB0(mask []byte, i int) bool {
	return mask[i>>3]&(1<<uint8(i&7)) != 0
}

// firstLive returns the first live index in [from, from+count), or -1.
func firstLive(mask []byte, from, count int) int {
	for i := from; i < from+count; i++ {
		if testLiveLSB0(mask, i) {
			return i
		}
	}
	return -1
}

// firstDead returns the first index in [from, from+count) that is not live, or -1.
func firstDead(mask []byte, from, count int) int {
	for i := from; i < from+count; i++ {
		if !testLiveLSB0(mask, i) {
			return i
		}
	}
	return -1
}
