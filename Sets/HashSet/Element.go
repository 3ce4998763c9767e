package HashSet

import "math"

// bucket is one slot of the table. dHash belongs to the slot as a home position and points at the first element that hashed here; dLink belongs to the element stored in the slot and points at the next element with the same home.
// Both are deltas stored offset by math.MinInt8, so 0 means unset.
type bucket[E comparable] struct {
	element      E
	dHash, dLink byte
}

func (b *bucket[E]) hashed() bool {
	return b.dHash != 0
}

func (b *bucket[E]) linked() bool {
	return b.dLink != 0
}

func (b *bucket[E]) clrLink() {
	b.dLink = 0
}

func (b *bucket[E]) deltaLink() int {
	return int(b.dLink) + math.MinInt8
}

func (b *bucket[E]) deltaHash() int {
	return int(b.dHash) + math.MinInt8
}

func (b *bucket[E]) useDeltaHash(d int) {
	b.dHash = offset(d)
}

func (b *bucket[E]) useDeltaLink(d int) {
	b.dLink = offset(d)
}

func offset(d int) byte {
	return byte(d - math.MinInt8)
}
