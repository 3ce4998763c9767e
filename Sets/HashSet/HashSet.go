package HashSet

import (
	"math/bits"

	Go_MultiMap "github.com/g-m-twostay/go-multimap"
)

type putResult byte

const (
	fail putResult = iota //no free slot in reach; grow and retry.
	added
	exist
)

// HashSet is a sequential Hopscotch hash set. It isn't safe for concurrent use; see Sets/ShardSet for that.
// Every element lives within h slots of its home slot, and the elements sharing a home are linked from it through byte deltas.
type HashSet[E comparable] struct {
	bkt    []bucket[E]
	used   Go_MultiMap.BitArray
	hashes []uint //hash of the element in each used slot, so growing never calls HashF.
	HashF  func(E) uint
	sz     uint
	h      byte
}

// New HashSet of type E.
// h is the neighborhood size parameter in Hopscotch hashing, 16 is a good value; it must be in [1, 127].
// size is used to calculate the initial table size that should handle size elements without resizing.
// hashF must spread the low bits well.
func New[E comparable](h byte, size uint, hashF func(E) uint) *HashSet[E] {
	n := 1<<bits.Len(size) + uint(h)
	return &HashSet[E]{bkt: make([]bucket[E], n), used: Go_MultiMap.NewBitArray(n), hashes: make([]uint, n), HashF: hashF, h: h}
}

// home slot of hash. The last h slots only serve as overflow for the last homes.
func (u *HashSet[E]) home(hash uint) int {
	return int(hash) & (len(u.bkt) - int(u.h) - 1)
}

// find the slot holding e among the elements of home, or -1.
func (u *HashSet[E]) find(home int, e E) int {
	if !u.bkt[home].hashed() {
		return -1
	}
	for i := home + u.bkt[home].deltaHash(); ; i += u.bkt[i].deltaLink() {
		if u.used.Get(i) && u.bkt[i].element == e {
			return i
		}
		if !u.bkt[i].linked() {
			return -1
		}
	}
}

// place e in the free slot at, as the first element of home.
func (u *HashSet[E]) place(home, at int, e E, hash uint) {
	b := &u.bkt[at]
	b.element = e
	u.hashes[at] = hash
	u.used.Set(at)
	u.sz++
	if hb := &u.bkt[home]; hb.hashed() {
		b.useDeltaLink(home + hb.deltaHash() - at)
	} else {
		b.clrLink()
	}
	u.bkt[home].useDeltaHash(at - home)
}

// vacate moves some element from the h-1 slots before free into free without taking it out of its neighborhood, and returns the slot it left. -1 if no element can move.
func (u *HashSet[E]) vacate(free int) int {
	for home := max(free-int(u.h)+1, 0); home < free; home++ {
		if !u.bkt[home].hashed() {
			continue
		}
		prev, at := &u.bkt[home].dHash, home
		for i := home + u.bkt[home].deltaHash(); ; i += u.bkt[i].deltaLink() {
			if free-int(u.h) < i && i < free {
				*prev = offset(free - at)
				moved := &u.bkt[free]
				moved.element, u.hashes[free] = u.bkt[i].element, u.hashes[i]
				u.used.Set(free)
				if u.bkt[i].linked() {
					moved.useDeltaLink(u.bkt[i].deltaLink() + i - free)
				} else {
					moved.clrLink()
				}
				u.bkt[i].clrLink()
				u.used.Clr(i)
				return i
			}
			if !u.bkt[i].linked() {
				break
			}
			prev, at = &u.bkt[i].dLink, i
		}
	}
	return -1
}

func (u *HashSet[E]) tryPut(e E, hash uint) putResult {
	home := u.home(hash)
	if u.find(home, e) >= 0 {
		return exist
	}
	free := home
	for free < len(u.bkt) && u.used.Get(free) {
		free++
	}
	for free >= 0 && free < len(u.bkt) {
		if free-home < int(u.h) {
			u.place(home, free, e, hash)
			return added
		}
		free = u.vacate(free)
	}
	return fail
}

// grow doubles the homes. Elements are re-placed with their stored hashes.
func (u *HashSet[E]) grow() {
	n := (len(u.bkt)-int(u.h))<<1 + int(u.h)
	M := HashSet[E]{bkt: make([]bucket[E], n), used: Go_MultiMap.NewBitArray(uint(n)), hashes: make([]uint, n), HashF: u.HashF, h: u.h}
	for i := range u.bkt {
		if u.used.Get(i) {
			for M.tryPut(u.bkt[i].element, u.hashes[i]) == fail {
				M.grow()
			}
		}
	}
	u.bkt, u.used, u.hashes = M.bkt, M.used, M.hashes
}

// Size of the set.
func (u *HashSet[E]) Size() uint {
	return u.sz
}

// Put e into the set. Returns true if e wasn't in the set before.
func (u *HashSet[E]) Put(e E) bool {
	return u.PutHash(e, u.HashF(e))
}

// PutHash is Put for callers that already computed hash=HashF(e).
func (u *HashSet[E]) PutHash(e E, hash uint) bool {
	r := u.tryPut(e, hash)
	for ; r == fail; r = u.tryPut(e, hash) {
		u.grow()
	}
	return r == added
}

func (u *HashSet[E]) Has(e E) bool {
	return u.HasHash(e, u.HashF(e))
}

// HasHash is Has with hash=HashF(e).
func (u *HashSet[E]) HasHash(e E, hash uint) bool {
	return u.find(u.home(hash), e) >= 0
}

// Remove e from the set. Returns true if the removal is successful.
func (u *HashSet[E]) Remove(e E) bool {
	return u.RemoveHash(e, u.HashF(e))
}

// RemoveHash is Remove with hash=HashF(e).
func (u *HashSet[E]) RemoveHash(e E, hash uint) bool {
	at := u.home(hash)
	if !u.bkt[at].hashed() {
		return false
	}
	prev := &u.bkt[at].dHash
	for i := at + u.bkt[at].deltaHash(); ; i += u.bkt[i].deltaLink() {
		if u.used.Get(i) && u.bkt[i].element == e {
			u.used.Clr(i)
			u.sz--
			if u.bkt[i].linked() {
				*prev = offset(i + u.bkt[i].deltaLink() - at)
			} else {
				*prev = 0
			}
			u.bkt[i].clrLink()
			return true
		}
		if !u.bkt[i].linked() {
			return false
		}
		prev, at = &u.bkt[i].dLink, i
	}
}

// Take an arbitrary element from the set. Returns zero value if the set is empty.
// Faster than iterating with Range.
func (u *HashSet[E]) Take() (e E) {
	if i := u.used.First(); i > -1 {
		e = u.bkt[i].element
	}
	return
}

// Range over elements and call f on them. Stops when f returns false.
func (u *HashSet[E]) Range(f func(E) bool) {
	for i := range u.bkt {
		if u.used.Get(i) && !f(u.bkt[i].element) {
			return
		}
	}
}

// Clear removes all elements but keeps the table.
func (u *HashSet[E]) Clear() {
	clear(u.bkt)
	u.used.Reset()
	u.sz = 0
}
