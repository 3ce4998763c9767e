package MultiMap

import (
	"github.com/g-m-twostay/go-multimap/Maps"
)

// MultiMap is an insert-only separate chaining hash table that keeps every value added under a key. The bucket count is fixed at creation; entries live in arenas that grow by appending.
// It isn't safe for concurrent modification. Concurrent reads are fine when nothing is being added.
type MultiMap[K comparable, V any] struct {
	buckets []int
	next    []int
	keys    []K
	vals    []V
	HashF   func(K) uint
}

// New MultiMap with 1<<logBuckets buckets.
// sizeHint is the number of entries the arenas are presized for.
func New[K comparable, V any](logBuckets byte, sizeHint uint, hashF func(K) uint) *MultiMap[K, V] {
	u := &MultiMap[K, V]{
		buckets: make([]int, 1<<logBuckets),
		next:    make([]int, 0, sizeHint),
		keys:    make([]K, 0, sizeHint),
		vals:    make([]V, 0, sizeHint),
		HashF:   hashF,
	}
	for i := range u.buckets {
		u.buckets[i] = Maps.Nil
	}
	return u
}

func (u *MultiMap[K, V]) bucket(key K) int {
	return int(u.HashF(key) & uint(len(u.buckets)-1))
}

// Add an entry. The entry becomes the head of its bucket's chain, so repeated additions of one key with nothing in between stay adjacent.
func (u *MultiMap[K, V]) Add(key K, val V) {
	b, i := u.bucket(key), len(u.keys)
	u.keys = append(u.keys, key)
	u.vals = append(u.vals, val)
	u.next = append(u.next, u.buckets[b])
	u.buckets[b] = i
}

// Size is the number of entries, duplicates included.
func (u *MultiMap[K, V]) Size() uint {
	return uint(len(u.keys))
}

// Buckets is the number of buckets.
func (u *MultiMap[K, V]) Buckets() int {
	return len(u.buckets)
}

func (u *MultiMap[K, V]) Has(key K) bool {
	for i := u.buckets[u.bucket(key)]; i != Maps.Nil; i = u.next[i] {
		if u.keys[i] == key {
			return true
		}
	}
	return false
}

// Values calls f on a pointer to every value stored under key, newest first. Stops when f returns false.
func (u *MultiMap[K, V]) Values(key K, f func(*V) bool) {
	for i := u.buckets[u.bucket(key)]; i != Maps.Nil; i = u.next[i] {
		if u.keys[i] == key && !f(&u.vals[i]) {
			return
		}
	}
}

// View shares the arenas with the caller. It stays valid until the next Add.
func (u *MultiMap[K, V]) View() Maps.View[K, V] {
	return Maps.View[K, V]{
		Chains: Maps.Chains[K]{
			Buckets: u.buckets,
			Next:    u.next,
			Keys:    u.keys,
			Mask:    len(u.buckets) - 1,
			Count:   len(u.keys),
		},
		Values: u.vals,
	}
}
