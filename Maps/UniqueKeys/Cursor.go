package UniqueKeys

import (
	"github.com/g-m-twostay/go-multimap/Maps"
)

// Cursor enumerates the distinct keys of a chained table one at a time without allocating.
// The zero value isn't a valid start state; use NewCursor or Reset.
// The table must not change between calls to Next on a live cursor.
type Cursor[K comparable] struct {
	Bucket int //bucket being scanned, -1 before the first call.
	Entry  int //entry of the last yielded key, -1 when no chain is being walked.
	Key    K   //last yielded key.
}

func NewCursor[K comparable]() Cursor[K] {
	return Cursor[K]{Bucket: Maps.Nil, Entry: Maps.Nil}
}

// Reset the cursor to the start state.
func (c *Cursor[K]) Reset() {
	*c = NewCursor[K]()
}

// Next moves to the next distinct key and stores it in c.Key. Returns false once every key has been yielded; further calls keep returning false.
//
// Every distinct key is yielded exactly once. Within a chain a key is yielded at its first occurrence: a later entry is skipped if it equals the previous key, or if the same key appears earlier in the chain, which happens when other keys of the bucket were added in between.
func (c *Cursor[K]) Next(ch *Maps.Chains[K]) bool {
	for c.Entry != Maps.Nil {
		if c.Entry = ch.Next[c.Entry]; c.Entry == Maps.Nil {
			break
		}
		if key := ch.Keys[c.Entry]; key != c.Key && !seenBefore(ch, ch.Buckets[c.Bucket], c.Entry, key) {
			c.Key = key
			return true
		}
	}
	//the head of a chain is always new.
	for c.Bucket < ch.Mask && len(ch.Buckets) > 0 {
		c.Bucket++
		if c.Entry = ch.Buckets[c.Bucket]; c.Entry != Maps.Nil {
			c.Key = ch.Keys[c.Entry]
			return true
		}
	}
	return false
}

// seenBefore reports whether key occurs in the chain starting at head before entry at.
func seenBefore[K comparable](ch *Maps.Chains[K], head, at int, key K) bool {
	for i := head; i != at; i = ch.Next[i] {
		if ch.Keys[i] == key {
			return true
		}
	}
	return false
}

// Range calls f on every distinct key of ch until f returns false.
func Range[K comparable](ch *Maps.Chains[K], f func(K) bool) {
	for c := NewCursor[K](); c.Next(ch); {
		if !f(c.Key) {
			return
		}
	}
}
