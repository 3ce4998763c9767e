/*
Package UniqueKeys enumerates the distinct keys of chained multi-value tables.

Sequential strategies:
  - Cursor, Count, Array: walk the chains, no auxiliary memory beyond the output.
  - CountSorted, SortedArray, SortedArrayFunc: copy every key, sort, compact runs. O(n log n), needs a total order.
  - StoreToSet: put every key into a deduplicating set. O(n) plus the set's cost.

Parallel strategies, built on Maps/Visit:
  - StoreToSetParallel: every worker puts into one concurrent set.
  - ParallelArray: every worker deduplicates its own buckets, no shared set needed since a key never spans buckets.

All strategies agree on the set of distinct keys. Only the sorted ones define an order.
*/
package UniqueKeys

import (
	"slices"

	"github.com/g-m-twostay/go-multimap/Maps"
	"github.com/g-m-twostay/go-multimap/Sets"
	"golang.org/x/exp/constraints"
)

// SizeHint is an upper bound on the number of distinct keys, for presizing destinations.
func SizeHint[K comparable](ch *Maps.Chains[K]) int {
	return ch.Count
}

// Count the distinct keys with a cursor.
func Count[K comparable](ch *Maps.Chains[K]) (n int) {
	for c := NewCursor[K](); c.Next(ch); {
		n++
	}
	return
}

// Array appends the distinct keys to dst in bucket order.
func Array[K comparable](ch *Maps.Chains[K], dst []K) []K {
	for c := NewCursor[K](); c.Next(ch); {
		dst = append(dst, c.Key)
	}
	return dst
}

// allKeys copies every live key, duplicates included, in chain order.
func allKeys[K comparable](ch *Maps.Chains[K]) []K {
	if ch.Empty() {
		return nil
	}
	keys := make([]K, 0, ch.Count)
	for b := range ch.Buckets {
		for i := ch.Buckets[b]; i != Maps.Nil; i = ch.Next[i] {
			keys = append(keys, ch.Keys[i])
		}
	}
	return keys
}

// CountSorted counts the distinct keys by sorting a copy of all keys.
func CountSorted[K constraints.Ordered](ch *Maps.Chains[K]) int {
	return len(SortedArray(ch, nil))
}

// SortedArray appends the distinct keys to dst in ascending order.
func SortedArray[K constraints.Ordered](ch *Maps.Chains[K], dst []K) []K {
	keys := allKeys(ch)
	slices.Sort(keys)
	return append(dst, slices.Compact(keys)...)
}

// SortedArrayFunc is SortedArray for keys ordered by cmp, which must be a total order consistent with ==.
func SortedArrayFunc[K comparable](ch *Maps.Chains[K], dst []K, cmp func(a, b K) int) []K {
	keys := allKeys(ch)
	slices.SortFunc(keys, cmp)
	return append(dst, slices.Compact(keys)...)
}

// StoreToSet puts every key of ch into s, duplicates included, and returns how many keys were new to s.
func StoreToSet[K comparable](ch *Maps.Chains[K], s Sets.Set[K]) (added uint) {
	if ch.Empty() {
		return 0
	}
	for b := range ch.Buckets {
		for i := ch.Buckets[b]; i != Maps.Nil; i = ch.Next[i] {
			if s.Put(ch.Keys[i]) {
				added++
			}
		}
	}
	return
}
