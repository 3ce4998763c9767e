/*
Package Maps describes read-only views over chained multi-value hash tables, and the packages under it enumerate the distinct keys held by such tables.

# Layout
A chained table stores every entry in parallel arenas: Keys[i] and Values[i] belong to entry i, and Next[i] is the index of the entry after i in its chain. Buckets[b] is the index of the first entry in bucket b. Nil terminates chains and marks empty buckets. The bucket count is always a power of two, so Mask=len(Buckets)-1.

# Ownership
Views hold indices only. The table that produced a view owns the arenas; nothing in this module inserts, removes, or rehashes entries. While a view is being iterated or visited the table must not be structurally modified. Values may be written in place by mutable visitors in Maps/Visit, since every entry belongs to exactly one bucket.

# Duplicates
A multi-value table may hold many entries per key. All entries of a key live in the same bucket because the bucket is a function of the key, but they aren't necessarily adjacent in the chain.
*/
package Maps

import (
	"math/bits"

	"github.com/cockroachdb/errors"
)

// Nil marks an empty bucket or the end of a chain.
const Nil = -1

// ErrMalformedView is returned when the arrays of a view don't fit together.
var ErrMalformedView = errors.New("malformed chained table view")

// Chains is the key-only part of a view.
type Chains[K comparable] struct {
	Buckets []int //head entry per bucket.
	Next    []int //next entry per entry.
	Keys    []K
	Mask    int //len(Buckets)-1.
	Count   int //live entries, duplicates included.
}

// View is Chains plus the values, which are parallel to Keys.
type View[K comparable, V any] struct {
	Chains[K]
	Values []V
}

// Viewer is implemented by tables that can expose their arenas.
type Viewer[K comparable, V any] interface {
	View() View[K, V]
}

// Len is the number of buckets.
func (ch *Chains[K]) Len() int {
	if len(ch.Buckets) == 0 {
		return 0
	}
	return ch.Mask + 1
}

func (ch *Chains[K]) Empty() bool {
	return ch.Count == 0 || len(ch.Buckets) == 0
}

// Validate checks the shape of the arrays. It doesn't walk the chains, so cycles and out of range links are not detected.
func (ch *Chains[K]) Validate() error {
	if len(ch.Buckets) == 0 {
		if ch.Count != 0 {
			return errors.Wrapf(ErrMalformedView, "%d entries without buckets", ch.Count)
		}
		if ch.Mask != 0 {
			return errors.Wrapf(ErrMalformedView, "mask %d without buckets", ch.Mask)
		}
		return nil
	}
	if n := len(ch.Buckets); n != ch.Mask+1 || bits.OnesCount(uint(n)) != 1 {
		return errors.Wrapf(ErrMalformedView, "bucket count %d with mask %d", n, ch.Mask)
	}
	if len(ch.Next) != len(ch.Keys) {
		return errors.Wrapf(ErrMalformedView, "%d links for %d keys", len(ch.Next), len(ch.Keys))
	}
	if ch.Count < 0 || ch.Count > len(ch.Keys) {
		return errors.Wrapf(ErrMalformedView, "count %d exceeds %d keys", ch.Count, len(ch.Keys))
	}
	return nil
}

// Validate checks the shape of the view. Values are only required when needValues is set.
func (v *View[K, V]) Validate(needValues bool) error {
	if err := v.Chains.Validate(); err != nil {
		return err
	}
	if needValues && len(v.Values) < len(v.Keys) {
		return errors.Wrapf(ErrMalformedView, "%d values for %d keys", len(v.Values), len(v.Keys))
	}
	return nil
}
