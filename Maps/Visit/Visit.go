// Package Visit walks every entry of a chained table view from many goroutines at once. Buckets are split into chunks that workers claim until none are left; a worker walks each chain of its chunk and calls the visitor on every entry, duplicates included.
package Visit

import (
	"github.com/cockroachdb/errors"
	"github.com/g-m-twostay/go-multimap/Maps"
)

// Kind of a Visitor.
type Kind byte

const (
	KeyOnly         Kind = iota //func(K)
	KeyValue                    //func(K, V)
	KeyMutableValue             //func(K, *V)
)

func (k Kind) String() string {
	switch k {
	case KeyOnly:
		return "key"
	case KeyValue:
		return "key+value"
	case KeyMutableValue:
		return "key+mutable value"
	}
	return "unknown"
}

// Visitor is called once per entry during Run. Calls come from several goroutines, so the functions must be safe for concurrent use; entries of the same bucket are always visited by the same goroutine.
type Visitor[K comparable, V any] struct {
	kind Kind
	key  func(K)
	pair func(K, V)
	mut  func(K, *V)
}

// Keys visits keys only. Values aren't read, so the view may have none.
func Keys[K comparable, V any](f func(K)) Visitor[K, V] {
	return Visitor[K, V]{kind: KeyOnly, key: f}
}

// Pairs visits keys with a copy of their value.
func Pairs[K comparable, V any](f func(K, V)) Visitor[K, V] {
	return Visitor[K, V]{kind: KeyValue, pair: f}
}

// MutablePairs visits keys with a pointer into the value arena. Writing through it is safe: no other goroutine sees the same entry during the pass.
func MutablePairs[K comparable, V any](f func(K, *V)) Visitor[K, V] {
	return Visitor[K, V]{kind: KeyMutableValue, mut: f}
}

func (vis Visitor[K, V]) Kind() Kind {
	return vis.kind
}

func (vis Visitor[K, V]) valid() bool {
	switch vis.kind {
	case KeyOnly:
		return vis.key != nil
	case KeyValue:
		return vis.pair != nil
	case KeyMutableValue:
		return vis.mut != nil
	}
	return false
}

// Run visits every live entry of v exactly once and returns when all are done. No order is guaranteed.
// v must not be structurally modified during the pass.
func Run[K comparable, V any](v *Maps.View[K, V], vis Visitor[K, V], opts ...Option) error {
	if !vis.valid() {
		return errors.Wrapf(ErrBadConfig, "nil %s visitor", vis.kind)
	}
	if err := v.Validate(vis.kind != KeyOnly); err != nil {
		return err
	}
	return Ranges(v.Len(), func(lo, hi int) {
		walk(v, vis, lo, hi)
	}, opts...)
}

// walk buckets [lo, hi). The kind is switched on once per chunk, not per entry.
func walk[K comparable, V any](v *Maps.View[K, V], vis Visitor[K, V], lo, hi int) {
	next, keys := v.Next, v.Keys
	switch vis.kind {
	case KeyOnly:
		for _, i := range v.Buckets[lo:hi] {
			for ; i != Maps.Nil; i = next[i] {
				vis.key(keys[i])
			}
		}
	case KeyValue:
		vals := v.Values
		for _, i := range v.Buckets[lo:hi] {
			for ; i != Maps.Nil; i = next[i] {
				vis.pair(keys[i], vals[i])
			}
		}
	case KeyMutableValue:
		vals := v.Values
		for _, i := range v.Buckets[lo:hi] {
			for ; i != Maps.Nil; i = next[i] {
				vis.mut(keys[i], &vals[i])
			}
		}
	}
}
