/*
Package ConcSet adapts third-party concurrent maps and plain locking to the Sets.Set contract, so they can be used as the shared destination of a parallel visit.

https://github.com/cornelk/hashmap/ and https://github.com/alphadose/haxmap/ have known races between concurrent deletes and inserts, see https://github.com/cornelk/hashmap/issues/73 and https://github.com/alphadose/haxmap/issues/32. The adapters here never delete.

Hax is the exception to the exact Put of Sets.Set: while haxmap grows, two goroutines putting the same key can both be told it was new. Has, Size and Range stay exact once the puts return, so Hax is fine as a StoreToSetParallel sink but not where the result of Put is counted.
*/
package ConcSet

import (
	"math/bits"
	"sync"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/g-m-twostay/go-multimap/Sets"
	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/exp/constraints"
)

// Key types the hashing maps accept.
type Key interface {
	constraints.Integer | ~string
}

type empty = struct{}

// pow2 rounds size up to a power of two; both hashing maps index with shifts.
func pow2(size uint) uintptr {
	return uintptr(1) << bits.Len(size-1)
}

// Hax is a set over haxmap. Put is only advisory under concurrent growth, see the package doc.
type Hax[K Key] struct {
	m *haxmap.Map[K, empty]
}

func NewHax[K Key](size uint) *Hax[K] {
	if size == 0 {
		return &Hax[K]{haxmap.New[K, empty]()}
	}
	return &Hax[K]{haxmap.New[K, empty](pow2(size))}
}

func (u *Hax[K]) Put(k K) bool {
	_, loaded := u.m.GetOrSet(k, empty{})
	return !loaded
}

func (u *Hax[K]) Has(k K) bool {
	_, ok := u.m.Get(k)
	return ok
}

func (u *Hax[K]) Size() uint {
	return uint(u.m.Len())
}

func (u *Hax[K]) Range(f func(K) bool) {
	u.m.ForEach(func(k K, _ empty) bool {
		return f(k)
	})
}

// Cornelk is a set over cornelk/hashmap.
type Cornelk[K Key] struct {
	m *hashmap.Map[K, empty]
}

func NewCornelk[K Key](size uint) *Cornelk[K] {
	if size == 0 {
		return &Cornelk[K]{hashmap.New[K, empty]()}
	}
	return &Cornelk[K]{hashmap.NewSized[K, empty](pow2(size))}
}

func (u *Cornelk[K]) Put(k K) bool {
	return u.m.Insert(k, empty{})
}

func (u *Cornelk[K]) Has(k K) bool {
	_, ok := u.m.Get(k)
	return ok
}

func (u *Cornelk[K]) Size() uint {
	return uint(u.m.Len())
}

func (u *Cornelk[K]) Range(f func(K) bool) {
	u.m.Range(func(k K, _ empty) bool {
		return f(k)
	})
}

// XSync is a set over xsync.MapOf. It accepts any comparable key.
type XSync[K comparable] struct {
	m *xsync.MapOf[K, empty]
}

func NewXSync[K comparable](size uint) *XSync[K] {
	return &XSync[K]{xsync.NewMapOf[K, empty](xsync.WithPresize(int(size)))}
}

func (u *XSync[K]) Put(k K) bool {
	_, loaded := u.m.LoadOrStore(k, empty{})
	return !loaded
}

func (u *XSync[K]) Has(k K) bool {
	_, ok := u.m.Load(k)
	return ok
}

func (u *XSync[K]) Size() uint {
	return uint(u.m.Size())
}

func (u *XSync[K]) Range(f func(K) bool) {
	u.m.Range(func(k K, _ empty) bool {
		return f(k)
	})
}

// Locked makes any set concurrent with a single mutex. It is the baseline the other sets are measured against.
type Locked[E any] struct {
	l sync.Mutex
	s Sets.Set[E]
}

func NewLocked[E any](s Sets.Set[E]) *Locked[E] {
	return &Locked[E]{s: s}
}

func (u *Locked[E]) Put(e E) bool {
	u.l.Lock()
	defer u.l.Unlock()
	return u.s.Put(e)
}

func (u *Locked[E]) Has(e E) bool {
	u.l.Lock()
	defer u.l.Unlock()
	return u.s.Has(e)
}

func (u *Locked[E]) Size() uint {
	u.l.Lock()
	defer u.l.Unlock()
	return u.s.Size()
}

// Range holds the lock for the whole iteration; f must not call back into u.
func (u *Locked[E]) Range(f func(E) bool) {
	u.l.Lock()
	defer u.l.Unlock()
	u.s.Range(f)
}
