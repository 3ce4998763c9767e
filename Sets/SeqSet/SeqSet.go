// Package SeqSet wraps sequential third-party containers as Sets. None of them are safe for concurrent use; wrap them in ConcSet.Locked for that.
// The tree backed sets are ordered and give sorted unique keys through Ascend.
package SeqSet

import (
	"cmp"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"golang.org/x/exp/constraints"
)

// degree of the B-tree nodes; 32 is what google/btree recommends for in-memory use.
const degree = 32

// BTree is an ordered set over google/btree.
type BTree[K constraints.Ordered] struct {
	t *btree.BTreeG[K]
}

func NewBTree[K constraints.Ordered]() *BTree[K] {
	return &BTree[K]{btree.NewG[K](degree, func(a, b K) bool { return a < b })}
}

func (u *BTree[K]) Put(k K) bool {
	_, replaced := u.t.ReplaceOrInsert(k)
	return !replaced
}

func (u *BTree[K]) Has(k K) bool {
	return u.t.Has(k)
}

func (u *BTree[K]) Size() uint {
	return uint(u.t.Len())
}

func (u *BTree[K]) Range(f func(K) bool) {
	u.t.Ascend(btree.ItemIteratorG[K](f))
}

func (u *BTree[K]) Ascend(f func(K) bool) {
	u.t.Ascend(btree.ItemIteratorG[K](f))
}

type llrbItem[K constraints.Ordered] struct {
	k K
}

func (a llrbItem[K]) Less(than llrb.Item) bool {
	return a.k < than.(llrbItem[K]).k
}

// LLRB is an ordered set over a left-leaning red-black tree.
type LLRB[K constraints.Ordered] struct {
	t *llrb.LLRB
}

func NewLLRB[K constraints.Ordered]() *LLRB[K] {
	return &LLRB[K]{llrb.New()}
}

func (u *LLRB[K]) Put(k K) bool {
	return u.t.ReplaceOrInsert(llrbItem[K]{k}) == nil
}

func (u *LLRB[K]) Has(k K) bool {
	return u.t.Has(llrbItem[K]{k})
}

func (u *LLRB[K]) Size() uint {
	return uint(u.t.Len())
}

func (u *LLRB[K]) Range(f func(K) bool) {
	u.Ascend(f)
}

func (u *LLRB[K]) Ascend(f func(K) bool) {
	min := u.t.Min()
	if min == nil {
		return
	}
	u.t.AscendGreaterOrEqual(min, func(i llrb.Item) bool {
		return f(i.(llrbItem[K]).k)
	})
}

// Tree is an ordered set over the gods red-black tree set.
type Tree[K constraints.Ordered] struct {
	s *treeset.Set
}

func NewTree[K constraints.Ordered]() *Tree[K] {
	return &Tree[K]{treeset.NewWith(func(a, b interface{}) int {
		return cmp.Compare(a.(K), b.(K))
	})}
}

func (u *Tree[K]) Put(k K) bool {
	if u.s.Contains(k) {
		return false
	}
	u.s.Add(k)
	return true
}

func (u *Tree[K]) Has(k K) bool {
	return u.s.Contains(k)
}

func (u *Tree[K]) Size() uint {
	return uint(u.s.Size())
}

func (u *Tree[K]) Range(f func(K) bool) {
	u.Ascend(f)
}

func (u *Tree[K]) Ascend(f func(K) bool) {
	for it := u.s.Iterator(); it.Next(); {
		if !f(it.Value().(K)) {
			return
		}
	}
}

// Hash is an unordered set over the gods hash set.
type Hash[K comparable] struct {
	s *hashset.Set
}

func NewHash[K comparable]() *Hash[K] {
	return &Hash[K]{hashset.New()}
}

func (u *Hash[K]) Put(k K) bool {
	if u.s.Contains(k) {
		return false
	}
	u.s.Add(k)
	return true
}

func (u *Hash[K]) Has(k K) bool {
	return u.s.Contains(k)
}

func (u *Hash[K]) Size() uint {
	return uint(u.s.Size())
}

// Range over a copy of the elements.
func (u *Hash[K]) Range(f func(K) bool) {
	for _, v := range u.s.Values() {
		if !f(v.(K)) {
			return
		}
	}
}
