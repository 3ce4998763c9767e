package SeqSet

import (
	"golang.org/x/exp/constraints"
)

type sbNode[K constraints.Ordered] struct {
	k    K
	l, r *sbNode[K]
	sz   uint
}

// SB is an ordered set over a size balanced tree. Subtree sizes make Rank and Select O(log n).
// A sentinel with sz=0 that links to itself replaces nil children.
type SB[K constraints.Ordered] struct {
	root, nilPtr *sbNode[K]
}

func NewSB[K constraints.Ordered]() *SB[K] {
	z := new(sbNode[K])
	z.l, z.r = z, z
	return &SB[K]{z, z}
}

func rotL[K constraints.Ordered](n **sbNode[K]) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	rc.sz = r.sz
	r.sz = r.l.sz + r.r.sz + 1
	*n = rc
}

func rotR[K constraints.Ordered](n **sbNode[K]) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	lc.sz = r.sz
	r.sz = r.l.sz + r.r.sz + 1
	*n = lc
}

// maintain restores the size property at *cur after the right (or left) subtree grew.
func (u *SB[K]) maintain(cur **sbNode[K], rightBigger bool) {
	c := *cur
	if rc, lc := c.r, c.l; rightBigger {
		if rc.r.sz > lc.sz {
			rotL(cur)
		} else if rc.l.sz > lc.sz {
			rotR(&c.r)
			rotL(cur)
		} else {
			return
		}
	} else {
		if lc.l.sz > rc.sz {
			rotR(cur)
		} else if lc.r.sz > rc.sz {
			rotL(&c.l)
			rotR(cur)
		} else {
			return
		}
	}
	top := *cur
	u.maintain(&top.l, false)
	u.maintain(&top.r, true)
	u.maintain(cur, false)
	u.maintain(cur, true)
}

func (u *SB[K]) put(cur **sbNode[K], k K) bool {
	c := *cur
	if c == u.nilPtr {
		*cur = &sbNode[K]{k, u.nilPtr, u.nilPtr, 1}
		return true
	}
	var added bool
	if k < c.k {
		added = u.put(&c.l, k)
	} else if k == c.k {
		return false
	} else {
		added = u.put(&c.r, k)
	}
	if added {
		c.sz++
		u.maintain(cur, k > c.k)
	}
	return added
}

// Put is recursive; the depth is O(log n).
func (u *SB[K]) Put(k K) bool {
	return u.put(&u.root, k)
}

func (u *SB[K]) Has(k K) bool {
	for cur := u.root; cur != u.nilPtr; {
		if k < cur.k {
			cur = cur.l
		} else if k == cur.k {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

func (u *SB[K]) Size() uint {
	return u.root.sz
}

func (u *SB[K]) ascend(c *sbNode[K], f func(K) bool) bool {
	return c == u.nilPtr || (u.ascend(c.l, f) && f(c.k) && u.ascend(c.r, f))
}

func (u *SB[K]) Range(f func(K) bool) {
	u.ascend(u.root, f)
}

func (u *SB[K]) Ascend(f func(K) bool) {
	u.ascend(u.root, f)
}

// Rank of k in ascending order starting from 1, or 0 if k isn't in the set.
func (u *SB[K]) Rank(k K) uint {
	var ra uint
	for cur := u.root; cur != u.nilPtr; {
		if k < cur.k {
			cur = cur.l
		} else if k == cur.k {
			return ra + cur.l.sz + 1
		} else {
			ra += cur.l.sz + 1
			cur = cur.r
		}
	}
	return 0
}

// Select the i-th smallest element, 1<=i<=Size().
func (u *SB[K]) Select(i uint) (k K, ok bool) {
	if i == 0 || i > u.root.sz {
		return
	}
	cur := u.root
	for {
		if ls := cur.l.sz; i <= ls {
			cur = cur.l
		} else if i == ls+1 {
			return cur.k, true
		} else {
			i -= ls + 1
			cur = cur.r
		}
	}
}
