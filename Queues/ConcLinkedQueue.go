package Queues

import (
	"sync/atomic"
)

type node[T any] struct {
	v  T
	nx atomic.Pointer[node[T]]
}

// LinkedQ is a Michael-Scott queue. The head is always a sentinel whose successor is the first element.
type LinkedQ[T any] struct {
	head, tail atomic.Pointer[node[T]]
}

func NewLinked[T any]() *LinkedQ[T] {
	q := new(LinkedQ[T])
	a := new(node[T])
	q.head.Store(a)
	q.tail.Store(a)
	return q
}

func (q *LinkedQ[T]) Push(item T) {
	newNode := &node[T]{v: item}
	var oldTail *node[T]
	for added := false; !added; {
		oldTail = q.tail.Load()
		if oldTailNext := oldTail.nx.Load(); oldTailNext != nil {
			//help a lagging tail along.
			q.tail.CompareAndSwap(oldTail, oldTailNext)
		} else {
			added = oldTail.nx.CompareAndSwap(nil, newNode)
		}
	}
	q.tail.CompareAndSwap(oldTail, newNode)
}

func (q *LinkedQ[T]) Pop() (T, error) {
	var first *node[T]
	for removed := false; !removed; {
		oldHead, oldTail := q.head.Load(), q.tail.Load()
		first = oldHead.nx.Load()
		if oldTail == oldHead {
			if first == nil {
				return *new(T), &EmptyQueueError{}
			}
			q.tail.CompareAndSwap(oldTail, first)
		} else {
			removed = q.head.CompareAndSwap(oldHead, first)
		}
	}
	return first.v, nil
}

func (q *LinkedQ[T]) Peek() (v T, ok bool) {
	if first := q.head.Load().nx.Load(); first != nil {
		v, ok = first.v, true
	}
	return
}

func (q *LinkedQ[T]) Empty() bool {
	return q.head.Load().nx.Load() == nil
}

// Drain pops until the queue is empty and appends the items to dst in queue order.
func (q *LinkedQ[T]) Drain(dst []T) []T {
	for {
		v, err := q.Pop()
		if err != nil {
			return dst
		}
		dst = append(dst, v)
	}
}
