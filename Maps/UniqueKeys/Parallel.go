package UniqueKeys

import (
	"sync/atomic"

	"github.com/g-m-twostay/go-multimap/Maps"
	"github.com/g-m-twostay/go-multimap/Maps/Visit"
	"github.com/g-m-twostay/go-multimap/Queues"
	"github.com/g-m-twostay/go-multimap/Sets"
)

// StoreToSetParallel is StoreToSet run by the workers of a parallel visit. s is shared by all of them and must be safe for concurrent Put.
func StoreToSetParallel[K comparable](ch *Maps.Chains[K], s Sets.Set[K], opts ...Visit.Option) error {
	v := Maps.View[K, struct{}]{Chains: *ch}
	return Visit.Run(&v, Visit.Keys[K, struct{}](func(k K) {
		s.Put(k)
	}), opts...)
}

// bucketKeys appends the distinct keys of buckets [lo, hi) to dst. Keys never span buckets, so the result is distinct across calls for disjoint ranges.
func bucketKeys[K comparable](ch *Maps.Chains[K], lo, hi int, dst []K) []K {
	for b := lo; b < hi; b++ {
		head := ch.Buckets[b]
		if head == Maps.Nil {
			continue
		}
		last := ch.Keys[head]
		dst = append(dst, last)
		for i := ch.Next[head]; i != Maps.Nil; i = ch.Next[i] {
			if key := ch.Keys[i]; key != last && !seenBefore(ch, head, i, key) {
				dst = append(dst, key)
				last = key
			}
		}
	}
	return dst
}

// ParallelArray returns the distinct keys of ch without a shared set. Each chunk of buckets is deduplicated by the worker that claimed it and handed over through a lock-free queue.
// The order of the result is unspecified.
func ParallelArray[K comparable](ch *Maps.Chains[K], opts ...Visit.Option) ([]K, error) {
	if err := ch.Validate(); err != nil {
		return nil, err
	}
	q := Queues.NewLinked[[]K]()
	var n atomic.Int64
	if err := Visit.Ranges(ch.Len(), func(lo, hi int) {
		if keys := bucketKeys(ch, lo, hi, nil); len(keys) > 0 {
			n.Add(int64(len(keys)))
			q.Push(keys)
		}
	}, opts...); err != nil {
		return nil, err
	}
	res := make([]K, 0, n.Load())
	for _, part := range q.Drain(nil) {
		res = append(res, part...)
	}
	return res, nil
}

// CountParallel counts the distinct keys of ch with the same per-chunk deduplication as ParallelArray, keeping only the counts.
func CountParallel[K comparable](ch *Maps.Chains[K], opts ...Visit.Option) (int, error) {
	if err := ch.Validate(); err != nil {
		return 0, err
	}
	var n atomic.Int64
	err := Visit.Ranges(ch.Len(), func(lo, hi int) {
		var buf [64]K
		for b := lo; b < hi; b++ {
			n.Add(int64(len(bucketKeys(ch, b, b+1, buf[:0]))))
		}
	}, opts...)
	return int(n.Load()), err
}
