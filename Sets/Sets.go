// Package Sets defines the destination side of unique-key extraction. A Set absorbs duplicates: putting an element that is already present is a no-op that returns false.
// Implementations documented as concurrent may be shared by the workers of a parallel visit; Put, Has and Size are then safe to call from many goroutines, and Size is exact once all Put calls have returned. Put reports a new element to exactly one caller unless the implementation says otherwise.
package Sets

type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Size() uint
	Range(func(E) bool)
}

// Ordered sets range in ascending order.
type Ordered[E any] interface {
	Set[E]
	Ascend(func(E) bool)
}

// Collect the elements of s into dst.
func Collect[E any](s Set[E], dst []E) []E {
	s.Range(func(e E) bool {
		dst = append(dst, e)
		return true
	})
	return dst
}
