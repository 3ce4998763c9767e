package Maps

// MultiMap is the table side of a view: something that holds many values per key and can hand out its arenas.
type MultiMap[K comparable, V any] interface {
	Viewer[K, V]
	Add(K, V)
	Has(K) bool
	Values(K, func(*V) bool)
	Size() uint
}
