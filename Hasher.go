package Go_MultiMap

import (
	"encoding/binary"
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

// Hasher is a hash seed. Create it using Hasher(maphash.MakeSeed()) style random values or any fixed uint for reproducible layouts. The receivers are thread-safe.
type Hasher uint

// mix folds the seed into h so different seeds give different bucket layouts for the same keys.
func (u Hasher) mix(h uint64) uint {
	h ^= uint64(u)
	h *= 0x9e3779b97f4a7c15
	return uint(h ^ h>>32)
}

// HashBytes hashes the given byte slice.
func (u Hasher) HashBytes(b []byte) uint {
	return u.mix(xxhash.Sum64(b))
}

// HashString directly hashes a string without copying it.
func (u Hasher) HashString(v string) uint {
	return u.mix(xxhash.Sum64String(v))
}

// HashUint hashes v.
func (u Hasher) HashUint(v uint) uint {
	var b [8]byte
	if bits.UintSize == 32 {
		binary.LittleEndian.PutUint32(b[:4], uint32(v))
		return u.mix(xxhash.Sum64(b[:4]))
	}
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	return u.mix(xxhash.Sum64(b[:]))
}

// HashInt hashes v.
func (u Hasher) HashInt(v int) uint {
	return u.HashUint(uint(v))
}

// Identity returns v unchanged. Useful for keys that are already well spread, or for tests that need to control which bucket a key lands in.
func Identity[T ~int | ~uint | ~int32 | ~uint32 | ~int64 | ~uint64](v T) uint {
	return uint(v)
}
