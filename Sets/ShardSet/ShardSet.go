package ShardSet

import (
	"math/bits"
	"sync"

	"github.com/g-m-twostay/go-multimap/Sets/HashSet"
)

// cache line padding so neighbouring shard locks don't false share.
const padSize = 64

type shard[E comparable] struct {
	sync.Mutex
	set *HashSet.HashSet[E]
	_   [padSize]byte
}

// ShardSet is a concurrent set made of independently locked HashSets. Elements are routed by the high bits of their hash while each HashSet indexes by the low bits, so one hash function serves both.
// Put, Has and Size may be called concurrently. Range locks one shard at a time, so it only sees a consistent snapshot when nothing is being put.
type ShardSet[E comparable] struct {
	shards []shard[E]
	shift  byte
	HashF  func(E) uint
}

// New ShardSet with 1<<logShards shards, sized for about size elements in total.
// h is the Hopscotch neighborhood of each shard, see HashSet.New.
func New[E comparable](logShards, h byte, size uint, hashF func(E) uint) *ShardSet[E] {
	u := &ShardSet[E]{shards: make([]shard[E], 1<<logShards), shift: byte(bits.UintSize) - logShards, HashF: hashF}
	if logShards == 0 {
		u.shift = 0
	}
	for i := range u.shards {
		u.shards[i].set = HashSet.New[E](h, size>>logShards, hashF)
	}
	return u
}

// shardOf e's hash. Each shard takes the hash as is, so HashF runs once per call.
func (u *ShardSet[E]) shardOf(hash uint) *shard[E] {
	if u.shift == 0 {
		return &u.shards[0]
	}
	return &u.shards[hash>>u.shift]
}

// Put e. Returns true if this call inserted it.
func (u *ShardSet[E]) Put(e E) bool {
	hash := u.HashF(e)
	s := u.shardOf(hash)
	s.Lock()
	defer s.Unlock()
	return s.set.PutHash(e, hash)
}

func (u *ShardSet[E]) Has(e E) bool {
	hash := u.HashF(e)
	s := u.shardOf(hash)
	s.Lock()
	defer s.Unlock()
	return s.set.HasHash(e, hash)
}

func (u *ShardSet[E]) Remove(e E) bool {
	hash := u.HashF(e)
	s := u.shardOf(hash)
	s.Lock()
	defer s.Unlock()
	return s.set.RemoveHash(e, hash)
}

// Size sums the shards.
func (u *ShardSet[E]) Size() (n uint) {
	for i := range u.shards {
		s := &u.shards[i]
		s.Lock()
		n += s.set.Size()
		s.Unlock()
	}
	return
}

func (u *ShardSet[E]) Range(f func(E) bool) {
	for i := range u.shards {
		s := &u.shards[i]
		s.Lock()
		stop := false
		s.set.Range(func(e E) bool {
			stop = !f(e)
			return !stop
		})
		s.Unlock()
		if stop {
			return
		}
	}
}
