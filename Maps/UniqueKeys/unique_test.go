package UniqueKeys

import (
	"slices"
	"strconv"
	"testing"

	Go_MultiMap "github.com/g-m-twostay/go-multimap"
	"github.com/g-m-twostay/go-multimap/Maps"
	"github.com/g-m-twostay/go-multimap/Maps/MultiMap"
	"github.com/g-m-twostay/go-multimap/Maps/Visit"
	"github.com/g-m-twostay/go-multimap/Sets"
	"github.com/g-m-twostay/go-multimap/Sets/ConcSet"
	"github.com/g-m-twostay/go-multimap/Sets/HashSet"
	"github.com/g-m-twostay/go-multimap/Sets/SeqSet"
	"github.com/g-m-twostay/go-multimap/Sets/ShardSet"
	"github.com/stretchr/testify/require"
)

const (
	testUniqueN = 1000
	testTotalN  = 20013
)

var testHash = Go_MultiMap.Hasher(5).HashInt

// build adds total/unique values for each of the keys 0..unique-1, and the remainder to key 0.
func build(logBuckets byte, unique, total int) *MultiMap.MultiMap[int, int] {
	M := MultiMap.New[int, int](logBuckets, uint(total), testHash)
	per := total / unique
	for k := 0; k < unique; k++ {
		for j := 0; j < per; j++ {
			M.Add(k, j)
		}
	}
	for n := per * unique; n < total; n++ {
		M.Add(0, n)
	}
	return M
}

func keysUpTo(n int) []int {
	res := make([]int, n)
	for i := range res {
		res[i] = i
	}
	return res
}

// allCounts runs every counting strategy on ch.
func allCounts(t *testing.T, ch *Maps.Chains[int]) map[string]int {
	res := map[string]int{
		"cursor": Count(ch),
		"sorted": CountSorted(ch),
	}
	hs := HashSet.New[int](16, uint(SizeHint(ch)), testHash)
	res["hashset"] = int(StoreToSet(ch, hs))
	res["btree"] = int(StoreToSet[int](ch, SeqSet.NewBTree[int]()))
	res["gods"] = int(StoreToSet[int](ch, SeqSet.NewHash[int]()))

	ss := ShardSet.New[int](3, 16, 0, testHash)
	require.NoError(t, StoreToSetParallel[int](ch, ss, Visit.WithMinChunk(4)))
	res["shardset"] = int(ss.Size())
	xs := ConcSet.NewXSync[int](0)
	require.NoError(t, StoreToSetParallel[int](ch, xs, Visit.WithMinChunk(1), Visit.WithWorkers(3)))
	res["xsync"] = int(xs.Size())

	n, err := CountParallel(ch, Visit.WithMinChunk(2))
	require.NoError(t, err)
	res["parallel count"] = n
	arr, err := ParallelArray(ch, Visit.WithMinChunk(16))
	require.NoError(t, err)
	res["parallel array"] = len(arr)
	return res
}

func requireAll(t *testing.T, ch *Maps.Chains[int], want int) {
	for name, got := range allCounts(t, ch) {
		require.Equal(t, want, got, name)
	}
}

func TestUnique_Agree(t *testing.T) {
	for _, logBuckets := range []byte{0, 3, 10, 14} {
		M := build(logBuckets, testUniqueN, testTotalN)
		v := M.View()
		requireAll(t, &v.Chains, testUniqueN)
		require.Equal(t, keysUpTo(testUniqueN), SortedArray(&v.Chains, nil))

		arr := Array(&v.Chains, nil)
		slices.Sort(arr)
		require.Equal(t, keysUpTo(testUniqueN), arr)
	}
}

func TestUnique_Empty(t *testing.T) {
	var zero Maps.Chains[int]
	requireAll(t, &zero, 0)
	require.Nil(t, SortedArray(&zero, nil))

	v := MultiMap.New[int, int](6, 0, testHash).View()
	requireAll(t, &v.Chains, 0)
	c := NewCursor[int]()
	require.False(t, c.Next(&v.Chains))
	require.False(t, c.Next(&v.Chains), "exhausted cursor stays exhausted")
}

func TestUnique_OneKey(t *testing.T) {
	for _, n := range []int{1, 2, 500} {
		M := MultiMap.New[int, int](4, 0, testHash)
		for i := 0; i < n; i++ {
			M.Add(42, i)
		}
		v := M.View()
		requireAll(t, &v.Chains, 1)
		require.Equal(t, []int{42}, Array(&v.Chains, nil))
	}
}

func TestCursor_EachKeyOnce(t *testing.T) {
	v := build(5, testUniqueN, testTotalN).View()
	seen := make(map[int]int, testUniqueN)
	c := NewCursor[int]()
	for c.Next(&v.Chains) {
		seen[c.Key]++
	}
	require.Len(t, seen, testUniqueN)
	for k, n := range seen {
		require.Equal(t, 1, n, k)
	}
	require.Equal(t, v.Mask, c.Bucket)
}

// Every key lands in the single bucket and insertions alternate, so the chain is a b c a b c ...
func TestCursor_Interleaved(t *testing.T) {
	M := MultiMap.New[string, int](0, 0, Go_MultiMap.Hasher(0).HashString)
	keys := []string{"a", "b", "c", "d"}
	for i := 0; i < 10; i++ {
		for j, k := range keys {
			M.Add(k, i*len(keys)+j)
		}
	}
	M.Add("b", -1)
	M.Add("b", -2)
	v := M.View()
	got := Array(&v.Chains, nil)
	require.Len(t, got, len(keys))
	require.ElementsMatch(t, keys, got)
	require.Equal(t, 4, CountSorted(&v.Chains))
	n, err := CountParallel(&v.Chains)
	require.NoError(t, err)
	require.Equal(t, 4, n)
}

func TestCursor_Restart(t *testing.T) {
	v := build(7, 300, 5000).View()
	c := NewCursor[int]()
	var first []int
	for c.Next(&v.Chains) {
		first = append(first, c.Key)
	}
	c.Reset()
	var second []int
	for c.Next(&v.Chains) {
		second = append(second, c.Key)
	}
	require.Len(t, first, 300)
	require.Equal(t, first, second)

	stopped := 0
	Range(&v.Chains, func(int) bool {
		stopped++
		return stopped < 10
	})
	require.Equal(t, 10, stopped)
}

// Keys chosen with the identity hash so the bucket of each key is known: 1 and 9 share bucket 1 of 8.
func TestCursor_Layout(t *testing.T) {
	M := MultiMap.New[int, int](3, 0, Go_MultiMap.Identity[int])
	for _, k := range []int{1, 9, 1, 3, 9, 7, 7} {
		M.Add(k, 0)
	}
	v := M.View()
	c := NewCursor[int]()
	var got []int
	var buckets []int
	for c.Next(&v.Chains) {
		got = append(got, c.Key)
		buckets = append(buckets, c.Bucket)
	}
	//bucket 1 chain, newest first: 9 1 9 1.
	require.Equal(t, []int{9, 1, 3, 7}, got)
	require.Equal(t, []int{1, 1, 3, 7}, buckets)
}

func TestSortedArrayFunc(t *testing.T) {
	M := MultiMap.New[string, int](4, 0, Go_MultiMap.Hasher(8).HashString)
	for i := 0; i < 100; i++ {
		M.Add(strconv.Itoa(i%17), i)
	}
	v := M.View()
	got := SortedArrayFunc(&v.Chains, nil, func(a, b string) int {
		x, _ := strconv.Atoi(a)
		y, _ := strconv.Atoi(b)
		return x - y
	})
	want := make([]string, 17)
	for i := range want {
		want[i] = strconv.Itoa(i)
	}
	require.Equal(t, want, got)
}

func TestStoreToSet_Ordered(t *testing.T) {
	v := build(6, 200, 1000).View()
	for _, s := range []Sets.Ordered[int]{SeqSet.NewBTree[int](), SeqSet.NewLLRB[int](), SeqSet.NewTree[int]()} {
		require.Equal(t, uint(200), StoreToSet[int](&v.Chains, s))
		require.Zero(t, StoreToSet[int](&v.Chains, s), "second pass adds nothing")
		var got []int
		s.Ascend(func(k int) bool {
			got = append(got, k)
			return true
		})
		require.Equal(t, keysUpTo(200), got)
	}
}

func TestParallel_SameKeySet(t *testing.T) {
	v := build(9, testUniqueN, testTotalN).View()
	want := SortedArray(&v.Chains, nil)
	for _, chunk := range []int{1, 7, 64, 4096} {
		for _, workers := range []int{1, 2, 5} {
			opts := []Visit.Option{Visit.WithMinChunk(chunk), Visit.WithWorkers(workers)}

			arr, err := ParallelArray(&v.Chains, opts...)
			require.NoError(t, err)
			slices.Sort(arr)
			require.Equal(t, want, arr)

			for _, s := range []Sets.Set[int]{
				ShardSet.New[int](4, 16, 0, testHash),
				ConcSet.NewXSync[int](testUniqueN),
				ConcSet.NewHax[int](0),
				ConcSet.NewCornelk[int](testUniqueN),
				ConcSet.NewLocked[int](HashSet.New[int](16, 0, testHash)),
			} {
				require.NoError(t, StoreToSetParallel(&v.Chains, s, opts...))
				require.Equal(t, uint(len(want)), s.Size())
				got := Sets.Collect[int](s, nil)
				slices.Sort(got)
				require.Equal(t, want, got)
			}
		}
	}
}

func TestParallel_Malformed(t *testing.T) {
	bad := Maps.Chains[int]{Buckets: []int{Maps.Nil, Maps.Nil, Maps.Nil}, Mask: 2}
	_, err := ParallelArray(&bad)
	require.ErrorIs(t, err, Maps.ErrMalformedView)
	_, err = CountParallel(&bad)
	require.ErrorIs(t, err, Maps.ErrMalformedView)
	require.ErrorIs(t, StoreToSetParallel[int](&bad, ConcSet.NewXSync[int](0)), Maps.ErrMalformedView)

	noBuckets := Maps.Chains[int]{Buckets: []int{}, Mask: 3}
	_, err = ParallelArray(&noBuckets)
	require.ErrorIs(t, err, Maps.ErrMalformedView)
	_, err = CountParallel(&noBuckets)
	require.ErrorIs(t, err, Maps.ErrMalformedView)

	v := build(3, 10, 100).View()
	_, err = ParallelArray(&v.Chains, Visit.WithWorkers(0))
	require.ErrorIs(t, err, Visit.ErrBadConfig)
}
