package Maps

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestChains_Validate(t *testing.T) {
	var zero Chains[int]
	require.NoError(t, zero.Validate())
	require.True(t, zero.Empty())
	require.Equal(t, 0, zero.Len())
	require.Equal(t, 0, (&Chains[int]{Buckets: []int{}}).Len())

	ok := Chains[int]{Buckets: []int{1, Nil}, Next: []int{Nil, 0}, Keys: []int{4, 4}, Mask: 1, Count: 2}
	require.NoError(t, ok.Validate())
	require.Equal(t, 2, ok.Len())

	cases := map[string]Chains[int]{
		"count without buckets": {Count: 1},
		"mask without buckets":  {Buckets: []int{}, Mask: 3},
		"mask with nil buckets": {Mask: 1},
		"mask mismatch":         {Buckets: []int{Nil, Nil}, Mask: 3},
		"not power of two":      {Buckets: []int{Nil, Nil, Nil}, Mask: 2},
		"links":                 {Buckets: []int{Nil}, Next: []int{Nil}, Keys: []int{1, 2}},
		"count":                 {Buckets: []int{Nil}, Next: []int{Nil}, Keys: []int{1}, Count: 2},
		"negative count":        {Buckets: []int{Nil}, Count: -1},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			require.True(t, errors.Is(c.Validate(), ErrMalformedView))
		})
	}
}

func TestView_Validate(t *testing.T) {
	v := View[int, string]{Chains: Chains[int]{Buckets: []int{0}, Next: []int{Nil}, Keys: []int{3}, Count: 1}}
	require.NoError(t, v.Validate(false))
	require.ErrorIs(t, v.Validate(true), ErrMalformedView)
	v.Values = []string{"x"}
	require.NoError(t, v.Validate(true))
}
