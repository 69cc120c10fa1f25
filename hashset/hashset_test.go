package hashset_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metailurini/collections/hashset"
)

func TestEmptySet(t *testing.T) {
	s := hashset.NewString()

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 10, s.Capacity())
	assert.False(t, s.Contains("A"))
	assert.Equal(t, 0, s.ElementsAtIndex(3))
	assert.Equal(t, 0, s.ElementsAtIndex(-1))
	assert.Equal(t, 0, s.ElementsAtIndex(99))
	assert.False(t, s.IsElementAtIndex("A", 99))
}

func TestAddAndContains(t *testing.T) {
	s := hashset.NewString()

	for _, e := range []string{"B", "A", "C"} {
		s.Add(e)
	}
	s.Add("A")

	assert.Equal(t, 3, s.Len())
	for _, e := range []string{"A", "B", "C"} {
		assert.True(t, s.Contains(e))
	}
	assert.False(t, s.Contains("D"))
}

func TestBucketIntrospection(t *testing.T) {
	// Constant hash forces every element into bucket 0, so the chain walk
	// and the out-of-range defaults are both observable.
	s := hashset.New(func(int) uint64 { return 0 })

	s.Add(1)
	s.Add(2)
	s.Add(3)

	assert.Equal(t, 3, s.ElementsAtIndex(0))
	assert.Equal(t, 0, s.ElementsAtIndex(1))
	assert.True(t, s.IsElementAtIndex(2, 0))
	assert.False(t, s.IsElementAtIndex(2, 1))
	assert.False(t, s.IsElementAtIndex(99, 0), "absent element is in no bucket")
}

func TestResizeKeepsMembership(t *testing.T) {
	s := hashset.NewString()

	const n = 100
	for i := 0; i < n; i++ {
		s.Add(fmt.Sprintf("key-%03d", i))
	}

	require.Equal(t, n, s.Len())
	assert.Greater(t, s.Capacity(), 10, "inserting %d elements must trigger resizing", n)
	assert.Less(t, float64(s.Len())/float64(s.Capacity()), 0.8)

	total := 0
	for i := 0; i < s.Capacity(); i++ {
		total += s.ElementsAtIndex(i)
	}
	assert.Equal(t, n, total, "every element lives in exactly one bucket")

	for i := 0; i < n; i++ {
		require.True(t, s.Contains(fmt.Sprintf("key-%03d", i)))
	}
	assert.False(t, s.Contains("key-999"))
}

func TestCloneIsIndependent(t *testing.T) {
	s := hashset.NewString()
	for _, e := range []string{"A", "B", "C"} {
		s.Add(e)
	}

	c := s.Clone()
	c.Add("D")
	s.Add("E")

	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 4, c.Len())
	assert.False(t, s.Contains("D"))
	assert.False(t, c.Contains("E"))
}
