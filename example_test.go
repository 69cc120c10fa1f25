package collections_test

import (
	"fmt"

	"github.com/metailurini/collections"
	"github.com/metailurini/collections/dlist"
	"github.com/metailurini/collections/hashset"
	"github.com/metailurini/collections/skipset"
)

// Both set implementations satisfy the same contract, so callers can swap
// one for the other.
func ExampleSet() {
	sets := []collections.Set[string]{
		skipset.NewOrdered[string](),
		hashset.NewString(),
	}

	for _, s := range sets {
		s.Add("B")
		s.Add("A")
		s.Add("A")
		fmt.Println(s.Len(), s.Contains("A"), s.Contains("C"))
	}

	// Output:
	// 2 true false
	// 2 true false
}

func ExampleIterator() {
	l := dlist.New[string]()
	l.PushBack("one")
	l.PushBack("two")
	l.PushBack("three")

	var it collections.Iterator[string] = l.Iterator()
	for it.HasNext() {
		v, _ := it.Next()
		fmt.Println(v)
	}

	// Output:
	// one
	// two
	// three
}
