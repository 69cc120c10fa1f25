package skipset

// Promoter decides, once per candidate level immediately after a successful
// insertion, whether the inserted element's tower should extend one level
// higher. Each call is an independent decision; Add keeps asking until the
// first false answer (or until the tower height cap).
//
// Clone must return a functionally equivalent Promoter with an independent
// randomness source, so a cloned set never shares state with its origin.
type Promoter[E any] interface {
	ShouldPromote(element E) bool
	Clone() Promoter[E]
}

// coinFlip is the default Promoter: a fair coin per level, which makes tower
// heights geometrically distributed with mean 2 and keeps search and insert
// at expected O(log n).
type coinFlip[E any] struct {
	rng *rng
}

// NewCoinFlip returns the default promotion policy.
func NewCoinFlip[E any]() Promoter[E] {
	return &coinFlip[E]{rng: newRNG()}
}

func (c *coinFlip[E]) ShouldPromote(E) bool {
	return c.rng.next()&1 == 1
}

func (c *coinFlip[E]) Clone() Promoter[E] {
	return NewCoinFlip[E]()
}
