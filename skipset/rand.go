package skipset

import "time"

const defaultSeed = uint64(0xdeadbeefcafebabe)

func newRandomSeed() uint64 {
	seed := uint64(time.Now().UnixNano())
	if seed == 0 {
		seed = defaultSeed
	}
	return seed
}

// rng is a small xorshift generator. The containers are single-threaded, so
// the state needs no synchronization.
type rng struct {
	state uint64
}

func newRNG() *rng {
	return &rng{state: newRandomSeed()}
}

func newRNGWithSeed(seed uint64) *rng {
	if seed == 0 {
		seed = defaultSeed
	}
	return &rng{state: seed}
}

func (r *rng) next() uint64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	if x == 0 {
		x = defaultSeed
	}
	r.state = x
	return x * 2685821657736338717
}
