package prediction

import (
	"math/rand/v2"
	"sync"
)

// RandomSource is the only source of randomness used by the predictor.
type RandomSource interface {
	// IntN returns a uniformly distributed integer in [0, n).
	IntN(n int) int
}

type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (r *lockedRand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

// NewSeeded returns a reproducible source: equal seeds yield equal sequences.
func NewSeeded(seed uint64) RandomSource {
	return &lockedRand{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandom returns a source seeded from the runtime's entropy.
func NewRandom() RandomSource {
	return NewSeeded(rand.Uint64())
}
