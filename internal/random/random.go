package random

//go:generate mockgen -source=random.go -destination=mocks/mock_source.go -package=mocks

import "math/rand/v2"

// Source provides the random numbers behind every tie-break so tests can
// replace it.
type Source interface {
	// IntN returns a random int in [0, n). n must be positive.
	IntN(n int) int
}

// New returns a deterministic PCG-backed source for the given seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewUnseeded returns a source seeded from the runtime's random state.
func NewUnseeded() *rand.Rand {
	return New(rand.Uint64())
}

// FromSeed picks a deterministic source when seed is non-zero.
func FromSeed(seed uint64) Source {
	if seed == 0 {
		return NewUnseeded()
	}
	return New(seed)
}

// Pick returns a uniformly chosen element of options. A single option does
// not consume randomness.
func Pick(src Source, options []int) int {
	if len(options) == 1 {
		return options[0]
	}
	return options[src.IntN(len(options))]
}
