package mc

import "golang.org/x/exp/rand"

// Ensemble is the ordered collection of paths produced by one simulation
// run. Insertion order equals generation order.
type Ensemble[P any] []P

// PathSampler produces one full path from the given random source.
//
// Dynamics-backed samplers return paths of length nrSteps+1 with the initial
// state at index 0. Raw innovation sources return the nrSteps draws
// themselves.
type PathSampler[P any] interface {
	SamplePath(rng *rand.Rand, nrSteps int) P
}

type options struct {
	seed    uint64
	seeded  bool
	workers int
}

// Option configures a Simulator at construction time.
type Option func(*options)

// WithSeed makes the simulator reproducible: the same seed yields a
// bit-identical ensemble. Without it the master seed comes from OS entropy.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithWorkers generates paths on n goroutines. The ensemble is identical to
// the single-worker result for the same seed.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}
