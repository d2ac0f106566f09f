package mc

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Simulator couples a path sampler to a seeded random source and produces
// reproducible path ensembles.
//
// Innovations are consumed in path-major, step-minor order from one logical
// stream: path i draws from a substream keyed (seed, i). A fixed seed
// therefore yields a bit-identical ensemble across SimulatePaths,
// SimulatePathsWith and SimulatePathsInPlace, and for any worker count.
type Simulator[P any] struct {
	sampler PathSampler[P]
	seed    uint64
	workers int
}

// New builds a simulator around sampler. Pass WithSeed for reproducible
// ensembles; omitting it opts out of determinism.
func New[P any](sampler PathSampler[P], opts ...Option) *Simulator[P] {
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.seed = entropySeed()
	}
	return &Simulator[P]{sampler: sampler, seed: o.seed, workers: o.workers}
}

// Seed reports the master seed in use.
func (s *Simulator[P]) Seed() uint64 {
	return s.seed
}

// SimulatePaths draws every innovation through the configured sampler.
func (s *Simulator[P]) SimulatePaths(nrPaths, nrSteps int) Ensemble[P] {
	return s.generate(nrPaths, func(rng *rand.Rand) P {
		return s.sampler.SamplePath(rng, nrSteps)
	})
}

// SimulatePathsWith draws raw standard-normal innovations and delegates the
// state transition to step, decoupling the stepping rule from the engine.
func (s *Simulator[P]) SimulatePathsWith(nrPaths, nrSteps int, step func(zs []float64) P) Ensemble[P] {
	return s.generate(nrPaths, func(rng *rand.Rand) P {
		zs := make([]float64, nrSteps)
		fillStandardNormals(rng, zs)
		return step(zs)
	})
}

// SimulatePathsInPlace is like SimulatePathsWith, except step must rewrite
// the innovation buffer into the realized path: on entry buf[1:] holds
// nrSteps standard-normal draws and buf[0] is zero; on return buf must hold
// the full path, initial state included. The buffer becomes the path, so
// each path costs a single allocation.
func SimulatePathsInPlace[P ~[]float64](s *Simulator[P], nrPaths, nrSteps int, step func(buf P)) Ensemble[P] {
	return s.generate(nrPaths, func(rng *rand.Rand) P {
		buf := make(P, nrSteps+1)
		fillStandardNormals(rng, buf[1:])
		step(buf)
		return buf
	})
}

func (s *Simulator[P]) generate(nrPaths int, gen func(rng *rand.Rand) P) Ensemble[P] {
	paths := make(Ensemble[P], nrPaths)
	if nrPaths == 0 {
		return paths
	}
	if s.workers > 1 {
		s.generateParallel(paths, gen)
		return paths
	}
	for i := range paths {
		paths[i] = gen(s.pathRand(i))
	}
	return paths
}

func fillStandardNormals(rng *rand.Rand, zs []float64) {
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}
	for i := range zs {
		zs[i] = norm.Rand()
	}
}
