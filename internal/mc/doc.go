// Package mc provides the Monte Carlo path-simulation engine.
//
// The package defines the generic orchestration layer that couples a seeded
// pseudo-random source to a path sampler and produces reproducible path
// ensembles:
//
//   - [PathSampler]: anything that can generate one path from a random source
//   - [Simulator]: produces an [Ensemble] under three allocation strategies
//   - [PathEvaluator]: reduces an ensemble to a scalar statistic
//
// # Example
//
//	gbm := sde.NewGBM(300, 0.01, 50.0/365.0, 0.1, sde.Euler)
//	sim := mc.New[[]float64](gbm, mc.WithSeed(42))
//	paths := sim.SimulatePaths(10_000, 200)
//	eval := mc.NewPathEvaluator(paths)
//	avg, ok := eval.EvaluateAverage(func(p []float64) (float64, bool) {
//		return p[len(p)-1], true
//	})
//
// # Determinism
//
// Every path draws from a substream keyed (masterSeed, pathIndex). The same
// seed produces a bit-identical ensemble regardless of allocation strategy
// or worker count. Constructing a simulator without WithSeed opts out: the
// master seed then comes from OS entropy. The engine itself never touches
// ambient or global randomness.
package mc
