package mc

import (
	"reflect"
	"testing"

	"golang.org/x/exp/rand"
)

// cumsumSampler is a minimal dynamics stand-in: the state after i steps is
// the running sum of the first i draws, starting from x0.
type cumsumSampler struct {
	x0 float64
}

func (c cumsumSampler) SamplePath(rng *rand.Rand, nrSteps int) []float64 {
	zs := make([]float64, nrSteps)
	fillStandardNormals(rng, zs)
	return c.buildPath(zs)
}

func (c cumsumSampler) buildPath(zs []float64) []float64 {
	path := make([]float64, 0, len(zs)+1)
	path = append(path, c.x0)
	curr := c.x0
	for _, z := range zs {
		curr += z
		path = append(path, curr)
	}
	return path
}

func (c cumsumSampler) buildInPlace(buf []float64) {
	curr := c.x0
	buf[0] = curr
	for i := 1; i < len(buf); i++ {
		curr += buf[i]
		buf[i] = curr
	}
}

func TestSimulatePaths_Shape(t *testing.T) {
	sim := New[[]float64](cumsumSampler{x0: 1.5}, WithSeed(7))
	paths := sim.SimulatePaths(25, 10)

	if len(paths) != 25 {
		t.Fatalf("expected 25 paths, got %d", len(paths))
	}
	for i, p := range paths {
		if len(p) != 11 {
			t.Errorf("path %d: expected length 11, got %d", i, len(p))
		}
		if p[0] != 1.5 {
			t.Errorf("path %d: expected initial value 1.5, got %f", i, p[0])
		}
	}
}

func TestSimulatePaths_Deterministic(t *testing.T) {
	a := New[[]float64](cumsumSampler{}, WithSeed(42)).SimulatePaths(50, 20)
	b := New[[]float64](cumsumSampler{}, WithSeed(42)).SimulatePaths(50, 20)

	if !reflect.DeepEqual(a, b) {
		t.Error("same seed should produce bit-identical ensembles")
	}
}

func TestSimulatePaths_SeedChangesEnsemble(t *testing.T) {
	a := New[[]float64](cumsumSampler{}, WithSeed(1)).SimulatePaths(5, 10)
	b := New[[]float64](cumsumSampler{}, WithSeed(2)).SimulatePaths(5, 10)

	if reflect.DeepEqual(a, b) {
		t.Error("different seeds should produce different ensembles")
	}
}

func TestSimulatePaths_UnseededNotReproducible(t *testing.T) {
	a := New[[]float64](cumsumSampler{}).SimulatePaths(5, 10)
	b := New[[]float64](cumsumSampler{}).SimulatePaths(5, 10)

	if reflect.DeepEqual(a, b) {
		t.Error("unseeded simulators should not reproduce each other")
	}
}

func TestAllocationStrategiesAgree(t *testing.T) {
	sampler := cumsumSampler{x0: 3.0}
	const nrPaths, nrSteps = 40, 15

	direct := New[[]float64](sampler, WithSeed(99)).SimulatePaths(nrPaths, nrSteps)

	withFn := New[[]float64](sampler, WithSeed(99)).SimulatePathsWith(nrPaths, nrSteps, sampler.buildPath)

	simInPlace := New[[]float64](sampler, WithSeed(99))
	inPlace := SimulatePathsInPlace(simInPlace, nrPaths, nrSteps, sampler.buildInPlace)

	if !reflect.DeepEqual(direct, withFn) {
		t.Error("SimulatePaths and SimulatePathsWith disagree for the same seed")
	}
	if !reflect.DeepEqual(direct, inPlace) {
		t.Error("SimulatePaths and SimulatePathsInPlace disagree for the same seed")
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	sampler := cumsumSampler{x0: 1.0}

	seq := New[[]float64](sampler, WithSeed(5)).SimulatePaths(101, 13)
	par := New[[]float64](sampler, WithSeed(5), WithWorkers(4)).SimulatePaths(101, 13)

	if !reflect.DeepEqual(seq, par) {
		t.Error("worker-pool ensemble differs from sequential ensemble")
	}
}

func TestDegenerateInputs(t *testing.T) {
	sim := New[[]float64](cumsumSampler{x0: 2.0}, WithSeed(1))

	empty := sim.SimulatePaths(0, 10)
	if len(empty) != 0 {
		t.Errorf("nrPaths=0: expected empty ensemble, got %d paths", len(empty))
	}

	flat := sim.SimulatePaths(3, 0)
	if len(flat) != 3 {
		t.Fatalf("nrSteps=0: expected 3 paths, got %d", len(flat))
	}
	for i, p := range flat {
		if len(p) != 1 || p[0] != 2.0 {
			t.Errorf("nrSteps=0: path %d should be [2.0], got %v", i, p)
		}
	}
}

func TestWithWorkers_IgnoresNonPositive(t *testing.T) {
	sim := New[[]float64](cumsumSampler{}, WithSeed(1), WithWorkers(0))
	if sim.workers != 1 {
		t.Errorf("expected workers to stay 1, got %d", sim.workers)
	}
}
