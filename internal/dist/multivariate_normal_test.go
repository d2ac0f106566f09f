package dist

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/stochsim/internal/mc"
)

func testMVN(t *testing.T) *MultivariateNormal {
	t.Helper()
	m, err := NewMultivariateNormal(
		[]float64{0.1, 0.2, 0.3},
		mat.NewDense(3, 3, []float64{
			1.0, 0.5, 0.1,
			0.0, 0.6, 0.7,
			0.0, 0.0, 0.8,
		}),
	)
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}
	return m
}

func TestTransform(t *testing.T) {
	m := testMVN(t)

	// mu + L*z for z = [0.1, -0.1, 0.05].
	got := m.Transform([]float64{0.1, -0.1, 0.05})
	want := []float64{0.155, 0.175, 0.34}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("component %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNewMultivariateNormal_ShapeValidation(t *testing.T) {
	_, err := NewMultivariateNormal([]float64{0.1, 0.2}, mat.NewDense(3, 3, nil))
	if err == nil {
		t.Fatal("expected configuration error, got nil")
	}
	if !errors.Is(err, mc.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestMultivariateNormal_SamplePath(t *testing.T) {
	m := testMVN(t)
	rng := rand.New(rand.NewSource(42))

	draws := m.SamplePath(rng, 10)
	if len(draws) != 10 {
		t.Fatalf("expected 10 draws, got %d", len(draws))
	}
	for i, d := range draws {
		if len(d) != 3 {
			t.Errorf("draw %d: expected dim 3, got %d", i, len(d))
		}
	}
}

func TestMultivariateNormal_Deterministic(t *testing.T) {
	m := testMVN(t)

	a := m.SamplePath(rand.New(rand.NewSource(7)), 5)
	b := m.SamplePath(rand.New(rand.NewSource(7)), 5)

	for i := range a {
		for k := range a[i] {
			if a[i][k] != b[i][k] {
				t.Fatalf("draw %d component %d differs for identical sources", i, k)
			}
		}
	}
}
