package sde

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/san-kum/stochsim/internal/mc"
)

// MultivariateGBM drives d correlated GBM assets with a shared time
// increment. The Cholesky factor is taken on trust: L*L^T must equal the
// target covariance, only its shape is validated.
type MultivariateGBM struct {
	initialValues []float64
	drifts        []float64
	cholesky      *mat.Dense
	dt            float64
}

// NewMultivariateGBM validates that drifts and initial values have the same
// length d and that cholesky is d x d, and fails before any sampling
// otherwise.
func NewMultivariateGBM(initialValues, drifts []float64, cholesky *mat.Dense, dt float64) (*MultivariateGBM, error) {
	d := len(initialValues)
	if len(drifts) != d {
		return nil, &mc.ConfigError{
			Field:   "drifts",
			Detail:  fmt.Sprintf("len %d, want %d", len(drifts), d),
			Wrapped: mc.ErrDimensionMismatch,
		}
	}
	r, c := cholesky.Dims()
	if r != d || c != d {
		return nil, &mc.ConfigError{
			Field:   "cholesky_factor",
			Detail:  fmt.Sprintf("%dx%d, want %dx%d", r, c, d, d),
			Wrapped: mc.ErrDimensionMismatch,
		}
	}
	return &MultivariateGBM{
		initialValues: cloneVec(initialValues),
		drifts:        cloneVec(drifts),
		cholesky:      cholesky,
		dt:            dt,
	}, nil
}

func (m *MultivariateGBM) Dim() int    { return len(m.initialValues) }
func (m *MultivariateGBM) Dt() float64 { return m.dt }

// InitialValues returns a copy of the configured initial state.
func (m *MultivariateGBM) InitialValues() []float64 {
	return cloneVec(m.initialValues)
}

// Step advances every asset one Euler-Maruyama step using the iid innovation
// vector z of length Dim: S' = S + S .* (dt*drift + sqrt(dt)*(L*z)).
func (m *MultivariateGBM) Step(st, z []float64) []float64 {
	d := m.Dim()

	var lz mat.VecDense
	lz.MulVec(m.cholesky, mat.NewVecDense(d, z))

	sqrtDt := math.Sqrt(m.dt)
	next := make([]float64, d)
	for i := 0; i < d; i++ {
		dSt := m.dt*m.drifts[i] + sqrtDt*lz.AtVec(i)
		next[i] = st[i] + dSt*st[i]
	}
	return next
}

// GeneratePath applies Step to each innovation vector, prepending the
// configured initial state.
func (m *MultivariateGBM) GeneratePath(zs [][]float64) [][]float64 {
	path := make([][]float64, 0, len(zs)+1)
	curr := cloneVec(m.initialValues)
	path = append(path, curr)

	for _, z := range zs {
		curr = m.Step(curr, z)
		path = append(path, curr)
	}
	return path
}

// SamplePath draws nrSteps innovation vectors from rng, asset-minor within
// each step, and returns a path of length nrSteps+1.
func (m *MultivariateGBM) SamplePath(rng *rand.Rand, nrSteps int) [][]float64 {
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}

	path := make([][]float64, 0, nrSteps+1)
	curr := cloneVec(m.initialValues)
	path = append(path, curr)

	z := make([]float64, m.Dim())
	for s := 0; s < nrSteps; s++ {
		for i := range z {
			z[i] = norm.Rand()
		}
		curr = m.Step(curr, z)
		path = append(path, curr)
	}
	return path
}

func cloneVec(v []float64) []float64 {
	c := make([]float64, len(v))
	copy(c, v)
	return c
}
