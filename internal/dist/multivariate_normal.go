package dist

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/san-kum/stochsim/internal/mc"
)

// MultivariateNormal is the correlated innovation source: it maps iid
// standard-normal draws z to mu + L*z, where L is a Cholesky factor of the
// target covariance. Only L's shape is validated.
type MultivariateNormal struct {
	mu       []float64
	cholesky *mat.Dense
}

func NewMultivariateNormal(mu []float64, cholesky *mat.Dense) (*MultivariateNormal, error) {
	d := len(mu)
	r, c := cholesky.Dims()
	if r != d || c != d {
		return nil, &mc.ConfigError{
			Field:   "cholesky_factor",
			Detail:  fmt.Sprintf("%dx%d, want %dx%d", r, c, d, d),
			Wrapped: mc.ErrDimensionMismatch,
		}
	}
	muCopy := make([]float64, d)
	copy(muCopy, mu)
	return &MultivariateNormal{mu: muCopy, cholesky: cholesky}, nil
}

func (m *MultivariateNormal) Dim() int { return len(m.mu) }

// Transform maps one iid standard-normal vector z of length Dim to the
// correlated draw mu + L*z.
func (m *MultivariateNormal) Transform(z []float64) []float64 {
	d := m.Dim()

	var lz mat.VecDense
	lz.MulVec(m.cholesky, mat.NewVecDense(d, z))

	out := make([]float64, d)
	for i := 0; i < d; i++ {
		out[i] = m.mu[i] + lz.AtVec(i)
	}
	return out
}

// Rand draws one correlated vector from rng, asset-minor.
func (m *MultivariateNormal) Rand(rng *rand.Rand) []float64 {
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}

	z := make([]float64, m.Dim())
	for i := range z {
		z[i] = norm.Rand()
	}
	return m.Transform(z)
}

// SamplePath returns nrSteps independent correlated draws.
func (m *MultivariateNormal) SamplePath(rng *rand.Rand, nrSteps int) [][]float64 {
	path := make([][]float64, nrSteps)
	for i := range path {
		path[i] = m.Rand(rng)
	}
	return path
}
