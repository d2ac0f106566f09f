package dist

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// StandardNormal samples iid N(0,1) innovations. Its "path" is the raw draw
// sequence itself, of length nrSteps.
type StandardNormal struct{}

func (StandardNormal) Rand(rng *rand.Rand) float64 {
	return distuv.Normal{Mu: 0, Sigma: 1, Src: rng}.Rand()
}

func (StandardNormal) SamplePath(rng *rand.Rand, nrSteps int) []float64 {
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}

	zs := make([]float64, nrSteps)
	for i := range zs {
		zs[i] = norm.Rand()
	}
	return zs
}
