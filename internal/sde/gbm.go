package sde

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Scheme selects the discretization of the GBM step rule. The two schemes
// are numerically distinct: Euler carries a discretization bias that the
// exact log-normal update does not.
type Scheme int

const (
	// Euler applies the Euler-Maruyama update S' = S + S*(mu*dt + sigma*sqrt(dt)*z).
	Euler Scheme = iota
	// Analytic applies the exact update S' = S*exp((mu - sigma^2/2)*dt + sigma*sqrt(dt)*z).
	Analytic
)

// GBM is geometric Brownian motion, dS/S = mu dt + sigma dW, discretized
// with time increment dt. Parameters are fixed at construction.
type GBM struct {
	initialValue float64
	mu           float64
	sigma        float64
	dt           float64
	scheme       Scheme
}

func NewGBM(initialValue, drift, vola, dt float64, scheme Scheme) *GBM {
	return &GBM{
		initialValue: initialValue,
		mu:           drift,
		sigma:        vola,
		dt:           dt,
		scheme:       scheme,
	}
}

func (g *GBM) InitialValue() float64 { return g.initialValue }
func (g *GBM) Dt() float64           { return g.dt }

// Step advances one Euler-Maruyama step.
func (g *GBM) Step(st, z float64) float64 {
	dSt := st * (g.mu*g.dt + g.sigma*math.Sqrt(g.dt)*z)
	return st + dSt
}

// StepAnalytic advances one step of the exact log-normal solution.
func (g *GBM) StepAnalytic(st, z float64) float64 {
	ret := g.dt*(g.mu-g.sigma*g.sigma/2) + math.Sqrt(g.dt)*g.sigma*z
	return st * math.Exp(ret)
}

func (g *GBM) step(st, z float64) float64 {
	if g.scheme == Analytic {
		return g.StepAnalytic(st, z)
	}
	return g.Step(st, z)
}

// GeneratePath applies the configured step rule to each innovation,
// prepending the initial state. The result has length len(zs)+1.
func (g *GBM) GeneratePath(initial float64, zs []float64) []float64 {
	path := make([]float64, 0, len(zs)+1)
	path = append(path, initial)

	curr := initial
	for _, z := range zs {
		curr = g.step(curr, z)
		path = append(path, curr)
	}
	return path
}

// GeneratePathInPlace rewrites buf into the realized path: on entry buf[1:]
// holds the innovations, on return buf[0] is the initial value and buf[i]
// the state after i steps. Output matches GeneratePath for the same draws.
func (g *GBM) GeneratePathInPlace(buf []float64) {
	if len(buf) == 0 {
		return
	}
	curr := g.initialValue
	buf[0] = curr
	for i := 1; i < len(buf); i++ {
		curr = g.step(curr, buf[i])
		buf[i] = curr
	}
}

// SamplePath draws its innovations from rng and returns a path of length
// nrSteps+1.
func (g *GBM) SamplePath(rng *rand.Rand, nrSteps int) []float64 {
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}

	path := make([]float64, nrSteps+1)
	curr := g.initialValue
	path[0] = curr
	for i := 1; i <= nrSteps; i++ {
		curr = g.step(curr, norm.Rand())
		path[i] = curr
	}
	return path
}
