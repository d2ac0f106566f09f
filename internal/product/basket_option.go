package product

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/stochsim/internal/mc"
	"github.com/san-kum/stochsim/internal/sde"
)

// weightTol is the absolute tolerance on the basket-weight sum; exact float
// equality would reject weights like 1/3.
const weightTol = 1e-9

// OptionKind selects the payoff direction.
type OptionKind int

const (
	Call OptionKind = iota
	Put
)

// BasketOptionParams configures a European basket option priced by Monte
// Carlo. Cholesky row/column indices must be aligned with the indices of
// Weights, AssetPrices and RiskFreeRates.
type BasketOptionParams struct {
	Weights       []float64
	AssetPrices   []float64
	RiskFreeRates []float64
	Cholesky      *mat.Dense

	// Strike is the exercise price of the basket.
	Strike float64
	// TimeToExpiration is (T - t) in years.
	TimeToExpiration float64

	NrPaths int
	NrSteps int
	Seed    uint64
	Workers int
}

// BasketOption prices a European option on a weighted basket of correlated
// assets by simulating a multivariate GBM ensemble under the risk-free
// drifts and discounting the average terminal payoff.
type BasketOption struct {
	p BasketOptionParams
}

// NewBasketOption validates weights and shapes up front; pricing itself
// cannot fail on configuration.
func NewBasketOption(p BasketOptionParams) (*BasketOption, error) {
	sum := floats.Sum(p.Weights)
	if math.Abs(sum-1.0) > weightTol {
		return nil, &mc.ConfigError{
			Field:   "weights",
			Detail:  fmt.Sprintf("sum %v", sum),
			Wrapped: mc.ErrBadWeights,
		}
	}
	d := len(p.Weights)
	if len(p.AssetPrices) != d || len(p.RiskFreeRates) != d {
		return nil, &mc.ConfigError{
			Field:   "asset_prices/risk_free_rates",
			Detail:  fmt.Sprintf("len %d/%d, want %d", len(p.AssetPrices), len(p.RiskFreeRates), d),
			Wrapped: mc.ErrDimensionMismatch,
		}
	}
	if _, err := sde.NewMultivariateGBM(p.AssetPrices, p.RiskFreeRates, p.Cholesky, 1.0); err != nil {
		return nil, err
	}
	return &BasketOption{p: p}, nil
}

// Dt is the time increment of one simulated step.
func (b *BasketOption) Dt() float64 {
	return b.p.TimeToExpiration / float64(b.p.NrSteps)
}

// Call returns the discounted Monte Carlo price of the call. The second
// return is false when no path produced a payoff (NrPaths == 0).
func (b *BasketOption) Call() (float64, bool) {
	disc := b.discountFactor(b.p.TimeToExpiration)
	return b.samplePayoffs(func(terminal []float64) float64 {
		return math.Max(floats.Dot(terminal, b.p.Weights)-b.p.Strike, 0) * disc
	})
}

// Put returns the discounted Monte Carlo price of the put.
func (b *BasketOption) Put() (float64, bool) {
	disc := b.discountFactor(b.p.TimeToExpiration)
	return b.samplePayoffs(func(terminal []float64) float64 {
		return math.Max(b.p.Strike-floats.Dot(terminal, b.p.Weights), 0) * disc
	})
}

// Payoffs simulates the ensemble once and returns the discounted payoff of
// every path in generation order. Useful for convergence tracking; the mean
// of the returned slice equals the corresponding Call or Put price.
func (b *BasketOption) Payoffs(kind OptionKind) []float64 {
	disc := b.discountFactor(b.p.TimeToExpiration)
	paths := b.simulate()

	payoffs := make([]float64, 0, len(paths))
	for _, path := range paths {
		if len(path) == 0 {
			continue
		}
		basket := floats.Dot(path[len(path)-1], b.p.Weights)
		var v float64
		if kind == Put {
			v = math.Max(b.p.Strike-basket, 0)
		} else {
			v = math.Max(basket-b.p.Strike, 0)
		}
		payoffs = append(payoffs, v*disc)
	}
	return payoffs
}

func (b *BasketOption) samplePayoffs(payoff func(terminal []float64) float64) (float64, bool) {
	paths := b.simulate()
	eval := mc.NewPathEvaluator(paths)
	return eval.EvaluateAverage(func(path [][]float64) (float64, bool) {
		if len(path) == 0 {
			return 0, false
		}
		return payoff(path[len(path)-1]), true
	})
}

func (b *BasketOption) simulate() mc.Ensemble[[][]float64] {
	// Shapes were validated in NewBasketOption.
	gbm, err := sde.NewMultivariateGBM(b.p.AssetPrices, b.p.RiskFreeRates, b.p.Cholesky, b.Dt())
	if err != nil {
		return nil
	}
	opts := []mc.Option{mc.WithSeed(b.p.Seed)}
	if b.p.Workers > 1 {
		opts = append(opts, mc.WithWorkers(b.p.Workers))
	}
	sim := mc.New[[][]float64](gbm, opts...)
	return sim.SimulatePaths(b.p.NrPaths, b.p.NrSteps)
}

func (b *BasketOption) discountFactor(t float64) float64 {
	return math.Exp(-t * floats.Dot(b.p.RiskFreeRates, b.p.Weights))
}
