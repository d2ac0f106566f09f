package product

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/stochsim/internal/mc"
)

func sampleParams() BasketOptionParams {
	return BasketOptionParams{
		Weights:       []float64{0.25, 0.25, 0.5},
		AssetPrices:   []float64{40.0, 60.0, 100.0},
		RiskFreeRates: []float64{0.01, 0.02, -0.01},
		Cholesky: mat.NewDense(3, 3, []float64{
			1.0, 0.05, 0.1,
			0.0, 0.06, 0.17,
			0.0, 0.0, 0.8,
		}),
		Strike:           230.0,
		TimeToExpiration: 2.0,
		NrPaths:          500,
		NrSteps:          30,
		Seed:             42,
	}
}

func TestNewBasketOption_WeightValidation(t *testing.T) {
	p := sampleParams()
	p.Weights = []float64{0.3, 0.3, 0.3}

	_, err := NewBasketOption(p)
	if err == nil {
		t.Fatal("expected configuration error, got nil")
	}
	if !errors.Is(err, mc.ErrBadWeights) {
		t.Errorf("expected ErrBadWeights, got %v", err)
	}
}

func TestNewBasketOption_AcceptsThirds(t *testing.T) {
	p := sampleParams()
	third := 1.0 / 3.0
	p.Weights = []float64{third, third, third}

	if _, err := NewBasketOption(p); err != nil {
		t.Errorf("weights of 1/3 each should pass the sum check, got %v", err)
	}
}

func TestNewBasketOption_ShapeValidation(t *testing.T) {
	p := sampleParams()
	p.RiskFreeRates = []float64{0.01, 0.02}

	_, err := NewBasketOption(p)
	if err == nil {
		t.Fatal("expected configuration error, got nil")
	}
	if !errors.Is(err, mc.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestNewBasketOption_CholeskyValidation(t *testing.T) {
	p := sampleParams()
	p.Cholesky = mat.NewDense(2, 2, nil)

	_, err := NewBasketOption(p)
	if !errors.Is(err, mc.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestDt(t *testing.T) {
	p := sampleParams()
	p.TimeToExpiration = 2.0
	p.NrSteps = 100

	opt, err := NewBasketOption(p)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(opt.Dt()-0.02) > 1e-12 {
		t.Errorf("expected dt 0.02, got %f", opt.Dt())
	}
}

func TestCall_Deterministic(t *testing.T) {
	a, err := NewBasketOption(sampleParams())
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewBasketOption(sampleParams())
	if err != nil {
		t.Fatal(err)
	}

	pa, okA := a.Call()
	pb, okB := b.Call()
	if !okA || !okB {
		t.Fatal("expected prices from both options")
	}
	if pa != pb {
		t.Errorf("same seed should price identically: %v != %v", pa, pb)
	}
}

func TestPayoffs_MeanMatchesPrice(t *testing.T) {
	opt, err := NewBasketOption(sampleParams())
	if err != nil {
		t.Fatal(err)
	}

	payoffs := opt.Payoffs(Call)
	if len(payoffs) != 500 {
		t.Fatalf("expected 500 payoffs, got %d", len(payoffs))
	}

	sum := 0.0
	for _, v := range payoffs {
		sum += v
	}
	mean := sum / float64(len(payoffs))

	price, ok := opt.Call()
	if !ok {
		t.Fatal("expected a price")
	}
	if math.Abs(mean-price) > 1e-12 {
		t.Errorf("payoff mean %v differs from Call price %v", mean, price)
	}
}

func TestZeroPaths_NoResult(t *testing.T) {
	p := sampleParams()
	p.NrPaths = 0

	opt, err := NewBasketOption(p)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := opt.Call(); ok {
		t.Error("zero paths should yield no call price")
	}
	if _, ok := opt.Put(); ok {
		t.Error("zero paths should yield no put price")
	}
}

func TestExtremeStrikes(t *testing.T) {
	deepOTM := sampleParams()
	deepOTM.Strike = 1e9

	opt, err := NewBasketOption(deepOTM)
	if err != nil {
		t.Fatal(err)
	}

	call, ok := opt.Call()
	if !ok {
		t.Fatal("expected a call price")
	}
	if call != 0 {
		t.Errorf("deep out-of-the-money call should be worthless, got %v", call)
	}

	put, ok := opt.Put()
	if !ok {
		t.Fatal("expected a put price")
	}
	if put <= 0 {
		t.Errorf("deep in-the-money put should be valuable, got %v", put)
	}
}
