package config

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/stochsim/internal/mc"
	"github.com/san-kum/stochsim/internal/sde"
)

const (
	DefaultNrPaths = 10000
	DefaultNrSteps = 200
	DefaultSeed    = 42
	DefaultS0      = 300.0
	DefaultDrift   = 0.01
	DefaultVola    = 50.0 / 365.0
	DefaultDt      = 0.1
)

type Config struct {
	Run    RunConfig    `yaml:"run"`
	GBM    GBMConfig    `yaml:"gbm"`
	Basket BasketConfig `yaml:"basket"`
}

type RunConfig struct {
	NrPaths int    `yaml:"nr_paths"`
	NrSteps int    `yaml:"nr_steps"`
	Seed    uint64 `yaml:"seed"`
	Workers int    `yaml:"workers"`
}

type GBMConfig struct {
	InitialValue float64 `yaml:"initial_value"`
	Drift        float64 `yaml:"drift"`
	Volatility   float64 `yaml:"volatility"`
	Dt           float64 `yaml:"dt"`
	Scheme       string  `yaml:"scheme"` // "euler" or "analytic"
}

type BasketConfig struct {
	Weights          []float64   `yaml:"weights"`
	AssetPrices      []float64   `yaml:"asset_prices"`
	RiskFreeRates    []float64   `yaml:"risk_free_rates"`
	Cholesky         [][]float64 `yaml:"cholesky"`
	Strike           float64     `yaml:"strike"`
	TimeToExpiration float64     `yaml:"time_to_expiration"`
}

func DefaultConfig() *Config {
	return &Config{
		Run: RunConfig{
			NrPaths: DefaultNrPaths,
			NrSteps: DefaultNrSteps,
			Seed:    DefaultSeed,
			Workers: 1,
		},
		GBM: GBMConfig{
			InitialValue: DefaultS0,
			Drift:        DefaultDrift,
			Volatility:   DefaultVola,
			Dt:           DefaultDt,
			Scheme:       "euler",
		},
		Basket: BasketConfig{
			Weights:       []float64{0.25, 0.25, 0.5},
			AssetPrices:   []float64{40.0, 60.0, 100.0},
			RiskFreeRates: []float64{0.01, 0.02, -0.01},
			Cholesky: [][]float64{
				{1.0, 0.05, 0.1},
				{0.0, 0.06, 0.17},
				{0.0, 0.0, 0.8},
			},
			Strike:           230.0,
			TimeToExpiration: 2.0,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SchemeValue maps the yaml scheme name to the sde step rule; unknown names
// fall back to Euler.
func (g GBMConfig) SchemeValue() sde.Scheme {
	if g.Scheme == "analytic" {
		return sde.Analytic
	}
	return sde.Euler
}

// CholeskyMatrix converts the yaml rows to a dense square factor. Ragged
// rows fail with a configuration error.
func (b BasketConfig) CholeskyMatrix() (*mat.Dense, error) {
	d := len(b.Cholesky)
	for i, row := range b.Cholesky {
		if len(row) != d {
			return nil, &mc.ConfigError{
				Field:   "cholesky",
				Detail:  fmt.Sprintf("row %d has %d entries, want %d", i, len(row), d),
				Wrapped: mc.ErrDimensionMismatch,
			}
		}
	}
	m := mat.NewDense(d, d, nil)
	for i, row := range b.Cholesky {
		m.SetRow(i, row)
	}
	return m, nil
}
