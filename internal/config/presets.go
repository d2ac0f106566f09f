package config

import "sort"

// presets are ready-made scenarios; numbers match the regression fixtures
// used in the package tests.
var presets = map[string]func() *Config{
	"stock": func() *Config {
		return DefaultConfig()
	},
	"basket": func() *Config {
		cfg := DefaultConfig()
		cfg.Run.NrPaths = 10000
		cfg.Run.NrSteps = 300
		return cfg
	},
	"basket-uncorrelated": func() *Config {
		cfg := DefaultConfig()
		cfg.Run.NrPaths = 10000
		cfg.Run.NrSteps = 100
		cfg.Basket = BasketConfig{
			Weights:       []float64{0.5, 0.5},
			AssetPrices:   []float64{102.0, 102.0},
			RiskFreeRates: []float64{0.02, 0.02},
			Cholesky: [][]float64{
				{0.2, 0.0},
				{0.0, 0.2},
			},
			Strike:           100.0,
			TimeToExpiration: 0.5,
		}
		return cfg
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	f, ok := presets[name]
	if !ok {
		return nil
	}
	return f()
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
