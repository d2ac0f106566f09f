package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/stochsim/internal/config"
	"github.com/san-kum/stochsim/internal/mc"
	"github.com/san-kum/stochsim/internal/product"
	"github.com/san-kum/stochsim/internal/sde"
	"github.com/san-kum/stochsim/internal/stats"
	"github.com/san-kum/stochsim/internal/storage"
	"github.com/san-kum/stochsim/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string

	nrPaths int
	nrSteps int
	seed    uint64
	workers int

	s0     float64
	drift  float64
	vola   float64
	dt     float64
	scheme string

	saveRun   bool
	kind      string
	batchSize int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stochsim",
		Short: "Monte Carlo simulation of SDE path ensembles",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".stochsim", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "scenario config file")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named preset scenario")

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "simulate a GBM stock-price ensemble",
		RunE:  runSimulate,
	}
	simulateCmd.Flags().IntVar(&nrPaths, "paths", config.DefaultNrPaths, "number of paths")
	simulateCmd.Flags().IntVar(&nrSteps, "steps", config.DefaultNrSteps, "steps per path")
	simulateCmd.Flags().Uint64Var(&seed, "seed", config.DefaultSeed, "random seed")
	simulateCmd.Flags().IntVar(&workers, "workers", 1, "parallel workers")
	simulateCmd.Flags().Float64Var(&s0, "s0", config.DefaultS0, "initial value")
	simulateCmd.Flags().Float64Var(&drift, "drift", config.DefaultDrift, "drift")
	simulateCmd.Flags().Float64Var(&vola, "vola", config.DefaultVola, "volatility")
	simulateCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "time increment")
	simulateCmd.Flags().StringVar(&scheme, "scheme", "euler", "step scheme: euler or analytic")
	simulateCmd.Flags().BoolVar(&saveRun, "save", false, "persist the run")

	priceCmd := &cobra.Command{
		Use:   "price",
		Short: "price a European basket option",
		RunE:  runPrice,
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "watch basket-option price convergence live",
		RunE:  runWatch,
	}
	watchCmd.Flags().StringVar(&kind, "kind", "call", "payoff: call or put")
	watchCmd.Flags().IntVar(&batchSize, "batch", 100, "paths per estimate update")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		RunE:  runList,
	}

	initCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "write a default scenario config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], loadConfig())
		},
	}

	rootCmd.AddCommand(simulateCmd, priceCmd, watchCmd, runsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err == nil {
			return cfg
		}
		fmt.Fprintf(os.Stderr, "config %s: %v, falling back to defaults\n", configFile, err)
	}
	if preset != "" {
		if cfg := config.GetPreset(preset); cfg != nil {
			return cfg
		}
		fmt.Fprintf(os.Stderr, "unknown preset %q, known: %v\n", preset, config.ListPresets())
	}
	return config.DefaultConfig()
}

func runSimulate(cmd *cobra.Command, args []string) error {
	var sch sde.Scheme
	if scheme == "analytic" {
		sch = sde.Analytic
	}
	gbm := sde.NewGBM(s0, drift, vola, dt, sch)

	sim := mc.New[[]float64](gbm, mc.WithSeed(seed), mc.WithWorkers(workers))
	paths := sim.SimulatePaths(nrPaths, nrSteps)

	summary, ok := stats.Terminal(paths)
	if !ok {
		return fmt.Errorf("empty ensemble")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "paths\t%d\n", summary.NrPaths)
	fmt.Fprintf(w, "steps\t%d\n", nrSteps)
	fmt.Fprintf(w, "seed\t%d\n", seed)
	fmt.Fprintf(w, "terminal mean\t%.4f\n", summary.Mean)
	fmt.Fprintf(w, "terminal std\t%.4f\n", summary.StdDev)
	fmt.Fprintf(w, "std error\t%.4f\n", summary.StdErr)
	fmt.Fprintf(w, "min / max\t%.4f / %.4f\n", summary.Min, summary.Max)
	w.Flush()

	mean := stats.MeanPath(paths)
	fmt.Println()
	fmt.Println(asciigraph.Plot(mean, asciigraph.Height(12), asciigraph.Caption("ensemble mean path")))

	if saveRun {
		store := storage.New(dataDir)
		if err := store.Init(); err != nil {
			return err
		}
		runID, err := store.Save("gbm", seed, nrPaths, nrSteps, dt, summary, mean)
		if err != nil {
			return err
		}
		fmt.Printf("\nsaved run %s\n", runID)
	}
	return nil
}

func basketFromConfig(cfg *config.Config) (*product.BasketOption, error) {
	chol, err := cfg.Basket.CholeskyMatrix()
	if err != nil {
		return nil, err
	}
	return product.NewBasketOption(product.BasketOptionParams{
		Weights:          cfg.Basket.Weights,
		AssetPrices:      cfg.Basket.AssetPrices,
		RiskFreeRates:    cfg.Basket.RiskFreeRates,
		Cholesky:         chol,
		Strike:           cfg.Basket.Strike,
		TimeToExpiration: cfg.Basket.TimeToExpiration,
		NrPaths:          cfg.Run.NrPaths,
		NrSteps:          cfg.Run.NrSteps,
		Seed:             cfg.Run.Seed,
		Workers:          cfg.Run.Workers,
	})
}

func runPrice(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	opt, err := basketFromConfig(cfg)
	if err != nil {
		return err
	}

	call, okCall := opt.Call()
	put, okPut := opt.Put()
	if !okCall || !okPut {
		return fmt.Errorf("no paths simulated (nr_paths = %d)", cfg.Run.NrPaths)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "strike\t%.2f\n", cfg.Basket.Strike)
	fmt.Fprintf(w, "expiry\t%.2fy\n", cfg.Basket.TimeToExpiration)
	fmt.Fprintf(w, "paths x steps\t%d x %d\n", cfg.Run.NrPaths, cfg.Run.NrSteps)
	fmt.Fprintf(w, "seed\t%d\n", cfg.Run.Seed)
	fmt.Fprintf(w, "call\t%.6f\n", call)
	fmt.Fprintf(w, "put\t%.6f\n", put)
	return w.Flush()
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	opt, err := basketFromConfig(cfg)
	if err != nil {
		return err
	}

	payoffKind := product.Call
	if kind == "put" {
		payoffKind = product.Put
	}
	if batchSize <= 0 {
		batchSize = 100
	}

	estimates := make(chan viz.Estimate)
	go func() {
		defer close(estimates)
		var running stats.Running
		for _, v := range opt.Payoffs(payoffKind) {
			running.Add(v)
			if running.Count()%batchSize == 0 {
				estimates <- viz.Estimate{
					NrPaths: running.Count(),
					Value:   running.Mean(),
					StdErr:  running.StdErr(),
				}
			}
		}
		estimates <- viz.Estimate{
			NrPaths: running.Count(),
			Value:   running.Mean(),
			StdErr:  running.StdErr(),
		}
	}()

	title := fmt.Sprintf("basket %s  K=%.2f  T=%.2fy", kind, cfg.Basket.Strike, cfg.Basket.TimeToExpiration)
	return viz.Run(title, estimates)
}

func runList(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\tmodel\tpaths\tsteps\tseed\tterminal mean")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%.4f\n", r.ID, r.Model, r.NrPaths, r.NrSteps, r.Seed, r.Summary.Mean)
	}
	return w.Flush()
}
