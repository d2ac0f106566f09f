package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the terminal-value distribution of a scalar ensemble.
type Summary struct {
	NrPaths int
	Mean    float64
	StdDev  float64
	StdErr  float64
	Min     float64
	Max     float64
}

// Terminal summarizes the last state of every path. Paths of length zero are
// skipped; the second return is false when nothing remains.
func Terminal(paths [][]float64) (Summary, bool) {
	vals := make([]float64, 0, len(paths))
	for _, p := range paths {
		if len(p) == 0 {
			continue
		}
		vals = append(vals, p[len(p)-1])
	}
	if len(vals) == 0 {
		return Summary{}, false
	}

	mean, std := stat.MeanStdDev(vals, nil)
	return Summary{
		NrPaths: len(vals),
		Mean:    mean,
		StdDev:  std,
		StdErr:  std / math.Sqrt(float64(len(vals))),
		Min:     floats.Min(vals),
		Max:     floats.Max(vals),
	}, true
}

// MeanPath averages the ensemble pointwise over time. All paths must share
// the length of the first; shorter paths truncate the result.
func MeanPath(paths [][]float64) []float64 {
	if len(paths) == 0 || len(paths[0]) == 0 {
		return nil
	}
	n := len(paths[0])
	for _, p := range paths {
		if len(p) < n {
			n = len(p)
		}
	}

	mean := make([]float64, n)
	for _, p := range paths {
		floats.Add(mean, p[:n])
	}
	floats.Scale(1/float64(len(paths)), mean)
	return mean
}
