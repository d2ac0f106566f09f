package stats

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestRunning_MatchesBatch(t *testing.T) {
	vals := []float64{2.5, -1.0, 4.0, 0.0, 3.5, 7.25}

	var r Running
	for _, v := range vals {
		r.Add(v)
	}

	mean, std := stat.MeanStdDev(vals, nil)
	if r.Count() != len(vals) {
		t.Errorf("expected count %d, got %d", len(vals), r.Count())
	}
	if math.Abs(r.Mean()-mean) > 1e-12 {
		t.Errorf("running mean %f differs from batch mean %f", r.Mean(), mean)
	}
	if math.Abs(math.Sqrt(r.Variance())-std) > 1e-12 {
		t.Errorf("running std %f differs from batch std %f", math.Sqrt(r.Variance()), std)
	}

	wantSE := std / math.Sqrt(float64(len(vals)))
	if math.Abs(r.StdErr()-wantSE) > 1e-12 {
		t.Errorf("running stderr %f differs from batch stderr %f", r.StdErr(), wantSE)
	}
}

func TestRunning_Empty(t *testing.T) {
	var r Running
	if r.Mean() != 0 || r.Variance() != 0 || r.StdErr() != 0 {
		t.Error("empty accumulator should report zeros")
	}
}

func TestRunning_Reset(t *testing.T) {
	var r Running
	r.Add(5)
	r.Add(7)
	r.Reset()

	if r.Count() != 0 || r.Mean() != 0 {
		t.Error("reset should clear the accumulator")
	}
}
