package stats

import "math"

// Running accumulates a streaming mean and variance (Welford), used to track
// Monte Carlo convergence as payoffs arrive batch by batch.
type Running struct {
	n    int
	mean float64
	m2   float64
}

func (r *Running) Add(v float64) {
	r.n++
	delta := v - r.mean
	r.mean += delta / float64(r.n)
	r.m2 += delta * (v - r.mean)
}

func (r *Running) Count() int { return r.n }

func (r *Running) Mean() float64 { return r.mean }

// Variance is the unbiased sample variance; zero until two samples arrive.
func (r *Running) Variance() float64 {
	if r.n < 2 {
		return 0
	}
	return r.m2 / float64(r.n-1)
}

// StdErr is the standard error of the running mean.
func (r *Running) StdErr() float64 {
	if r.n == 0 {
		return 0
	}
	return math.Sqrt(r.Variance() / float64(r.n))
}

func (r *Running) Reset() {
	r.n = 0
	r.mean = 0
	r.m2 = 0
}
