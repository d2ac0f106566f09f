package mc

// PathEvaluator reduces an ensemble to an aggregate scalar.
type PathEvaluator[P any] struct {
	paths Ensemble[P]
}

func NewPathEvaluator[P any](paths Ensemble[P]) *PathEvaluator[P] {
	return &PathEvaluator[P]{paths: paths}
}

// EvaluateAverage applies f to every path and averages the values f accepts.
// Rejected paths count toward neither numerator nor denominator. The second
// return is false when the ensemble is empty or f rejects every path.
func (e *PathEvaluator[P]) EvaluateAverage(f func(P) (float64, bool)) (float64, bool) {
	sum := 0.0
	n := 0
	for _, p := range e.paths {
		if v, ok := f(p); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
