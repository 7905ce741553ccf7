package fit

import "gonum.org/v1/gonum/floats"

// sampleSeries evaluates est at n evenly spaced points across [from, to].
// Used only to produce plottable series; not part of the statistical
// contract.
func sampleSeries(est Estimator, from, to float64, n int) Series {
	xs := make([]float64, n)
	floats.Span(xs, from, to)

	ys := make([]float64, n)
	for i, x := range xs {
		ys[i] = est.Estimate(x)
	}

	return Series{X: xs, Y: ys}
}
