package fit

import "math"

// rSquared returns the coefficient of determination, 1 - SS_res/SS_tot.
// Returns 0 when the observed values have no variance.
func rSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	m := mean(observed)
	var ssTot, ssRes float64
	for i := range observed {
		ssTot += (observed[i] - m) * (observed[i] - m)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - ssRes/ssTot
}

// rmse returns the root mean square error of the predictions.
func rmse(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	var sumSq float64
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
