package fit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kalukad/MM-Kinetics-app/errs"
)

func TestFitLineweaverBurkNoiseless(t *testing.T) {
	// Exact rate-law data transforms to an exact line, so OLS recovers the
	// parameters to near machine precision.
	s := []float64{0.5, 1, 2, 5, 10, 20, 40}
	v := make([]float64, len(s))
	for i := range s {
		v[i] = 100 * s[i] / (5 + s[i])
	}

	lb, err := fitLineweaverBurk(s, v, defaultConfig())
	require.NoError(t, err)
	require.InDelta(t, 100.0, lb.Vmax, 1e-9)
	require.InDelta(t, 5.0, lb.Km, 1e-9)
	// Slope = Km/Vmax, intercept = 1/Vmax, x-intercept = -1/Km.
	require.InDelta(t, 0.05, lb.Slope, 1e-12)
	require.InDelta(t, 0.01, lb.Intercept, 1e-12)
	require.InDelta(t, -0.2, lb.XIntercept, 1e-9)
	require.InDelta(t, 1.0, lb.RSquared, 1e-12)
}

func TestFitLineweaverBurkReferenceDataset(t *testing.T) {
	s := []float64{1, 2, 4, 8, 16, 32, 50}
	v := []float64{17.1, 29.5, 51.2, 73.9, 102.1, 118.5, 130.2}

	lb, err := fitLineweaverBurk(s, v, defaultConfig())
	require.NoError(t, err)
	require.InDelta(t, 0.05209796, lb.Slope, 1e-8)
	require.InDelta(t, 0.00682067, lb.Intercept, 1e-8)
	require.InDelta(t, 146.6132, lb.Vmax, 1e-3)
	require.InDelta(t, 7.63825, lb.Km, 1e-4)
	require.InDelta(t, -0.1309201, lb.XIntercept, 1e-6)
	require.Greater(t, lb.RSquared, 0.99)
}

func TestFitLineweaverBurkZeroSubstrateExclusion(t *testing.T) {
	s := []float64{0, 1, 2, 4, 8}
	v := []float64{3, 17.1, 29.5, 51.2, 73.9}

	withZero, err := fitLineweaverBurk(s, v, defaultConfig())
	require.NoError(t, err)

	without, err := fitLineweaverBurk(s[1:], v[1:], defaultConfig())
	require.NoError(t, err)

	// Excluding the zero-substrate row must be exactly equivalent to never
	// having supplied it.
	require.Equal(t, without, withZero)
}

func TestFitLineweaverBurkPlotRange(t *testing.T) {
	s := []float64{1, 2, 4, 8, 16, 32, 50}
	v := []float64{17.1, 29.5, 51.2, 73.9, 102.1, 118.5, 130.2}

	lb, err := fitLineweaverBurk(s, v, defaultConfig())
	require.NoError(t, err)

	require.Len(t, lb.Line.X, 100)
	require.InDelta(t, lb.XIntercept*1.1, lb.Line.X[0], 1e-12)
	require.InDelta(t, 1.1, lb.Line.X[99], 1e-12) // 1.1 * max(1/S) with min S = 1
	require.Len(t, lb.Points.X, 7)
}

func TestFitLineweaverBurkDegenerateInput(t *testing.T) {
	t.Run("fewer than 2 usable rows after exclusion", func(t *testing.T) {
		_, err := fitLineweaverBurk([]float64{0, 5}, []float64{1, 2}, defaultConfig())
		require.ErrorIs(t, err, errs.ErrDegenerateTransform)
		require.Contains(t, err.Error(), "zero-substrate")
	})

	t.Run("zero velocity makes the transform non-finite", func(t *testing.T) {
		_, err := fitLineweaverBurk([]float64{1, 2, 3}, []float64{1, 0, 2}, defaultConfig())
		require.ErrorIs(t, err, errs.ErrDegenerateTransform)
	})

	t.Run("identical reciprocal regressors", func(t *testing.T) {
		_, err := fitLineweaverBurk([]float64{4, 4, 4}, []float64{1, 2, 3}, defaultConfig())
		require.ErrorIs(t, err, errs.ErrDegenerateTransform)
	})
}

func TestBackTransform(t *testing.T) {
	t.Run("recovers parameters", func(t *testing.T) {
		vmax, km, xInt, err := backTransform(0.05, 0.01)
		require.NoError(t, err)
		require.InDelta(t, 100.0, vmax, 1e-12)
		require.InDelta(t, 5.0, km, 1e-12)
		require.InDelta(t, -0.2, xInt, 1e-12)
	})

	t.Run("zero intercept is surfaced, not propagated", func(t *testing.T) {
		_, _, _, err := backTransform(2.0, 0.0)
		require.ErrorIs(t, err, errs.ErrDegenerateTransform)
		require.Contains(t, err.Error(), "intercept")
	})

	t.Run("zero slope has no x-intercept", func(t *testing.T) {
		_, _, _, err := backTransform(0.0, 0.01)
		require.ErrorIs(t, err, errs.ErrDegenerateTransform)
	})
}
