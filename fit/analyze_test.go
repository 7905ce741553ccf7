package fit

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kalukad/MM-Kinetics-app/errs"
)

func mustDataset(t *testing.T, s, v []float64) *Dataset {
	t.Helper()
	ds, err := NewDataset(s, v)
	require.NoError(t, err)

	return ds
}

func TestAnalyzeReferenceDataset(t *testing.T) {
	ds := mustDataset(t,
		[]float64{1, 2, 4, 8, 16, 32, 50},
		[]float64{17.1, 29.5, 51.2, 73.9, 102.1, 118.5, 130.2})

	res, err := Analyze(ds)
	require.NoError(t, err)

	require.Positive(t, res.Nonlinear.Vmax)
	require.Positive(t, res.Nonlinear.Km)
	require.Positive(t, res.Linear.Vmax)
	require.Positive(t, res.Linear.Km)
	require.False(t, math.IsInf(res.Nonlinear.Vmax, 0))
	require.False(t, math.IsInf(res.Linear.Vmax, 0))

	// The two estimation strategies agree within roughly 10% on this data.
	require.InEpsilon(t, res.Nonlinear.Vmax, res.Linear.Vmax, 0.10)
	require.InEpsilon(t, res.Nonlinear.Km, res.Linear.Km, 0.10)

	require.Len(t, res.Observed.X, 7)
	require.Len(t, res.Observed.Y, 7)
}

func TestAnalyzeConsistency(t *testing.T) {
	// Observations generated from the true model plus small zero-mean noise:
	// both estimators should land near the true parameters.
	const (
		trueVmax = 120.0
		trueKm   = 10.0
	)

	rng := rand.New(rand.NewSource(1))
	n := 50
	s := make([]float64, n)
	v := make([]float64, n)
	for i := 0; i < n; i++ {
		s[i] = 0.5 + float64(i)
		v[i] = trueVmax*s[i]/(trueKm+s[i]) + rng.NormFloat64()*0.1
	}

	res, err := Analyze(mustDataset(t, s, v))
	require.NoError(t, err)

	require.InEpsilon(t, trueVmax, res.Nonlinear.Vmax, 0.02)
	require.InEpsilon(t, trueKm, res.Nonlinear.Km, 0.02)
	// The reciprocal transform amplifies noise at low velocities, so the
	// linear estimates carry a wider tolerance.
	require.InEpsilon(t, trueVmax, res.Linear.Vmax, 0.15)
	require.InEpsilon(t, trueKm, res.Linear.Km, 0.15)
}

func TestAnalyzeIdempotence(t *testing.T) {
	ds := mustDataset(t,
		[]float64{1, 2, 4, 8, 16, 32, 50},
		[]float64{17.1, 29.5, 51.2, 73.9, 102.1, 118.5, 130.2})

	first, err := Analyze(ds)
	require.NoError(t, err)
	second, err := Analyze(ds)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestAnalyzeFailures(t *testing.T) {
	t.Run("nil dataset", func(t *testing.T) {
		_, err := Analyze(nil)
		require.ErrorIs(t, err, errs.ErrFitConvergence)
	})

	t.Run("fewer than 2 observations", func(t *testing.T) {
		_, err := Analyze(mustDataset(t, []float64{5}, []float64{10}))
		require.ErrorIs(t, err, errs.ErrFitConvergence)
	})

	t.Run("identical substrate values", func(t *testing.T) {
		_, err := Analyze(mustDataset(t, []float64{3, 3, 3, 3}, []float64{1, 2, 3, 4}))
		require.ErrorIs(t, err, errs.ErrFitConvergence)
	})

	t.Run("invalid option", func(t *testing.T) {
		ds := mustDataset(t, []float64{1, 2}, []float64{1, 2})
		_, err := Analyze(ds, WithMaxIterations(0))
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid analysis option")
	})
}

func TestAnalyzeOptions(t *testing.T) {
	ds := mustDataset(t,
		[]float64{1, 2, 4, 8, 16, 32, 50},
		[]float64{17.1, 29.5, 51.2, 73.9, 102.1, 118.5, 130.2})

	res, err := Analyze(ds, WithCurveSamples(25), WithPositiveParams())
	require.NoError(t, err)
	require.Len(t, res.Nonlinear.Curve.X, 25)
	require.Len(t, res.Linear.Line.X, 25)
}
