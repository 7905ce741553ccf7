package fit

import (
	"fmt"

	"github.com/kalukad/MM-Kinetics-app/internal/options"
)

type config struct {
	maxIterations  int
	tolerance      float64
	curveSamples   int
	positiveParams bool
}

// defaultConfig returns the default analysis configuration: 200 iterations,
// 1e-10 relative step tolerance, 100 curve samples, unbounded parameters.
func defaultConfig() config {
	return config{
		maxIterations:  200,
		tolerance:      1e-10,
		curveSamples:   100,
		positiveParams: false,
	}
}

// Option is a functional option for an analysis run.
type Option = options.Option[*config]

// WithMaxIterations sets the nonlinear optimizer iteration budget.
func WithMaxIterations(n int) Option {
	return options.New(func(cfg *config) error {
		if n <= 0 {
			return fmt.Errorf("max iterations must be positive, got %d", n)
		}
		cfg.maxIterations = n

		return nil
	})
}

// WithTolerance sets the relative parameter-step convergence tolerance of the
// nonlinear optimizer.
func WithTolerance(tol float64) Option {
	return options.New(func(cfg *config) error {
		if tol <= 0 {
			return fmt.Errorf("tolerance must be positive, got %v", tol)
		}
		cfg.tolerance = tol

		return nil
	})
}

// WithCurveSamples sets the number of evenly spaced points used to resample
// the fitted curves for plotting.
func WithCurveSamples(n int) Option {
	return options.New(func(cfg *config) error {
		if n < 2 {
			return fmt.Errorf("curve samples must be at least 2, got %d", n)
		}
		cfg.curveSamples = n

		return nil
	})
}

// WithPositiveParams makes the nonlinear optimizer reject steps that would
// take Vmax or Km non-positive. Negative kinetic parameters are physically
// meaningless, but the default fit leaves both unbounded, so this is opt-in.
func WithPositiveParams() Option {
	return options.NoError(func(cfg *config) {
		cfg.positiveParams = true
	})
}
