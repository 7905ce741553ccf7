package fit

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/kalukad/MM-Kinetics-app/errs"
)

const (
	// maxDampingRetries bounds the per-iteration search for an acceptable
	// damping factor.
	maxDampingRetries = 50
	initialDamping    = 1e-3
	minDamping        = 1e-12
)

// fitMichaelisMenten fits the saturating rate law v = Vmax*S/(Km+S) by
// Levenberg-Marquardt least squares: damped Gauss-Newton steps on the 2x2
// normal equations, solved in closed form.
//
// Seeds: Vmax at the maximum observed velocity, Km at the median observed
// substrate concentration. Parameters are unbounded unless
// cfg.positiveParams is set.
func fitMichaelisMenten(s, v []float64, cfg config) (*NonlinearFit, error) {
	n := len(s)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 observations, got %d",
			errs.ErrFitConvergence, n)
	}
	if !hasDistinct(s) {
		return nil, fmt.Errorf("%w: all substrate values equal %v, Jacobian is singular",
			errs.ErrFitConvergence, s[0])
	}

	vmax := slices.Max(v)
	km := medianOf(s)

	cur, ok := residualSumSquares(s, v, vmax, km)
	if !ok {
		return nil, fmt.Errorf("%w: rate law undefined at initial guess (Km + S = 0)",
			errs.ErrFitConvergence)
	}

	damping := initialDamping
	iterations := 0
	converged := false

	for iter := 1; iter <= cfg.maxIterations; iter++ {
		// Accumulate the normal equations J'J δ = J'r at the current
		// parameters. Residuals r_i = v_i - f(S_i); the Jacobian columns are
		// df/dVmax = S/(Km+S) and df/dKm = -Vmax*S/(Km+S)².
		var a11, a12, a22, g1, g2 float64
		for i := 0; i < n; i++ {
			den := km + s[i]
			j1 := s[i] / den
			j2 := -vmax * s[i] / (den * den)
			r := v[i] - vmax*s[i]/den
			a11 += j1 * j1
			a12 += j1 * j2
			a22 += j2 * j2
			g1 += j1 * r
			g2 += j2 * r
		}

		accepted := false
		stepComputed := false
		var d1, d2 float64

		for try := 0; try < maxDampingRetries; try++ {
			b11 := a11 * (1 + damping)
			b22 := a22 * (1 + damping)
			det := b11*b22 - a12*a12
			if !isFinite(det) || math.Abs(det) == 0 {
				damping *= 10
				continue
			}

			d1 = (g1*b22 - g2*a12) / det
			d2 = (b11*g2 - a12*g1) / det
			stepComputed = true

			tv := vmax + d1
			tk := km + d2
			if cfg.positiveParams && (tv <= 0 || tk <= 0) {
				damping *= 10
				continue
			}

			trial, ok := residualSumSquares(s, v, tv, tk)
			if ok && trial < cur {
				vmax, km, cur = tv, tk, trial
				if damping > minDamping {
					damping /= 10
				}
				accepted = true

				break
			}

			damping *= 10
		}

		iterations = iter

		if stepComputed && smallStep(d1, vmax, cfg.tolerance) && smallStep(d2, km, cfg.tolerance) {
			converged = true

			break
		}

		if !accepted {
			if !stepComputed {
				return nil, fmt.Errorf("%w: singular normal equations at iteration %d",
					errs.ErrFitConvergence, iter)
			}

			return nil, fmt.Errorf("%w: no descent step found at iteration %d (damping=%.3g)",
				errs.ErrFitConvergence, iter, damping)
		}
	}

	if !converged {
		return nil, fmt.Errorf("%w: maximum iterations (%d) exceeded",
			errs.ErrFitConvergence, cfg.maxIterations)
	}
	if !isFinite(vmax) || !isFinite(km) {
		return nil, fmt.Errorf("%w: optimizer diverged (Vmax=%v, Km=%v)",
			errs.ErrFitConvergence, vmax, km)
	}

	est := NewMichaelisMentenEstimator(vmax, km)

	predicted := make([]float64, n)
	for i := 0; i < n; i++ {
		predicted[i] = est.Estimate(s[i])
	}

	return &NonlinearFit{
		Vmax:       vmax,
		Km:         km,
		RSquared:   rSquared(v, predicted),
		RMSE:       rmse(v, predicted),
		Iterations: iterations,
		Curve:      sampleSeries(est, 0, slices.Max(s), cfg.curveSamples),
		Estimator:  est,
	}, nil
}

// residualSumSquares evaluates the sum of squared residuals at the given
// parameters. Reports false when the rate law is undefined (Km + S = 0 for
// some observation) or the sum overflows.
func residualSumSquares(s, v []float64, vmax, km float64) (float64, bool) {
	var sum float64
	for i := range s {
		den := km + s[i]
		if den == 0 {
			return 0, false
		}
		r := v[i] - vmax*s[i]/den
		sum += r * r
	}

	if !isFinite(sum) {
		return 0, false
	}

	return sum, true
}

// smallStep reports whether delta is negligible relative to param at the
// given tolerance.
func smallStep(delta, param, tol float64) bool {
	return math.Abs(delta) <= tol*(math.Abs(param)+tol)
}

// hasDistinct reports whether the slice holds at least two distinct values.
func hasDistinct(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return true
		}
	}

	return false
}

// medianOf returns the empirical median without mutating the input.
func medianOf(values []float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}
