package fit

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/kalukad/MM-Kinetics-app/errs"
)

// fitLineweaverBurk fits the reciprocal-transformed rate law
// 1/v = (Km/Vmax)*(1/S) + 1/Vmax by ordinary least squares and
// back-transforms the line to recover the kinetic parameters.
//
// Rows with S == 0 are excluded before the transform. The exclusion is
// strictly zero, not tolerance-based: small positive concentrations are
// legitimate observations.
func fitLineweaverBurk(s, v []float64, cfg config) (*LinearFit, error) {
	invS := make([]float64, 0, len(s))
	invV := make([]float64, 0, len(s))
	for i := range s {
		if s[i] == 0 {
			continue
		}
		invS = append(invS, 1/s[i])
		invV = append(invV, 1/v[i])
	}

	if len(invS) < 2 {
		return nil, fmt.Errorf("%w: %d usable observations after zero-substrate exclusion, need at least 2",
			errs.ErrDegenerateTransform, len(invS))
	}

	intercept, slope := stat.LinearRegression(invS, invV, nil, false)
	if !isFinite(slope) || !isFinite(intercept) {
		return nil, fmt.Errorf("%w: regression produced non-finite line (slope=%v, intercept=%v)",
			errs.ErrDegenerateTransform, slope, intercept)
	}

	vmax, km, xIntercept, err := backTransform(slope, intercept)
	if err != nil {
		return nil, err
	}

	est := NewLineweaverBurkEstimator(slope, intercept)

	predicted := make([]float64, len(invS))
	for i := range invS {
		predicted[i] = est.Estimate(invS[i])
	}

	// Plot range spans from the line's x-intercept (padded) to just past the
	// largest reciprocal substrate value.
	lo := math.Min(0, xIntercept*1.1)
	hi := slices.Max(invS) * 1.1

	return &LinearFit{
		Slope:      slope,
		Intercept:  intercept,
		Vmax:       vmax,
		Km:         km,
		XIntercept: xIntercept,
		RSquared:   rSquared(invV, predicted),
		RMSE:       rmse(invV, predicted),
		Points:     Series{X: invS, Y: invV},
		Line:       sampleSeries(est, lo, hi, cfg.curveSamples),
		Estimator:  est,
	}, nil
}

// backTransform recovers (Vmax, Km) and the line's x-intercept from the
// fitted reciprocal-space line. A zero intercept or zero slope leaves the
// back-transform undefined and is surfaced explicitly rather than allowed to
// propagate as Inf/NaN.
func backTransform(slope, intercept float64) (vmax, km, xIntercept float64, err error) {
	if intercept == 0 {
		return 0, 0, 0, fmt.Errorf("%w: zero intercept in reciprocal regression (Vmax = 1/intercept)",
			errs.ErrDegenerateTransform)
	}

	vmax = 1 / intercept
	km = slope * vmax
	if km == 0 {
		return 0, 0, 0, fmt.Errorf("%w: zero slope yields Km = 0, line has no x-intercept",
			errs.ErrDegenerateTransform)
	}
	xIntercept = -1 / km

	return vmax, km, xIntercept, nil
}
