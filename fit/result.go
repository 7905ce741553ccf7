package fit

import "fmt"

// Series is an ordered set of (x, y) samples handed to the rendering layer.
type Series struct {
	X []float64
	Y []float64
}

// NonlinearFit holds the point estimates and plotting series produced by the
// nonlinear rate-law estimator.
type NonlinearFit struct {
	// Vmax is the asymptotic maximum velocity.
	Vmax float64
	// Km is the half-saturation constant.
	Km float64
	// RSquared is the coefficient of determination in velocity space.
	RSquared float64
	// RMSE is the root mean square error in velocity space.
	RMSE float64
	// Iterations is the number of accepted optimizer steps.
	Iterations int
	// Curve is the fitted rate law resampled over [0, max(S)].
	Curve Series
	// Estimator evaluates the fitted rate law.
	Estimator *MichaelisMentenEstimator
}

// String returns a short summary of the nonlinear fit.
func (f *NonlinearFit) String() string {
	return fmt.Sprintf("NonlinearFit{Vmax: %.4f, Km: %.4f, R²: %.4f, RMSE: %.4f}",
		f.Vmax, f.Km, f.RSquared, f.RMSE)
}

// LinearFit holds the regression line, back-transformed point estimates and
// plotting series produced by the reciprocal-linearization estimator.
type LinearFit struct {
	// Slope is the fitted line slope, Km/Vmax.
	Slope float64
	// Intercept is the fitted line intercept, 1/Vmax.
	Intercept float64
	// Vmax is the back-transformed maximum velocity, 1/intercept.
	Vmax float64
	// Km is the back-transformed half-saturation constant, slope*Vmax.
	Km float64
	// XIntercept is the x-axis crossing of the fitted line, -1/Km.
	XIntercept float64
	// RSquared is the coefficient of determination in reciprocal space.
	RSquared float64
	// RMSE is the root mean square error in reciprocal space.
	RMSE float64
	// Points are the reciprocal-transformed observations (zero-substrate
	// rows excluded).
	Points Series
	// Line is the fitted line resampled across the plot range.
	Line Series
	// Estimator evaluates the fitted reciprocal-space line.
	Estimator *LineweaverBurkEstimator
}

// String returns a short summary of the linear fit.
func (f *LinearFit) String() string {
	return fmt.Sprintf("LinearFit{Vmax: %.4f, Km: %.4f, Slope: %.6f, Intercept: %.6f, R²: %.4f}",
		f.Vmax, f.Km, f.Slope, f.Intercept, f.RSquared)
}

// Result is the bundle produced by one analysis run. It is read-only for
// consumers; nothing in it feeds back into the estimators.
type Result struct {
	// Observed holds the validated observations as a plottable series.
	Observed Series
	// Nonlinear is the direct rate-law fit.
	Nonlinear *NonlinearFit
	// Linear is the reciprocal-linearization fit.
	Linear *LinearFit
}

// String returns a short summary of both fits.
func (r *Result) String() string {
	return fmt.Sprintf("Result{Nonlinear: %s, Linear: %s}", r.Nonlinear, r.Linear)
}
