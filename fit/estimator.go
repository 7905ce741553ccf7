package fit

import "math"

// Estimator is the common interface for the fitted kinetic models. The
// meaning of the input depends on the model space: the rate-law estimator
// evaluates at a substrate concentration, the reciprocal-space estimator at
// an inverse substrate concentration.
type Estimator interface {
	// Estimate evaluates the fitted model at x.
	Estimate(x float64) float64
	// Coefficients returns the fitted model coefficients.
	Coefficients() []float64
}

// MichaelisMentenEstimator evaluates the fitted saturating rate law
// v(S) = Vmax * S / (Km + S).
type MichaelisMentenEstimator struct {
	vmax, km float64
}

// NewMichaelisMentenEstimator creates a rate-law estimator with the given
// kinetic parameters.
func NewMichaelisMentenEstimator(vmax, km float64) *MichaelisMentenEstimator {
	return &MichaelisMentenEstimator{vmax: vmax, km: km}
}

// Estimate returns the model-predicted initial velocity at substrate
// concentration s. The pole at s = -Km evaluates to +Inf.
func (e *MichaelisMentenEstimator) Estimate(s float64) float64 {
	den := e.km + s
	if den == 0 {
		return math.Inf(1)
	}

	return e.vmax * s / den
}

// Vmax returns the asymptotic maximum velocity.
func (e *MichaelisMentenEstimator) Vmax() float64 { return e.vmax }

// Km returns the half-saturation constant.
func (e *MichaelisMentenEstimator) Km() float64 { return e.km }

// Coefficients returns [Vmax, Km].
func (e *MichaelisMentenEstimator) Coefficients() []float64 {
	return []float64{e.vmax, e.km}
}

// LineweaverBurkEstimator evaluates the fitted reciprocal-space line
// 1/v = slope * (1/S) + intercept.
type LineweaverBurkEstimator struct {
	slope, intercept float64
}

// NewLineweaverBurkEstimator creates a reciprocal-space line estimator.
func NewLineweaverBurkEstimator(slope, intercept float64) *LineweaverBurkEstimator {
	return &LineweaverBurkEstimator{slope: slope, intercept: intercept}
}

// Estimate returns the model-predicted reciprocal velocity at inverse
// substrate concentration invS.
func (e *LineweaverBurkEstimator) Estimate(invS float64) float64 {
	return e.intercept + e.slope*invS
}

// Slope returns the fitted line slope (Km/Vmax).
func (e *LineweaverBurkEstimator) Slope() float64 { return e.slope }

// Intercept returns the fitted line intercept (1/Vmax).
func (e *LineweaverBurkEstimator) Intercept() float64 { return e.intercept }

// Coefficients returns [slope, intercept].
func (e *LineweaverBurkEstimator) Coefficients() []float64 {
	return []float64{e.slope, e.intercept}
}
