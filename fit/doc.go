// Package fit estimates Michaelis-Menten kinetic parameters from paired
// measurements of substrate concentration and initial reaction velocity.
//
// Two independent estimation strategies run per analysis:
//
//   - Nonlinear: iterative least-squares fit of the saturating rate law
//     v = Vmax*S/(Km+S) directly to the observed data, seeded at
//     Vmax = max(V) and Km = median(S).
//   - Linear: ordinary least-squares fit of the reciprocal-transformed
//     (Lineweaver-Burk) form 1/v = (Km/Vmax)*(1/S) + 1/Vmax, back-transformed
//     to recover the kinetic parameters.
//
// # Basic Usage
//
//	ds, err := fit.NewDataset(substrate, velocity)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := fit.Analyze(ds)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Vmax=%.2f Km=%.2f (nonlinear)\n", result.Nonlinear.Vmax, result.Nonlinear.Km)
//	fmt.Printf("Vmax=%.2f Km=%.2f (linear)\n", result.Linear.Vmax, result.Linear.Km)
//
// The Result bundle additionally carries everything a rendering layer needs:
// the observed points, a dense resampling of the fitted saturation curve, the
// reciprocal-transformed points and the fitted line. The bundle is a pure
// function of the validated dataset; analyses share no state and are safe to
// run concurrently.
//
// All failures are terminal for the analysis and match the sentinels in the
// errs package: errs.ErrLengthMismatch, errs.ErrNonNumericValue,
// errs.ErrFitConvergence and errs.ErrDegenerateTransform.
package fit
