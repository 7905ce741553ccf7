package fit

import (
	"fmt"

	"github.com/kalukad/MM-Kinetics-app/errs"
	"github.com/kalukad/MM-Kinetics-app/internal/options"
)

// Analyze runs both kinetic estimators against the observation set and
// returns the combined result bundle.
//
// The two branches are independent: the nonlinear estimator fits the rate
// law directly, the linear estimator fits the reciprocal-transformed form.
// Any branch failure is terminal for the analysis; no partial result is
// returned.
//
// Example:
//
//	ds, _ := fit.NewDataset(substrate, velocity)
//	result, err := fit.Analyze(ds)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Nonlinear.Vmax, result.Nonlinear.Km)
func Analyze(ds *Dataset, opts ...Option) (*Result, error) {
	if ds == nil {
		return nil, fmt.Errorf("%w: nil dataset", errs.ErrFitConvergence)
	}

	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, fmt.Errorf("invalid analysis option: %w", err)
	}

	nonlinear, err := fitMichaelisMenten(ds.s, ds.v, cfg)
	if err != nil {
		return nil, err
	}

	linear, err := fitLineweaverBurk(ds.s, ds.v, cfg)
	if err != nil {
		return nil, err
	}

	return &Result{
		Observed:  Series{X: ds.Substrate(), Y: ds.Velocity()},
		Nonlinear: nonlinear,
		Linear:    linear,
	}, nil
}
