// Package mmkinetics estimates Michaelis-Menten kinetic parameters from
// initial-rate enzyme assay data.
//
// Given paired substrate concentrations and initial reaction velocities, the
// package fits the rate law v = Vmax*[S]/(Km+[S]) two independent ways:
//
//   - Nonlinear least squares on the rate law itself, via damped
//     Gauss-Newton iteration.
//   - Ordinary least squares on the Lineweaver-Burk double-reciprocal
//     transform 1/v = (Km/Vmax)*(1/[S]) + 1/Vmax.
//
// Both fits are returned together with goodness-of-fit metrics and
// resampled plotting series.
//
// # Basic Usage
//
//	import "github.com/kalukad/MM-Kinetics-app"
//
//	s := []float64{1, 2, 4, 8, 16, 32, 50}
//	v := []float64{17.1, 29.5, 51.2, 73.9, 102.1, 118.5, 130.2}
//
//	res, err := mmkinetics.Analyze(s, v)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Vmax=%.2f Km=%.2f\n", res.Nonlinear.Vmax, res.Nonlinear.Km)
//
// Raw text input (pasted columns, CSV tables, optionally compressed files)
// is handled by the input subpackage; rendering lives in report.
package mmkinetics

import (
	"github.com/kalukad/MM-Kinetics-app/fit"
	"github.com/kalukad/MM-Kinetics-app/input"
)

// Analyze validates the paired observations and runs both estimation
// strategies. See fit.Analyze for the failure modes.
func Analyze(substrate, velocity []float64, opts ...fit.Option) (*fit.Result, error) {
	ds, err := fit.NewDataset(substrate, velocity)
	if err != nil {
		return nil, err
	}

	return fit.Analyze(ds, opts...)
}

// AnalyzeStrings parses two pasted columns of numbers and runs both
// estimation strategies. Values are separated by newlines or any other
// whitespace.
func AnalyzeStrings(substrate, velocity string, opts ...fit.Option) (*fit.Result, error) {
	ds, err := input.Columns(substrate, velocity)
	if err != nil {
		return nil, err
	}

	return fit.Analyze(ds, opts...)
}

// AnalyzeFile reads a delimited table (plain or compressed, "-" for stdin)
// and runs both estimation strategies.
func AnalyzeFile(path string, opts ...fit.Option) (*fit.Result, error) {
	ds, err := input.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return fit.Analyze(ds, opts...)
}
