// Command mm-kinetics fits Michaelis-Menten kinetic parameters to
// initial-rate data and prints both the nonlinear and the Lineweaver-Burk
// estimates.
//
// Data comes either from a delimited table file (-input, "-" for stdin,
// gzip/zstd/lz4 accepted) or from two pasted columns (-s and -v). An
// interactive HTML report with both plots is written when -html is given.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kalukad/MM-Kinetics-app/fit"
	"github.com/kalukad/MM-Kinetics-app/input"
	"github.com/kalukad/MM-Kinetics-app/report"
)

func main() {
	var (
		inputPath = flag.String("input", "", "table file with Substrate_Concentration and Initial_Velocity columns (\"-\" for stdin)")
		sColumn   = flag.String("s", "", "substrate concentrations, whitespace separated (alternative to -input)")
		vColumn   = flag.String("v", "", "initial velocities, whitespace separated (alternative to -input)")
		sUnit     = flag.String("s-unit", "mM", "substrate concentration unit label")
		vUnit     = flag.String("v-unit", "μM/min", "velocity unit label")
		htmlPath  = flag.String("html", "", "write an interactive HTML report to this file")
		positive  = flag.Bool("positive", false, "reject iteration steps that drive Vmax or Km non-positive")
	)
	flag.Parse()

	if err := run(*inputPath, *sColumn, *vColumn, *sUnit, *vUnit, *htmlPath, *positive); err != nil {
		fmt.Fprintf(os.Stderr, "mm-kinetics: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath, sColumn, vColumn, sUnit, vUnit, htmlPath string, positive bool) error {
	ds, err := loadDataset(inputPath, sColumn, vColumn)
	if err != nil {
		return err
	}

	var opts []fit.Option
	if positive {
		opts = append(opts, fit.WithPositiveParams())
	}

	res, err := fit.Analyze(ds, opts...)
	if err != nil {
		return err
	}

	units := report.Units{Substrate: sUnit, Velocity: vUnit}
	fmt.Print(report.Summary(res, units))

	if htmlPath != "" {
		fh, err := os.Create(htmlPath)
		if err != nil {
			return err
		}
		if err := report.WriteHTML(fh, res, units); err != nil {
			_ = fh.Close()
			return err
		}
		if err := fh.Close(); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", htmlPath)
	}

	return nil
}

func loadDataset(inputPath, sColumn, vColumn string) (*fit.Dataset, error) {
	switch {
	case inputPath != "" && (sColumn != "" || vColumn != ""):
		return nil, fmt.Errorf("use either -input or -s/-v, not both")
	case inputPath != "":
		return input.ReadFile(inputPath)
	case sColumn != "" && vColumn != "":
		return input.Columns(sColumn, vColumn)
	default:
		return nil, fmt.Errorf("no data: pass -input FILE or both -s and -v")
	}
}
