package report

import (
	"fmt"
	"strings"

	"github.com/kalukad/MM-Kinetics-app/fit"
)

// Summary formats the fitted parameters of both estimation strategies as a
// plain-text block suitable for terminal output.
func Summary(res *fit.Result, units Units) string {
	var sb strings.Builder

	sb.WriteString("Michaelis-Menten fit (nonlinear least squares)\n")
	fmt.Fprintf(&sb, "  Vmax = %.2f %s\n", res.Nonlinear.Vmax, units.Velocity)
	fmt.Fprintf(&sb, "  Km   = %.2f %s\n", res.Nonlinear.Km, units.Substrate)
	fmt.Fprintf(&sb, "  R²   = %.4f\n", res.Nonlinear.RSquared)
	fmt.Fprintf(&sb, "  RMSE = %.4f %s\n", res.Nonlinear.RMSE, units.Velocity)
	fmt.Fprintf(&sb, "  iterations = %d\n", res.Nonlinear.Iterations)

	sb.WriteString("\nLineweaver-Burk fit (reciprocal linearization)\n")
	fmt.Fprintf(&sb, "  Vmax = %.2f %s\n", res.Linear.Vmax, units.Velocity)
	fmt.Fprintf(&sb, "  Km   = %.2f %s\n", res.Linear.Km, units.Substrate)
	fmt.Fprintf(&sb, "  slope       = %.6f\n", res.Linear.Slope)
	fmt.Fprintf(&sb, "  intercept   = %.6f\n", res.Linear.Intercept)
	fmt.Fprintf(&sb, "  x-intercept = %.6f (-1/Km)\n", res.Linear.XIntercept)
	fmt.Fprintf(&sb, "  R²   = %.4f\n", res.Linear.RSquared)
	fmt.Fprintf(&sb, "  RMSE = %.4f\n", res.Linear.RMSE)

	return sb.String()
}
