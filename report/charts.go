package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kalukad/MM-Kinetics-app/fit"
)

// MichaelisMentenChart builds the saturation plot: observed velocities as a
// scatter overlay on the fitted rate curve.
func MichaelisMentenChart(res *fit.Result, units Units) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Michaelis-Menten Fit",
			Subtitle: fmt.Sprintf("Vmax = %.2f %s, Km = %.2f %s", res.Nonlinear.Vmax, units.Velocity, res.Nonlinear.Km, units.Substrate),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: fmt.Sprintf("[S] (%s)", units.Substrate),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: fmt.Sprintf("v (%s)", units.Velocity),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	line.AddSeries("Fitted curve", lineData(res.Nonlinear.Curve),
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	line.Overlap(scatterSeries("Observed", res.Observed))

	return line
}

// LineweaverBurkChart builds the double-reciprocal plot: transformed
// observations as a scatter overlay on the regression line, extended to the
// x-intercept at -1/Km.
func LineweaverBurkChart(res *fit.Result, units Units) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Lineweaver-Burk Plot",
			Subtitle: fmt.Sprintf("slope = %.4f, intercept = %.4f, x-intercept = %.4f", res.Linear.Slope, res.Linear.Intercept, res.Linear.XIntercept),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: fmt.Sprintf("1/[S] (1/%s)", units.Substrate),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: fmt.Sprintf("1/v (1/(%s))", units.Velocity),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	line.AddSeries("Regression line", lineData(res.Linear.Line))
	line.Overlap(scatterSeries("1/v vs 1/[S]", res.Linear.Points))

	return line
}

// WriteHTML renders both charts as a single standalone HTML page.
func WriteHTML(w io.Writer, res *fit.Result, units Units) error {
	page := components.NewPage()
	page.PageTitle = "Michaelis-Menten Kinetics"
	page.AddCharts(
		MichaelisMentenChart(res, units),
		LineweaverBurkChart(res, units),
	)

	return page.Render(w)
}

func lineData(series fit.Series) []opts.LineData {
	data := make([]opts.LineData, len(series.X))
	for i := range series.X {
		data[i] = opts.LineData{Value: []any{series.X[i], series.Y[i]}}
	}

	return data
}

func scatterSeries(name string, series fit.Series) *charts.Scatter {
	data := make([]opts.ScatterData, len(series.X))
	for i := range series.X {
		data[i] = opts.ScatterData{Value: []any{series.X[i], series.Y[i]}, SymbolSize: 10}
	}

	scatter := charts.NewScatter()
	scatter.AddSeries(name, data)

	return scatter
}
