// Package chart renders a solved paragraph's per-line adjustment ratios and
// demerits as an interactive HTML chart, for eyeballing how tight or loose a
// chosen set of breaks turned out.
package chart

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/alex-panda/knuthplass/breaker"
)

const chartHeight = "400px"

// Render writes an HTML page containing a line chart of adjustment ratios
// and a bar chart of demerits, one point per chosen break, to w.
func Render(breaks []breaker.Break, w io.Writer) error {
	page := newPage(breaks)
	return page.Render(w)
}

func newPage(breaks []breaker.Break) *components.Page {
	labels := make([]string, len(breaks))
	ratios := make([]opts.LineData, len(breaks))
	demerits := make([]opts.BarData, len(breaks))

	for i, b := range breaks {
		labels[i] = strconv.Itoa(b.Line)
		ratios[i] = opts.LineData{Value: b.Ratio}
		demerits[i] = opts.BarData{Value: b.Demerits}
	}

	ratioChart := charts.NewLine()
	ratioChart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Adjustment ratio per line"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "line"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ratio"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	ratioChart.SetXAxis(labels).AddSeries("ratio", ratios,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(false)}),
	)

	demeritChart := charts.NewBar()
	demeritChart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Demerits per line"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "line"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "demerits"}),
	)
	demeritChart.SetXAxis(labels).AddSeries("demerits", demerits)

	page := components.NewPage()
	page.AddCharts(ratioChart, demeritChart)
	return page
}
