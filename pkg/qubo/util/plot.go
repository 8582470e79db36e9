package util

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/qubo-ga/qubo-ga/pkg/qubo/framework"
)

// PlotHistory renders the per generation objective statistics of a run as an
// HTML line chart at path.
func PlotHistory(history []framework.GenerationStats, problemName, algorithmName, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return RenderHistory(f, history, problemName, algorithmName)
}

// RenderHistory writes the chart built by PlotHistory to w.
func RenderHistory(w io.Writer, history []framework.GenerationStats, problemName, algorithmName string) error {
	if len(history) == 0 {
		return fmt.Errorf("history is empty for %s Benchmark", problemName)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s Convergence for %s Benchmark", algorithmName, problemName),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "generation",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "xᵗWx",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))
	line.ExtendYAxis(opts.YAxis{
		Name: "dominant share",
		Min:  0,
		Max:  1,
	})

	generations := make([]string, len(history))
	best := make([]opts.LineData, len(history))
	mean := make([]opts.LineData, len(history))
	share := make([]opts.LineData, len(history))
	for i, s := range history {
		generations[i] = strconv.Itoa(s.Generation)
		best[i] = opts.LineData{Value: s.BestObjective}
		mean[i] = opts.LineData{Value: s.MeanObjective}
		share[i] = opts.LineData{Value: s.DominantShare}
	}

	line.SetXAxis(generations).
		AddSeries("Best objective", best).
		AddSeries("Mean objective", mean).
		AddSeries("Dominant share", share, charts.WithLineChartOpts(opts.LineChart{YAxisIndex: 1})).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
		)

	return line.Render(w)
}
