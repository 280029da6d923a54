package cpureport

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// SaveLinePlot writes a PNG line chart of the datasets to path, one
// line per dataset with its label in the legend. The X axis is the
// sample index, the same time axis as the ASCII chart.
func SaveLinePlot(datasets [][]float64, labels []string, path string) error {
	if len(datasets) == 0 {
		return ErrNoDatasets
	}
	p := plot.New()
	p.Title.Text = "CPU Utilization Comparison"
	p.X.Label.Text = "Sample"
	p.Y.Label.Text = "CPU %"

	var lines []interface{}
	for i, data := range datasets {
		xys := make(plotter.XYs, len(data))
		for j, v := range data {
			xys[j].X = float64(j)
			xys[j].Y = v
		}
		lines = append(lines, labels[i], xys)
	}
	err := plotutil.AddLinePoints(p, lines...)
	if err != nil {
		return fmt.Errorf("plotting CPU data: %w", err)
	}
	return p.Save(10*vg.Inch, 5*vg.Inch, path)
}
