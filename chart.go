package cpureport

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

const (
	DefaultChartWidth  = 80
	DefaultChartHeight = 20
)

// chartGlyphs is the palette used to overlay datasets on one grid.
// Datasets beyond the third cycle through it again.
var chartGlyphs = []rune{'█', '▓', '░'}

// ASCIIChart renders every dataset onto a single width×height character
// grid, normalized to the global value range across all datasets.
// Cells are claimed first-writer-wins, so where runs overlap only the
// earliest dataset in the list shows.
//
// Sequences longer than width are downsampled by index truncation;
// shorter ones map sample-to-column directly with no interpolation.
func ASCIIChart(datasets [][]float64, labels []string, width, height int) string {
	if len(datasets) == 0 {
		return "No data"
	}

	var allData []float64
	for _, dataset := range datasets {
		allData = append(allData, dataset...)
	}
	globalMin := floats.Min(allData)
	globalMax := floats.Max(allData)
	valueRange := globalMax - globalMin
	if valueRange == 0 {
		valueRange = 1
	}

	chart := []string{
		strings.Repeat("=", width),
		fmt.Sprintf("CPU Utilization Comparison - %d Test Variants", len(datasets)),
		strings.Repeat("=", width),
		"",
	}
	for i, label := range labels {
		chart = append(chart, fmt.Sprintf("%c = %s", chartGlyphs[i%len(chartGlyphs)], label))
	}
	chart = append(chart,
		"",
		fmt.Sprintf("Y-axis: CPU %% (%.1f%% - %.1f%%)", globalMin, globalMax),
		"X-axis: Time (samples over 2 minutes)",
		strings.Repeat("=", width),
		"",
	)

	maxLen := 0
	for _, dataset := range datasets {
		if len(dataset) > maxLen {
			maxLen = len(dataset)
		}
	}

	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = make([]rune, width)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	for datasetIdx, data := range datasets {
		glyph := chartGlyphs[datasetIdx%len(chartGlyphs)]
		for x := 0; x < width && x < len(data); x++ {
			idx := x
			if len(data) > width {
				idx = int(float64(x) * float64(len(data)) / float64(width))
			}
			if idx >= len(data) {
				break
			}
			normalized := (data[idx] - globalMin) / valueRange
			y := int(float64(height-1) - normalized*float64(height-1))
			if y >= 0 && y < height && grid[y][x] == ' ' {
				grid[y][x] = glyph
			}
		}
	}

	for i, row := range grid {
		var yVal float64
		switch i {
		case 0:
			yVal = globalMax
		case height - 1:
			yVal = globalMin
		default:
			yVal = globalMax - float64(i)/float64(height-1)*valueRange
		}
		chart = append(chart, fmt.Sprintf("%6.1f%% |%s|", yVal, string(row)))
	}

	pad := width - 20
	if pad < 0 {
		pad = 0
	}
	chart = append(chart,
		strings.Repeat(" ", 8)+strings.Repeat("-", width),
		strings.Repeat(" ", 8)+"0"+strings.Repeat(" ", pad)+fmt.Sprintf("%ds", maxLen),
		"",
	)

	return strings.Join(chart, "\n")
}
