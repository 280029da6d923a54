package cpureport

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

var (
	ErrNoDatasets       = errors.New("no data loaded")
	ErrValueCannotBeNil = errors.New("value cannot be nil")
)

// Input names one test run's resource CSV and the scenario label shown
// for it in the report.
type Input struct {
	Path  string
	Label string
}

// DefaultInputs is the built-in table of known test result files,
// reported when no paths are given on the command line.
var DefaultInputs = []Input{
	{"results/production_load/resources_20251115_200213.csv", "Baseline (1000 RPS, 256MB, 8 shards)"},
	{"results/production_load/resources_20251115_200510.csv", "High Buffer (1000 RPS, 512MB, 8 shards)"},
	{"results/production_load/resources_20251115_220423.csv", "Peak Load (1500 RPS, 512MB, 16 shards)"},
}

type Reporter struct {
	inputs         []Input
	chartWidth     int
	chartHeight    int
	plotPath       string
	stdout, stderr io.Writer
}

type Option func(*Reporter) error

func NewReporter(opts ...Option) (*Reporter, error) {
	reporter := &Reporter{
		inputs:      DefaultInputs,
		chartWidth:  DefaultChartWidth,
		chartHeight: DefaultChartHeight,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
	}
	for _, o := range opts {
		err := o(reporter)
		if err != nil {
			return nil, err
		}
	}
	if reporter.chartWidth < 1 || reporter.chartHeight < 2 {
		return nil, fmt.Errorf("invalid chart size %dx%d", reporter.chartWidth, reporter.chartHeight)
	}
	return reporter, nil
}

func WithInputs(inputs []Input) Option {
	return func(r *Reporter) error {
		if len(inputs) == 0 {
			return ErrNoDatasets
		}
		r.inputs = inputs
		return nil
	}
}

func WithChartSize(width, height int) Option {
	return func(r *Reporter) error {
		r.chartWidth = width
		r.chartHeight = height
		return nil
	}
}

func WithPlotFile(path string) Option {
	return func(r *Reporter) error {
		r.plotPath = path
		return nil
	}
}

func WithStdout(w io.Writer) Option {
	return func(r *Reporter) error {
		if w == nil {
			return ErrValueCannotBeNil
		}
		r.stdout = w
		return nil
	}
}

func WithStderr(w io.Writer) Option {
	return func(r *Reporter) error {
		if w == nil {
			return ErrValueCannotBeNil
		}
		r.stderr = w
		return nil
	}
}

// WithInputsFromArgs configures the reporter from command-line
// arguments. Positional arguments are CSV paths, each optionally
// suffixed =LABEL; with none, the built-in table is reported.
func WithInputsFromArgs(args []string) Option {
	return func(r *Reporter) error {
		fset := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
		fset.SetOutput(r.stderr)
		width := fset.Int("width", DefaultChartWidth, "chart width in characters")
		height := fset.Int("height", DefaultChartHeight, "chart height in characters")
		plot := fset.String("plot", "", "also write a PNG line chart to this file")
		err := fset.Parse(args)
		if err != nil {
			return err
		}
		r.chartWidth = *width
		r.chartHeight = *height
		r.plotPath = *plot
		if fset.NArg() == 0 {
			return nil
		}
		inputs := []Input{}
		for _, arg := range fset.Args() {
			path, label := arg, arg
			if i := strings.Index(arg, "="); i >= 0 {
				path, label = arg[:i], arg[i+1:]
			}
			inputs = append(inputs, Input{Path: path, Label: label})
		}
		r.inputs = inputs
		return nil
	}
}

func (r Reporter) Inputs() []Input {
	return r.inputs
}

func (r Reporter) ChartWidth() int {
	return r.chartWidth
}

func (r Reporter) ChartHeight() int {
	return r.chartHeight
}

// Run loads every configured input and prints the chart, the statistics
// table and the insights. Missing files and files with no usable
// samples are skipped with a notice; the run fails only when nothing
// loads at all.
func (r *Reporter) Run() error {
	var (
		datasets [][]float64
		labels   []string
		stats    []Stats
	)
	fmt.Fprintf(r.stdout, "Loading CPU data from test runs...\n\n")
	for _, input := range r.inputs {
		data, err := LoadCPUData(input.Path)
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(r.stdout, "✗ File not found: %s\n", input.Path)
			continue
		}
		if err != nil {
			return err
		}
		if len(data) == 0 {
			fmt.Fprintf(r.stdout, "✗ No data in: %s\n", input.Label)
			continue
		}
		s, err := CalculateStats(data)
		if err != nil {
			return err
		}
		datasets = append(datasets, data)
		labels = append(labels, input.Label)
		stats = append(stats, s)
		fmt.Fprintf(r.stdout, "✓ Loaded %d samples from: %s\n", len(data), input.Label)
	}
	if len(datasets) == 0 {
		fmt.Fprintf(r.stdout, "\nError: No data loaded!\n")
		return ErrNoDatasets
	}
	fmt.Fprintf(r.stdout, "\n%d test variants loaded successfully!\n\n", len(datasets))

	fmt.Fprintln(r.stdout, ASCIIChart(datasets, labels, r.chartWidth, r.chartHeight))
	fmt.Fprintln(r.stdout, StatisticsTable(stats, labels))
	fmt.Fprintln(r.stdout, ComparisonInsights(stats, labels))

	if r.plotPath != "" {
		err := SaveLinePlot(datasets, labels, r.plotPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.stdout, "PNG chart written to %s\n", r.plotPath)
	}
	return nil
}

func RunCLI(args []string) error {
	reporter, err := NewReporter(
		WithInputsFromArgs(args),
	)
	if err != nil {
		return err
	}
	return reporter.Run()
}
