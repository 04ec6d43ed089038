package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/apodego/apode/internal/analytics"
	"github.com/apodego/apode/internal/apode"
	"github.com/apodego/apode/internal/dataset"
	"github.com/apodego/apode/internal/downsampling"
	"github.com/apodego/apode/internal/logging"
	"github.com/apodego/apode/internal/utils"
)

const usage = `Usage: apode <command> [flags]

Commands:
  measure   evaluate a scalar measure (concentration, welfare, inequality)
  curve     build the plot data of a distribution curve (lorenz, pen, tip)
  stat      evaluate a descriptive statistic of a column
  methods   list every measure family and curve kind
  generate  write the synthetic uniform dataset

Run 'apode <command> -h' for the flags of a command.
`

// optionFlags collects repeated -opt key=value flags
type optionFlags []string

func (o *optionFlags) String() string { return strings.Join(*o, ",") }

func (o *optionFlags) Set(v string) error {
	*o = append(*o, v)
	return nil
}

// sampleFlags selects the sample: a dataset file column, or inline values
type sampleFlags struct {
	file    *string
	column  *string
	values  *string
	maxRows *int
	bins    *int
}

func addSampleFlags(fs *flag.FlagSet) *sampleFlags {
	return &sampleFlags{
		file:    fs.String("file", "", "CSV dataset (plain, or snappy-compressed when ending in .snappy)"),
		column:  fs.String("column", dataset.DefaultColumn, "Column holding the variable"),
		values:  fs.String("values", "", "Comma-separated inline values, instead of -file"),
		maxRows: fs.Int("max-rows", 0, "Row limit when reading -file (0 = unlimited)"),
		bins:    fs.Int("bins", dataset.DefaultHistogramBins, "Bins of the hist plot"),
	}
}

func (f *sampleFlags) load() (*apode.Data, error) {
	opts := []apode.Option{apode.WithHistogramBins(*f.bins)}
	switch {
	case *f.file != "" && *f.values != "":
		return nil, errors.New("-file and -values are mutually exclusive")
	case *f.values != "":
		values, err := utils.ParseFloatList(*f.values)
		if err != nil {
			return nil, err
		}
		return apode.FromValues(values, opts...)
	case *f.file != "":
		frame, err := dataset.LoadFile(*f.file, *f.maxRows)
		if err != nil {
			return nil, err
		}
		return apode.New(frame, *f.column, opts...)
	}
	return nil, errors.New("either -file or -values is required")
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "measure":
		err = runMeasure(args)
	case "curve":
		err = runCurve(args)
	case "stat":
		err = runStat(args)
	case "methods":
		err = printJSON(apode.Methods())
	case "generate":
		err = runGenerate(args)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(os.Stdout, usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}

	if err != nil {
		logging.Error("Command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func setupLogger(verbose bool) {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logging.SetGlobal(logging.NewWithWriter(os.Stderr, level))
}

func parseOptions(raw optionFlags) ([]analytics.Option, error) {
	kv, err := utils.ParseKeyValues(raw)
	if err != nil {
		return nil, err
	}
	return analytics.ParseOptions(kv)
}

func runMeasure(args []string) error {
	fs := flag.NewFlagSet("measure", flag.ExitOnError)
	sample := addSampleFlags(fs)
	family := fs.String("family", "concentration", "Measure family (concentration, welfare, inequality)")
	method := fs.String("method", "", "Method name (empty selects the family default)")
	verbose := fs.Bool("v", false, "Verbose logging")
	var opts optionFlags
	fs.Var(&opts, "opt", "Measure option key=value (repeatable): normalized, k, alpha")
	_ = fs.Parse(args)
	setupLogger(*verbose)

	options, err := parseOptions(opts)
	if err != nil {
		return err
	}
	data, err := sample.load()
	if err != nil {
		return err
	}
	acc, err := data.Accessor(*family)
	if err != nil {
		return err
	}

	name := *method
	if name == "" {
		name = acc.Default()
	}
	logging.Debug("Evaluating measure", "family", *family, "method", name, "n", data.Sample().Len())

	value, err := acc.Call(name, options...)
	if err != nil {
		return err
	}
	return printJSON(map[string]any{
		"family":  *family,
		"method":  name,
		"n":       data.Sample().Len(),
		"value":   jsonFloat(value),
		"options": analytics.NewOptions(options...).Values(),
	})
}

func runCurve(args []string) error {
	fs := flag.NewFlagSet("curve", flag.ExitOnError)
	sample := addSampleFlags(fs)
	kind := fs.String("kind", "", "Curve kind (lorenz, pen, tip; empty selects lorenz)")
	mode := fs.String("downsampling", "none", "Thin the curve for plotting (none, auto, lttb, minmax, m4)")
	points := fs.Int("points", downsampling.DefaultAutoThreshold, "Target point count when thinning")
	verbose := fs.Bool("v", false, "Verbose logging")
	var opts optionFlags
	fs.Var(&opts, "opt", "Curve option key=value (repeatable): variant, pline")
	_ = fs.Parse(args)
	setupLogger(*verbose)

	options, err := parseOptions(opts)
	if err != nil {
		return err
	}
	thinning, err := downsampling.ParseMode(*mode)
	if err != nil {
		return err
	}
	data, err := sample.load()
	if err != nil {
		return err
	}
	ds, err := data.Plot().Call(*kind, options...)
	if err != nil {
		return err
	}
	logging.Debug("Curve built", "kind", ds.Kind, "points", ds.Len())
	if !utils.AllFinite(ds.Population, ds.Variable, ds.Line, ds.PovertyLine) {
		return fmt.Errorf("%s: curve is not finite: %w", ds.Kind, analytics.ErrDomain)
	}

	thinned, err := ds.Thin(thinning, *points)
	if err != nil {
		return err
	}
	if thinned != ds {
		logging.Debug("Curve thinned", "mode", thinning, "from", ds.Len(), "to", thinned.Len())
	}
	return printJSON(thinned)
}

func runStat(args []string) error {
	fs := flag.NewFlagSet("stat", flag.ExitOnError)
	sample := addSampleFlags(fs)
	name := fs.String("name", "", "Statistic ("+strings.Join(dataset.StatNames(), ", ")+") or plot ("+strings.Join(dataset.PlotNames(), ", ")+")")
	verbose := fs.Bool("v", false, "Verbose logging")
	_ = fs.Parse(args)
	setupLogger(*verbose)

	data, err := sample.load()
	if err != nil {
		return err
	}

	value, err := data.Concentration().Fallback(*name)
	if err == nil {
		return printJSON(map[string]any{"stat": *name, "value": jsonFloat(value)})
	}
	if !errors.Is(err, dataset.ErrUnknownStat) {
		return err
	}
	series, err := data.Plot().Fallback(*name)
	if err != nil {
		return err
	}
	return printJSON(series)
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	seed := fs.Uint("seed", utils.FixtureSeed, "Generator seed")
	size := fs.Int("size", utils.FixtureSize, "Number of values")
	mu := fs.Float64("mu", 1, "Scale of the uniform values")
	output := fs.String("output", "", "Output path (.csv or .csv.snappy); stdout when empty")
	verbose := fs.Bool("v", false, "Verbose logging")
	_ = fs.Parse(args)
	setupLogger(*verbose)

	if *size < 0 {
		return fmt.Errorf("size must be non-negative, got %d", *size)
	}
	frame := dataset.MakeUniform(uint32(*seed), *size, *mu)
	if *output == "" {
		return dataset.WriteCSV(os.Stdout, frame)
	}
	if err := dataset.WriteFile(*output, frame); err != nil {
		return err
	}
	logging.Info("Dataset written", "path", *output, "rows", frame.Rows())
	return nil
}

// jsonFloat renders non-finite values as strings, which encoding/json
// cannot represent as numbers
func jsonFloat(v float64) any {
	if utils.IsFinite(v) {
		return v
	}
	return fmt.Sprint(v)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
