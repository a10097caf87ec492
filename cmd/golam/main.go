package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/vic/golam/pkg/config"
	"github.com/vic/golam/pkg/interp"
	"github.com/vic/golam/pkg/reduce"
)

var (
	configFile = flag.String("config", "", "YAML config file (default "+config.DefaultFile+" if present)")
	maxPasses  = flag.Int("max-passes", -1, "stop a reduction after this many passes (0 = unbounded)")
	showStats  = flag.Bool("stats", false, "print reduction statistics to stderr")
	traceCap   = flag.Int("trace", -1, "print up to this many rewrite events of the last statement to stderr")
	verbose    = flag.Bool("v", false, "debug logging to stderr")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: golam [flags] file.lc\n\n")
	fmt.Fprintf(os.Stderr, "golam normalizes untyped lambda calculus programs.\n\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return interp.ExitFailure
	}
	if *maxPasses >= 0 {
		cfg.MaxPasses = *maxPasses
	}
	if *traceCap >= 0 {
		cfg.Trace = *traceCap
	}
	if *showStats {
		cfg.Stats = true
	}
	if *verbose || os.Getenv("GOLAM_DEBUG") != "" {
		cfg.LogLevel = "debug"
	}
	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return interp.ExitFailure
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var name string
	var input []byte
	if flag.NArg() > 0 {
		name = filepath.Clean(flag.Arg(0))
		input, err = os.ReadFile(name)
		if err != nil {
			fmt.Println("Error: Include a local file name to interpret")
			logger.Error("read input", slog.String("file", name), slog.Any("err", err))
			return interp.ExitFailure
		}
	} else {
		name = "<stdin>"
		input, err = io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			return interp.ExitFailure
		}
	}

	in := interp.New(os.Stdout, cfg.LibraryPath, reduce.Options{
		MaxPasses: cfg.MaxPasses,
		Logger:    logger,
	})
	in.Trace = cfg.Trace

	start := time.Now()
	err = in.Run(name, string(input))
	elapsed := time.Since(start)

	if cfg.Trace > 0 {
		for _, ev := range in.TraceEvents() {
			fmt.Fprintf(os.Stderr, "%4d pass %-4d %-8s %s\n", ev.Step, ev.Pass, ev.Rule, ev.Name)
		}
	}
	if cfg.Stats {
		printStats(in.Stats(), elapsed)
	}
	return interp.Report(os.Stdout, err)
}

func printStats(stats reduce.Stats, elapsed time.Duration) {
	seconds := elapsed.Seconds()

	fmt.Fprintf(os.Stderr, "\nStats:\n")
	fmt.Fprintf(os.Stderr, "Time: %v\n", elapsed)
	fmt.Fprintf(os.Stderr, "Passes: %d\n", stats.Passes)
	fmt.Fprintf(os.Stderr, "Total Rewrites: %d", stats.Total())
	if seconds > 0 {
		fmt.Fprintf(os.Stderr, " (%.2f ops/sec)", float64(stats.Total())/seconds)
	}
	fmt.Fprintf(os.Stderr, "\n")

	fmt.Fprintf(os.Stderr, "\nBreakdown:\n")
	for _, row := range []struct {
		label string
		n     uint64
	}{
		{"Inlining:      ", stats.Inlines},
		{"Beta Reduction:", stats.BetaSteps},
		{"Alpha Renaming:", stats.AlphaSteps},
		{"Collapse:      ", stats.Collapses},
	} {
		fmt.Fprintf(os.Stderr, "  %s %6d", row.label, row.n)
		if seconds > 0 {
			fmt.Fprintf(os.Stderr, " (%.2f ops/sec)", float64(row.n)/seconds)
		}
		fmt.Fprintf(os.Stderr, "\n")
	}
}
