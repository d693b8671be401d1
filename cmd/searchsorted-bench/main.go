// Command searchsorted-bench times the batched search strategies over a grid
// of reference and query sizes and prints one result block per strategy.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/hupe1980/sortsearch"
	"github.com/hupe1980/sortsearch/bench"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// cliConfig is the parsed command line.
type cliConfig struct {
	bench       bench.Config
	dtype       sortsearch.DType
	metricsFile string
	logLevel    slog.Level
	logFormat   string
}

// usageError marks errors that are the caller's fault.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	logger := newLogger(stderr, cfg.logFormat, cfg.logLevel)

	var prom *bench.PrometheusCollector
	opts := []bench.Option{bench.WithLogger(logger)}
	if cfg.metricsFile != "" {
		prom = bench.NewPrometheusCollector()
		opts = append(opts,
			bench.WithMetricsCollector(prom),
			bench.WithObserver(prom.ObserveResult),
		)
	}

	var results []bench.Result
	switch cfg.dtype {
	case sortsearch.Float64:
		results, err = bench.Run[float64](ctx, cfg.bench, opts...)
	default:
		results, err = bench.Run[float32](ctx, cfg.bench, opts...)
	}
	if err != nil {
		logger.Error("benchmark failed", "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}

	for _, kind := range cfg.bench.Strategies {
		if err := bench.WriteResults(stdout, kind.String(), cfg.bench.Side, bench.ByStrategy(results, kind)); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitFailure
		}
	}

	if prom != nil {
		if err := prom.WriteTextfile(cfg.metricsFile); err != nil {
			fmt.Fprintf(stderr, "Error: write metrics: %v\n", err)
			return exitFailure
		}
		logger.Info("metrics written", "path", cfg.metricsFile)
	}
	return exitOK
}

func parseArgs(args []string, stderr io.Writer) (cliConfig, error) {
	def := bench.DefaultConfig()

	fs := flag.NewFlagSet("searchsorted-bench", flag.ContinueOnError)
	fs.SetOutput(stderr)

	side := fs.String("side", def.Side.String(), "tie-break side (left, right)")
	dtype := fs.String("dtype", sortsearch.Float32.String(), "element type (float32, float64)")
	aSizes := fs.String("a-sizes", joinInts(def.ASizes), "comma-separated reference lengths")
	vSizes := fs.String("v-sizes", joinInts(def.VSizes), "comma-separated query batch sizes")
	strategies := fs.String("strategies", "native,linear,binary", "comma-separated strategies (native, linear, binary)")
	repeats := fs.Int("iters", def.Repeats, "timed calls per cell")
	warmup := fs.Int("warmup", def.Warmup, "untimed calls per cell before timing")
	seed := fs.Int64("seed", def.Seed, "data generator seed")
	workers := fs.Int64("workers", 0, "max goroutines per search (0 = GOMAXPROCS)")
	trialRate := fs.Float64("trial-rate", 0, "max timed calls per second (0 = unlimited)")
	memoryLimit := fs.Int64("memory-limit", 0, "scratch memory limit in bytes (0 = unlimited)")
	metricsFile := fs.String("metrics-file", "", "write Prometheus metrics to this textfile")
	logLevel := fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	logFormat := fs.String("log-format", "text", "log format (text, json)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: searchsorted-bench [options]\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}
	if fs.NArg() > 0 {
		return cliConfig{}, &usageError{fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))}
	}

	cfg := cliConfig{
		metricsFile: *metricsFile,
		logFormat:   strings.ToLower(*logFormat),
	}
	cfg.bench = def
	cfg.bench.Repeats = *repeats
	cfg.bench.Warmup = *warmup
	cfg.bench.Seed = *seed
	cfg.bench.Workers = *workers
	cfg.bench.TrialsPerSecond = *trialRate
	cfg.bench.MemoryLimitBytes = *memoryLimit

	var err error
	if cfg.bench.Side, err = sortsearch.ParseSide(*side); err != nil {
		return cliConfig{}, &usageError{err}
	}
	if cfg.dtype, err = sortsearch.ParseDType(*dtype); err != nil {
		return cliConfig{}, &usageError{err}
	}
	if cfg.bench.ASizes, err = parseInts(*aSizes); err != nil {
		return cliConfig{}, &usageError{fmt.Errorf("a-sizes: %w", err)}
	}
	if cfg.bench.VSizes, err = parseInts(*vSizes); err != nil {
		return cliConfig{}, &usageError{fmt.Errorf("v-sizes: %w", err)}
	}
	if cfg.bench.Strategies, err = sortsearch.ParseStrategies(*strategies); err != nil {
		return cliConfig{}, &usageError{err}
	}
	if err := cfg.logLevel.UnmarshalText([]byte(*logLevel)); err != nil {
		return cliConfig{}, &usageError{fmt.Errorf("log-level: %w", err)}
	}
	if cfg.logFormat != "text" && cfg.logFormat != "json" {
		return cliConfig{}, &usageError{fmt.Errorf("log-format: %q is not text or json", *logFormat)}
	}
	if *repeats <= 0 {
		return cliConfig{}, &usageError{fmt.Errorf("iters must be positive (got %d)", *repeats)}
	}
	if *workers < 0 || *trialRate < 0 || *memoryLimit < 0 {
		return cliConfig{}, &usageError{errors.New("workers, trial-rate and memory-limit must not be negative")}
	}
	if err := cfg.bench.Validate(); err != nil {
		return cliConfig{}, &usageError{err}
	}
	return cfg, nil
}

func newLogger(w io.Writer, format string, level slog.Level) *sortsearch.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return sortsearch.NewLogger(slog.NewJSONHandler(w, opts))
	}
	return sortsearch.NewLogger(slog.NewTextHandler(w, opts))
}

// parseInts parses a comma-separated list of sizes. Negative entries are
// rejected later by bench.Config.Validate.
func parseInts(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", part)
		}
		out = append(out, n)
	}
	return out, nil
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
