// Command memvecbench compares memvec's primitives with the standard
// library equivalents and prints the relative gain per buffer size.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/memvec"
	"github.com/hupe1980/memvec/bench"
)

var (
	ops        = flag.String("ops", "copy,move,strlen", "comma-separated operations to measure")
	sizes      = flag.String("sizes", "", "comma-separated buffer sizes in bytes (default: per-op defaults)")
	iterations = flag.Int("iterations", 0, "loop count per measurement (default: per-op defaults)")
	maxBytes   = flag.Int64("max-bytes", bench.DefaultMaxBytes, "cap on bytes processed per measurement loop (<= 0 disables)")
	seed       = flag.Int64("seed", bench.DefaultSeed, "seed for buffer contents")
	jsonLogs   = flag.Bool("json", false, "emit JSON logs")
	verbose    = flag.Bool("v", false, "verbose output")
	metricsOut = flag.String("metrics-out", "", "write results in Prometheus text format to this file")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "memvecbench:", err)
		var mismatch *bench.ErrMismatch
		if errors.As(err, &mismatch) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run() error {
	opList, err := bench.ParseOps(*ops)
	if err != nil {
		return err
	}
	sizeList, err := parseSizes(*sizes)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	logger := bench.NewTextLogger(level)
	if *jsonLogs {
		logger = bench.NewJSONLogger(level)
	}

	opts := []bench.Option{
		bench.WithOps(opList...),
		bench.WithIterations(*iterations),
		bench.WithMaxBytes(*maxBytes),
		bench.WithSeed(*seed),
		bench.WithLogger(logger),
	}
	if len(sizeList) > 0 {
		opts = append(opts, bench.WithSizes(sizeList...))
	}

	var reg *prometheus.Registry
	if *metricsOut != "" {
		reg = prometheus.NewRegistry()
		collector, err := bench.NewPrometheusCollector(reg)
		if err != nil {
			return err
		}
		opts = append(opts, bench.WithMetrics(collector))
	}

	suite, err := bench.New(opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("memvec benchmark (GOOS=%s GOARCH=%s isa=%s avx2=%v)\n\n",
		runtime.GOOS, runtime.GOARCH, memvec.ActiveISA(), memvec.HasAVX2())

	results, runErr := suite.Run(ctx)
	if err := bench.WriteTable(os.Stdout, results); err != nil {
		return err
	}

	if reg != nil {
		if err := prometheus.WriteToTextfile(*metricsOut, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return runErr
}

func parseSizes(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", part, err)
		}
		out = append(out, n)
	}
	return out, nil
}
