package awfy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/AnatoleLucet/awfy/internal/deltablue"
	"github.com/AnatoleLucet/awfy/internal/richards"
)

var (
	ErrUnknownBenchmark = errors.New("unknown benchmark")

	// ErrIncorrectResult wraps every verification failure of a benchmark.
	ErrIncorrectResult = errors.New("benchmark failed with incorrect result")
)

type RunOptions struct {
	Iterations      int
	WarmUp          int
	InnerIterations int

	Logger *slog.Logger

	// OnIteration is called after each timed iteration.
	OnIteration func(Iteration)
}

// Iteration is the outcome of one timed InnerBenchmarkLoop call.
type Iteration struct {
	Benchmark string
	Index     int
	Runtime   time.Duration
	Err       error
}

type Report struct {
	Benchmark  string
	Iterations []time.Duration
	Total      time.Duration
}

// Average returns the mean iteration runtime.
func (r Report) Average() time.Duration {
	if len(r.Iterations) == 0 {
		return 0
	}
	return r.Total / time.Duration(len(r.Iterations))
}

func (r Report) String() string {
	return fmt.Sprintf("%s: iterations=%d average: %dus total: %dus",
		r.Benchmark, len(r.Iterations), r.Average().Microseconds(), r.Total.Microseconds())
}

// Run warms b up, then times opts.Iterations calls of its inner loop.
// The context is checked between iterations only.
func Run(ctx context.Context, b Benchmark, opts RunOptions) (Report, error) {
	opts = withDefaults(opts)
	logger := opts.Logger.With("benchmark", b.Name())

	report := Report{Benchmark: b.Name()}

	for i := range opts.WarmUp {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := innerLoop(b, opts.InnerIterations); err != nil {
			logger.Error("warm up failed", "iteration", i, "error", err)
			return report, err
		}
	}

	for i := range opts.Iterations {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		start := time.Now()
		err := innerLoop(b, opts.InnerIterations)
		elapsed := time.Since(start)

		if opts.OnIteration != nil {
			opts.OnIteration(Iteration{Benchmark: b.Name(), Index: i, Runtime: elapsed, Err: err})
		}
		if err != nil {
			logger.Error("iteration failed", "iteration", i, "error", err)
			return report, err
		}

		logger.Debug("iteration finished", "iteration", i, "runtime_us", elapsed.Microseconds())
		report.Iterations = append(report.Iterations, elapsed)
		report.Total += elapsed
	}

	return report, nil
}

func withDefaults(opts RunOptions) RunOptions {
	if opts.Iterations <= 0 {
		opts.Iterations = 1
	}
	if opts.WarmUp < 0 {
		opts.WarmUp = 0
	}
	if opts.InnerIterations <= 0 {
		opts.InnerIterations = 1
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return opts
}

func innerLoop(b Benchmark, inner int) error {
	err := b.InnerBenchmarkLoop(inner)
	if err == nil {
		return nil
	}

	if errors.Is(err, deltablue.ErrVerification) || errors.Is(err, richards.ErrVerification) {
		return fmt.Errorf("%w: %w", ErrIncorrectResult, err)
	}
	return err
}
