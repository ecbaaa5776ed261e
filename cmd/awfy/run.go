package main

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/AnatoleLucet/awfy"
	"github.com/AnatoleLucet/awfy/internal/config"
	"github.com/AnatoleLucet/awfy/internal/metrics"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type runFlags struct {
	iterations  int
	warmUp      int
	inner       int
	parallel    bool
	metricsFile string
}

func newRunCmd(global *globalFlags) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run [benchmark...]",
		Short: "Run benchmarks, all of them when none is named",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := global.setup(cmd)
			if err != nil {
				return err
			}
			defer logger.Close()

			flags.apply(cmd, &cfg)

			names := args
			if len(names) == 0 {
				names = awfy.Names()
			}

			benchmarks := make([]awfy.Benchmark, 0, len(names))
			for _, name := range names {
				b, err := awfy.Lookup(name)
				if err != nil {
					return err
				}
				benchmarks = append(benchmarks, b)
			}

			runID := uuid.NewString()
			rec := metrics.NewRecorder()
			out := &lineWriter{w: cmd.OutOrStdout()}

			log := logger.With("run_id", runID)
			log.Info("run started", "benchmarks", names, "parallel", cfg.Parallel)

			var total atomic.Int64

			g, ctx := errgroup.WithContext(cmd.Context())
			if !cfg.Parallel {
				g.SetLimit(1)
			}

			for _, b := range benchmarks {
				if r, ok := b.(awfy.Richards); ok {
					r.OnResult = rec.ObserveRichards
					b = r
				}

				opts := cfg.For(b.Name()).Options()
				opts.Logger = log
				opts.OnIteration = func(it awfy.Iteration) {
					rec.Observe(it)
					if it.Err == nil {
						out.printf("%s: iterations=1 runtime: %dus\n", it.Benchmark, it.Runtime.Microseconds())
					}
				}

				g.Go(func() error {
					out.printf("Starting %s benchmark ...\n", b.Name())

					report, err := awfy.Run(ctx, b, opts)
					if err != nil {
						return fmt.Errorf("%s: %w", b.Name(), err)
					}
					out.printf("%s\n", report)

					total.Add(int64(report.Total))
					return nil
				})
			}

			err = g.Wait()

			if cfg.MetricsFile != "" {
				if werr := rec.WriteFile(cfg.MetricsFile); werr != nil {
					log.Error("write metrics", "file", cfg.MetricsFile, "error", werr)
					if err == nil {
						err = werr
					}
				}
			}

			if err != nil {
				log.Error("run failed", "error", err)
				return err
			}
			out.printf("Total Runtime: %dus\n", time.Duration(total.Load()).Microseconds())
			log.Info("run finished")
			return nil
		},
	}

	cmd.Flags().IntVar(&flags.iterations, "iterations", 1, "timed iterations per benchmark")
	cmd.Flags().IntVar(&flags.warmUp, "warmup", 0, "untimed iterations before timing")
	cmd.Flags().IntVar(&flags.inner, "inner", 1, "inner iterations per timed iteration")
	cmd.Flags().BoolVar(&flags.parallel, "parallel", false, "run the benchmarks concurrently")
	cmd.Flags().StringVar(&flags.metricsFile, "metrics-file", "", "write prometheus metrics to this file")

	return cmd
}

// apply copies the flags the user set over cfg. Loop counts given on the
// command line apply to every benchmark.
func (f *runFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed

	if changed("iterations") {
		cfg.Defaults.Iterations = f.iterations
	}
	if changed("warmup") {
		cfg.Defaults.WarmUp = f.warmUp
	}
	if changed("inner") {
		cfg.Defaults.Inner = f.inner
	}

	for name, o := range cfg.Benchmarks {
		if changed("iterations") {
			o.Iterations = nil
		}
		if changed("warmup") {
			o.WarmUp = nil
		}
		if changed("inner") {
			o.Inner = nil
		}
		cfg.Benchmarks[name] = o
	}

	if changed("parallel") {
		cfg.Parallel = f.parallel
	}
	if changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
}

// lineWriter serializes whole lines from concurrent benchmarks.
type lineWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lineWriter) printf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, format, args...)
}
