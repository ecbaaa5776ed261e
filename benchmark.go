package awfy

import (
	"fmt"
	"slices"

	"github.com/AnatoleLucet/awfy/internal/deltablue"
	"github.com/AnatoleLucet/awfy/internal/richards"
)

// Benchmark is one timed workload. InnerBenchmarkLoop performs inner units
// of work and returns an error if any result is wrong.
type Benchmark interface {
	Name() string
	InnerBenchmarkLoop(inner int) error
}

// DeltaBlue runs the chain and projection scenarios of the planner.
type DeltaBlue struct{}

func (DeltaBlue) Name() string { return "DeltaBlue" }

func (DeltaBlue) InnerBenchmarkLoop(inner int) error {
	if err := deltablue.ChainTest(inner); err != nil {
		return err
	}
	return deltablue.ProjectionTest(inner)
}

// RichardsResult holds the counters of one scheduler run.
type RichardsResult = richards.Result

// Richards runs the task scheduler simulation inner times.
type Richards struct {
	// OnResult, if set, receives the counters of every run.
	OnResult func(RichardsResult)
}

func (Richards) Name() string { return "Richards" }

func (r Richards) InnerBenchmarkLoop(inner int) error {
	for range inner {
		res, err := richards.NewScheduler().Run()
		if r.OnResult != nil {
			r.OnResult(res)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

var benchmarks = []Benchmark{DeltaBlue{}, Richards{}}

// Names returns the registered benchmark names in sorted order.
func Names() []string {
	names := make([]string, 0, len(benchmarks))
	for _, b := range benchmarks {
		names = append(names, b.Name())
	}
	slices.Sort(names)
	return names
}

// Lookup returns the benchmark registered under name.
func Lookup(name string) (Benchmark, error) {
	for _, b := range benchmarks {
		if b.Name() == name {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBenchmark, name)
}
