package deltablue

import (
	"errors"
	"fmt"
)

var (
	// ErrRequiredUnsatisfiable is raised when a required constraint loses a
	// satisfy attempt.
	ErrRequiredUnsatisfiable = errors.New("could not satisfy a required constraint")

	// ErrCycle is raised when a required constraint would close a cycle in
	// the dataflow graph.
	ErrCycle = errors.New("cycle encountered")

	// ErrVerification is returned when a benchmark scenario computes a wrong
	// value.
	ErrVerification = errors.New("verification failed")
)

// fatal carries an unrecoverable planner error through a panic so that Protect
// can tell it apart from unrelated panics.
type fatal struct {
	err error
}

func raise(err error, format string, args ...any) {
	panic(fatal{fmt.Errorf("%w: "+format, append([]any{err}, args...)...)})
}

// Protect calls fn and returns the fatal planner error raised inside it, if any.
// Other panics propagate unchanged.
func Protect(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(fatal)
			if !ok {
				panic(r)
			}
			err = f.err
		}
	}()

	fn()
	return nil
}
