//go:build !wasm

package deltablue

import (
	"sync"

	"github.com/petermattis/goid"
)

var planners sync.Map

// Current returns the planner bound to the calling goroutine, creating it on
// first use.
func Current() *Planner {
	gid := goid.Get()

	if p, ok := planners.Load(gid); ok {
		return p.(*Planner)
	}

	p := NewPlanner()
	planners.Store(gid, p)
	return p
}

// ResetCurrent forgets the calling goroutine's planner.
func ResetCurrent() {
	planners.Delete(goid.Get())
}
