//go:build wasm

package deltablue

import "sync"

var (
	mu            sync.Mutex
	globalPlanner *Planner
)

func Current() *Planner {
	mu.Lock()
	defer mu.Unlock()

	if globalPlanner == nil {
		globalPlanner = NewPlanner()
	}
	return globalPlanner
}

func ResetCurrent() {
	mu.Lock()
	globalPlanner = nil
	mu.Unlock()
}
