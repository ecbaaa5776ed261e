package awfy

import "github.com/AnatoleLucet/awfy/internal/deltablue"

type (
	Strength   = deltablue.Strength
	Variable   = deltablue.Variable
	Constraint = deltablue.Constraint
	Plan       = deltablue.Plan
)

const (
	AbsoluteStrongest = deltablue.AbsoluteStrongest
	Required          = deltablue.Required
	StrongPreferred   = deltablue.StrongPreferred
	Preferred         = deltablue.Preferred
	StrongDefault     = deltablue.StrongDefault
	Default           = deltablue.Default
	WeakDefault       = deltablue.WeakDefault
	AbsoluteWeakest   = deltablue.AbsoluteWeakest
)

// NewVariable creates a constrained variable holding value.
func NewVariable(value int) *Variable {
	return deltablue.NewVariable(value)
}

// Equal keeps a and b equal.
// Constraints are solved by the planner of the calling goroutine.
func Equal(a, b *Variable, strength Strength) Constraint {
	return deltablue.Current().NewEquality(a, b, strength)
}

// Scale keeps dst = src*scale + offset.
func Scale(src, scale, offset, dst *Variable, strength Strength) Constraint {
	return deltablue.Current().NewScale(src, scale, offset, dst, strength)
}

// Stay asks for v to keep its current value.
func Stay(v *Variable, strength Strength) Constraint {
	return deltablue.Current().NewStay(v, strength)
}

// Edit marks v as driven by the caller. Use PlanFor to get the plan that
// propagates its changes.
func Edit(v *Variable, strength Strength) Constraint {
	return deltablue.Current().NewEdit(v, strength)
}

// PlanFor extracts the plan that resatisfies the graph when the variables
// of the given edit constraints change.
func PlanFor(edits ...Constraint) *Plan {
	return deltablue.Current().ExtractPlanFromConstraints(edits...)
}

// Change sets v to value and propagates it through the graph.
func Change(v *Variable, value int) {
	deltablue.Current().Change(v, value)
}

// Destroy removes c from the graph and repairs what it displaced.
func Destroy(c Constraint) {
	deltablue.Current().Destroy(c)
}

// Solve runs fn and returns the fatal planner error it raised, such as a
// required constraint that could not be satisfied.
func Solve(fn func()) error {
	return deltablue.Protect(fn)
}
