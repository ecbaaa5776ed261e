package deltablue

import "iter"

// Variable is a constrained value. Besides the value it carries the
// planner's bookkeeping for the current dataflow graph.
type Variable struct {
	value int

	// every constraint referencing this variable, in insertion order
	constraints []Constraint

	// the constraint currently computing this variable, nil if none
	determinedBy Constraint

	walkStrength Strength

	// true if the variable is a constant at plan execution time
	stay bool

	// scratch field set by planner traversals, compared against fresh marks
	mark int
}

func NewVariable(value int) *Variable {
	return &Variable{
		value:        value,
		constraints:  make([]Constraint, 0, 2),
		walkStrength: AbsoluteWeakest,
		stay:         true,
	}
}

func (v *Variable) Value() int { return v.value }

func (v *Variable) SetValue(value int) { v.value = value }

func (v *Variable) Stay() bool { return v.stay }

func (v *Variable) WalkStrength() Strength { return v.walkStrength }

// DeterminedBy returns the constraint whose output is v, or nil.
func (v *Variable) DeterminedBy() Constraint { return v.determinedBy }

// Constraints returns an iterator over the constraints that reference v.
func (v *Variable) Constraints() iter.Seq[Constraint] {
	return func(yield func(Constraint) bool) {
		for _, c := range v.constraints {
			if !yield(c) {
				return
			}
		}
	}
}

func (v *Variable) addConstraint(c Constraint) {
	v.constraints = append(v.constraints, c)
}

// removeConstraint drops every trace of c, compared by identity.
func (v *Variable) removeConstraint(c Constraint) {
	for i, other := range v.constraints {
		if other == c {
			v.constraints = append(v.constraints[:i], v.constraints[i+1:]...)
			break
		}
	}

	if v.determinedBy == c {
		v.determinedBy = nil
	}
}
