package deltablue

// Direction records which way a binary constraint flows.
// DirectionNone means the constraint is unsatisfied.
type Direction int

const (
	DirectionNone Direction = iota
	Forward                 // v1 is the input, v2 the output
	Backward                // v2 is the input, v1 the output
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "none"
	}
}

// Constraint is a relationship between variables that the planner keeps
// satisfied when it is strong enough.
type Constraint interface {
	Strength() Strength

	// IsInput reports whether the constraint depends on external state,
	// such as an edit driven by the user.
	IsInput() bool

	IsSatisfied() bool

	// Execute enforces the constraint. The constraint must be satisfied.
	Execute()

	// Output is the variable the constraint currently computes.
	Output() *Variable

	addToGraph()
	removeFromGraph()

	// chooseMethod decides whether the constraint can be satisfied without
	// writing a variable carrying mark, and records the decision.
	chooseMethod(mark int)

	inputsDo(fn func(*Variable))
	inputsHasOne(fn func(*Variable) bool) bool

	markUnsatisfied()

	// recalculate derives the output's walk strength and stay flag from the
	// inputs, executing once when the output ends up stay.
	recalculate()
}

// inputsKnown reports whether every input of c is marked, stay, or not
// computed by any constraint. c must be satisfied.
func inputsKnown(c Constraint, mark int) bool {
	return !c.inputsHasOne(func(v *Variable) bool {
		return !(v.mark == mark || v.stay || v.determinedBy == nil)
	})
}
