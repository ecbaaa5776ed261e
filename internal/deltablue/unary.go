package deltablue

// unaryConstraint holds the state shared by constraints with a single
// output and no inputs.
type unaryConstraint struct {
	strength  Strength
	output    *Variable
	satisfied bool

	// input constraints are driven by imperative code and are never stay
	input bool
}

func (c *unaryConstraint) Strength() Strength { return c.strength }

func (c *unaryConstraint) IsInput() bool { return c.input }

func (c *unaryConstraint) IsSatisfied() bool { return c.satisfied }

func (c *unaryConstraint) Output() *Variable { return c.output }

// Execute does nothing: stay and edit constraints compute no value.
func (c *unaryConstraint) Execute() {}

func (c *unaryConstraint) markUnsatisfied() { c.satisfied = false }

func (c *unaryConstraint) chooseMethod(mark int) {
	c.satisfied = c.output.mark != mark && c.strength.Stronger(c.output.walkStrength)
}

func (c *unaryConstraint) inputsDo(func(*Variable)) {}

func (c *unaryConstraint) inputsHasOne(func(*Variable) bool) bool { return false }

func (c *unaryConstraint) recalculate() {
	c.output.walkStrength = c.strength
	c.output.stay = !c.input
}

// StayConstraint marks a variable that should keep its value. While it is
// satisfied its output is a constant during plan execution.
type StayConstraint struct {
	unaryConstraint
}

// NewStay installs a stay constraint on v.
func (p *Planner) NewStay(v *Variable, strength Strength) *StayConstraint {
	c := &StayConstraint{
		unaryConstraint{strength: strength, output: v},
	}
	p.activate(c)
	return c
}

func (c *StayConstraint) addToGraph() {
	c.output.addConstraint(c)
	c.satisfied = false
}

func (c *StayConstraint) removeFromGraph() {
	if c.output != nil {
		c.output.removeConstraint(c)
	}
	c.satisfied = false
}

// EditConstraint marks a variable that imperative code is about to change.
type EditConstraint struct {
	unaryConstraint
}

// NewEdit installs an edit constraint on v.
func (p *Planner) NewEdit(v *Variable, strength Strength) *EditConstraint {
	c := &EditConstraint{
		unaryConstraint{strength: strength, output: v, input: true},
	}
	p.activate(c)
	return c
}

func (c *EditConstraint) addToGraph() {
	c.output.addConstraint(c)
	c.satisfied = false
}

func (c *EditConstraint) removeFromGraph() {
	if c.output != nil {
		c.output.removeConstraint(c)
	}
	c.satisfied = false
}
