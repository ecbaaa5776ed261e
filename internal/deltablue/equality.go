package deltablue

// EqualityConstraint keeps two variables equal: v1 = v2.
type EqualityConstraint struct {
	binaryConstraint
}

// NewEquality installs an equality constraint between v1 and v2.
func (p *Planner) NewEquality(v1, v2 *Variable, strength Strength) *EqualityConstraint {
	c := &EqualityConstraint{
		binaryConstraint{strength: strength, v1: v1, v2: v2},
	}
	p.activate(c)
	return c
}

func (c *EqualityConstraint) addToGraph() { c.addEnds(c) }

func (c *EqualityConstraint) removeFromGraph() { c.removeEnds(c) }

func (c *EqualityConstraint) Execute() {
	if c.direction == Forward {
		c.v2.value = c.v1.value
	} else {
		c.v1.value = c.v2.value
	}
}

func (c *EqualityConstraint) recalculate() {
	in, out := c.input(), c.Output()

	out.walkStrength = c.strength.Weakest(in.walkStrength)
	out.stay = in.stay
	if out.stay {
		c.Execute()
	}
}
