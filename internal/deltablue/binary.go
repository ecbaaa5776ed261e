package deltablue

// binaryConstraint holds the state shared by constraints with two possible
// output variables.
type binaryConstraint struct {
	strength  Strength
	v1        *Variable
	v2        *Variable
	direction Direction
}

func (c *binaryConstraint) Strength() Strength { return c.strength }

func (c *binaryConstraint) IsInput() bool { return false }

func (c *binaryConstraint) IsSatisfied() bool { return c.direction != DirectionNone }

func (c *binaryConstraint) Direction() Direction { return c.direction }

func (c *binaryConstraint) markUnsatisfied() { c.direction = DirectionNone }

func (c *binaryConstraint) Output() *Variable {
	if c.direction == Forward {
		return c.v2
	}
	return c.v1
}

func (c *binaryConstraint) input() *Variable {
	if c.direction == Forward {
		return c.v1
	}
	return c.v2
}

// chooseMethod picks the direction from the marks and walk strengths of
// both ends.
func (c *binaryConstraint) chooseMethod(mark int) {
	if c.v1.mark == mark {
		if c.v2.mark != mark && c.strength.Stronger(c.v2.walkStrength) {
			c.direction = Forward
		} else {
			c.direction = DirectionNone
		}
		return
	}

	if c.v2.mark == mark {
		if c.v1.mark != mark && c.strength.Stronger(c.v1.walkStrength) {
			c.direction = Backward
		} else {
			c.direction = DirectionNone
		}
		return
	}

	// neither end is marked, output the weaker one
	if c.v1.walkStrength.Weaker(c.v2.walkStrength) {
		if c.strength.Stronger(c.v1.walkStrength) {
			c.direction = Backward
		} else {
			c.direction = DirectionNone
		}
		return
	}

	if c.strength.Stronger(c.v2.walkStrength) {
		c.direction = Forward
	} else {
		c.direction = DirectionNone
	}
}

func (c *binaryConstraint) inputsDo(fn func(*Variable)) {
	fn(c.input())
}

func (c *binaryConstraint) inputsHasOne(fn func(*Variable) bool) bool {
	return fn(c.input())
}

func (c *binaryConstraint) addEnds(owner Constraint) {
	c.v1.addConstraint(owner)
	c.v2.addConstraint(owner)
	c.direction = DirectionNone
}

func (c *binaryConstraint) removeEnds(owner Constraint) {
	if c.v1 != nil {
		c.v1.removeConstraint(owner)
	}
	if c.v2 != nil {
		c.v2.removeConstraint(owner)
	}
	c.direction = DirectionNone
}
