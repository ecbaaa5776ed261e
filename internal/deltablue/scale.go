package deltablue

// ScaleConstraint relates two variables linearly: v2 = v1*scale + offset.
// Either end may be written; scale and offset are read-only inputs.
type ScaleConstraint struct {
	binaryConstraint

	scale  *Variable
	offset *Variable
}

// NewScale installs dst = src*scale + offset.
func (p *Planner) NewScale(src, scale, offset, dst *Variable, strength Strength) *ScaleConstraint {
	c := &ScaleConstraint{
		binaryConstraint: binaryConstraint{strength: strength, v1: src, v2: dst},
		scale:            scale,
		offset:           offset,
	}
	p.activate(c)
	return c
}

func (c *ScaleConstraint) addToGraph() {
	c.addEnds(c)
	c.scale.addConstraint(c)
	c.offset.addConstraint(c)
}

func (c *ScaleConstraint) removeFromGraph() {
	c.removeEnds(c)
	if c.scale != nil {
		c.scale.removeConstraint(c)
	}
	if c.offset != nil {
		c.offset.removeConstraint(c)
	}
}

func (c *ScaleConstraint) Execute() {
	if c.direction == Forward {
		c.v2.value = c.v1.value*c.scale.value + c.offset.value
	} else {
		c.v1.value = (c.v2.value - c.offset.value) / c.scale.value
	}
}

func (c *ScaleConstraint) inputsDo(fn func(*Variable)) {
	fn(c.input())
	fn(c.scale)
	fn(c.offset)
}

func (c *ScaleConstraint) inputsHasOne(fn func(*Variable) bool) bool {
	return fn(c.input()) || fn(c.scale) || fn(c.offset)
}

func (c *ScaleConstraint) recalculate() {
	in, out := c.input(), c.Output()

	out.walkStrength = c.strength.Weakest(in.walkStrength)
	out.stay = in.stay && c.scale.stay && c.offset.stay
	if out.stay {
		c.Execute()
	}
}
