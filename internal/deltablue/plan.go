package deltablue

import "iter"

// Plan is an ordered list of constraints that, executed in sequence,
// resatisfies the graph after its input variables change.
type Plan struct {
	constraints []Constraint
}

func newPlan() *Plan {
	return &Plan{
		constraints: make([]Constraint, 0, 15),
	}
}

func (p *Plan) append(c Constraint) {
	p.constraints = append(p.constraints, c)
}

// Execute runs every constraint of the plan in order.
func (p *Plan) Execute() {
	for _, c := range p.constraints {
		c.Execute()
	}
}

func (p *Plan) Len() int { return len(p.constraints) }

// Constraints returns an iterator over the plan in execution order.
func (p *Plan) Constraints() iter.Seq[Constraint] {
	return func(yield func(Constraint) bool) {
		for _, c := range p.constraints {
			if !yield(c) {
				return
			}
		}
	}
}
