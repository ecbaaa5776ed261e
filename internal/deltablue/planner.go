package deltablue

import (
	"fmt"
	"log/slog"
	"slices"
)

// Planner incrementally maintains a dataflow graph over constrained
// variables and extracts plans to resatisfy it.
type Planner struct {
	// incremented for each traversal, never reused
	currentMark int

	logger *slog.Logger
}

func NewPlanner() *Planner {
	return &Planner{
		currentMark: 1,
		logger:      slog.New(slog.DiscardHandler),
	}
}

// SetLogger sets the logger used to report rejected constraints.
func (p *Planner) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p.logger = logger
}

func (p *Planner) newMark() int {
	p.currentMark++
	return p.currentMark
}

// activate adds c to the graph and attempts to satisfy it.
func (p *Planner) activate(c Constraint) {
	c.addToGraph()
	p.incrementalAdd(c)
}

// Destroy deactivates c, removes it from the graph and repairs whatever it
// had displaced.
func (p *Planner) Destroy(c Constraint) {
	if c.IsSatisfied() {
		p.incrementalRemove(c)
	}
	c.removeFromGraph()
}

// incrementalAdd satisfies c. A satisfied constraint may override a weaker
// one on its output, which is then resatisfied another way, until a
// constraint overrides nothing. Every step shares the same mark so the chain
// cannot revisit a variable.
func (p *Planner) incrementalAdd(c Constraint) {
	mark := p.newMark()

	overridden := p.satisfy(c, mark)
	for overridden != nil {
		overridden = p.satisfy(overridden, mark)
	}
}

// satisfy attempts to enforce c and returns the constraint it overrides, if
// any. c must not already be satisfied.
func (p *Planner) satisfy(c Constraint, mark int) Constraint {
	c.chooseMethod(mark)

	if !c.IsSatisfied() {
		if c.Strength() == Required {
			raise(ErrRequiredUnsatisfiable, "%T", c)
		}
		return nil
	}

	// mark inputs so that addPropagate detects cycles
	c.inputsDo(func(in *Variable) { in.mark = mark })

	out := c.Output()
	overridden := out.determinedBy
	if overridden != nil {
		overridden.markUnsatisfied()
	}
	out.determinedBy = c

	if !p.addPropagate(c, mark) {
		if c.Strength() == Required {
			raise(ErrCycle, "%T", c)
		}
		p.logger.Debug("constraint rejected",
			"constraint", fmt.Sprintf("%T", c),
			"strength", c.Strength().String(),
			"reason", "cycle",
		)
		return nil
	}

	out.mark = mark
	return overridden
}

// incrementalRemove retracts c. Constraints downstream that become
// unsatisfied are resatisfied strongest first so weak constraints are not
// needlessly added and then overridden. c must be satisfied.
//
// Re-adding may reject a cycle, which removes constraints recursively. An
// orphan satisfied or dropped from the graph in the meantime is skipped.
func (p *Planner) incrementalRemove(c Constraint) {
	out := c.Output()
	c.markUnsatisfied()
	c.removeFromGraph()

	for _, u := range p.removePropagateFrom(out) {
		if u.IsSatisfied() || !inGraph(u) {
			continue
		}
		p.incrementalAdd(u)
	}
}

// inGraph reports whether c is still attached to its variables. Output
// names an attached end even when c is unsatisfied.
func inGraph(c Constraint) bool {
	return slices.Contains(c.Output().constraints, c)
}

// removePropagateFrom frees out and recomputes walk strengths and stay
// flags downstream of it. It returns the unsatisfied constraints met on the
// way, each once, strongest first.
func (p *Planner) removePropagateFrom(out *Variable) []Constraint {
	var unsatisfied []Constraint
	seen := make(map[Constraint]struct{})

	out.determinedBy = nil
	out.walkStrength = AbsoluteWeakest
	out.stay = true

	todo := []*Variable{out}
	for len(todo) > 0 {
		v := todo[0]
		todo = todo[1:]

		for _, c := range v.constraints {
			if c.IsSatisfied() {
				continue
			}
			if _, ok := seen[c]; !ok {
				seen[c] = struct{}{}
				unsatisfied = append(unsatisfied, c)
			}
		}

		p.constraintsConsuming(v, func(c Constraint) {
			c.recalculate()
			todo = append(todo, c.Output())
		})
	}

	slices.SortStableFunc(unsatisfied, func(a, b Constraint) int {
		switch {
		case a.Strength().Stronger(b.Strength()):
			return -1
		case b.Strength().Stronger(a.Strength()):
			return 1
		default:
			return 0
		}
	})

	return unsatisfied
}

// addPropagate recomputes walk strengths and stay flags downstream of c.
// The caller marked c's inputs, so meeting a marked output means there is a
// path from c's output back to one of its inputs. In that case c is removed
// and false is returned.
func (p *Planner) addPropagate(c Constraint, mark int) bool {
	todo := []Constraint{c}
	for len(todo) > 0 {
		d := todo[0]
		todo = todo[1:]

		if d.Output().mark == mark {
			p.incrementalRemove(c)
			return false
		}

		d.recalculate()
		todo = p.appendConsumers(todo, d.Output())
	}

	return true
}

// ExtractPlanFromConstraints builds a plan starting from the satisfied
// input constraints among cs.
func (p *Planner) ExtractPlanFromConstraints(cs ...Constraint) *Plan {
	sources := make([]Constraint, 0, len(cs))
	for _, c := range cs {
		if c.IsInput() && c.IsSatisfied() {
			sources = append(sources, c)
		}
	}

	return p.makePlan(sources)
}

// makePlan orders the constraints reachable from sources so that none runs
// before its inputs are known. A variable is known if it is marked by an
// earlier step of the plan, is stay, or is not computed by any constraint.
// sources must be satisfied.
func (p *Planner) makePlan(sources []Constraint) *Plan {
	mark := p.newMark()
	plan := newPlan()

	todo := slices.Clone(sources)
	for len(todo) > 0 {
		c := todo[0]
		todo = todo[1:]

		out := c.Output()
		if out.mark != mark && inputsKnown(c, mark) {
			plan.append(c)
			out.mark = mark
			todo = p.appendConsumers(todo, out)
		}
	}

	return plan
}

// PropagateFrom executes every constraint downstream of v, in breadth
// first order, without building a plan.
func (p *Planner) PropagateFrom(v *Variable) {
	todo := p.appendConsumers(nil, v)
	for len(todo) > 0 {
		c := todo[0]
		todo = todo[1:]

		c.Execute()
		todo = p.appendConsumers(todo, c.Output())
	}
}

// Change sets v to value the way an interactive edit would: a temporary
// preferred edit constraint is installed and the extracted plan is run ten
// times before the edit is removed again.
func (p *Planner) Change(v *Variable, value int) {
	edit := p.NewEdit(v, Preferred)
	plan := p.ExtractPlanFromConstraints(edit)

	for range 10 {
		v.value = value
		plan.Execute()
	}

	p.Destroy(edit)
}

// appendConsumers appends to coll the satisfied constraints reading v.
func (p *Planner) appendConsumers(coll []Constraint, v *Variable) []Constraint {
	p.constraintsConsuming(v, func(c Constraint) {
		coll = append(coll, c)
	})
	return coll
}

func (p *Planner) constraintsConsuming(v *Variable, fn func(Constraint)) {
	determining := v.determinedBy
	for _, c := range v.constraints {
		if c != determining && c.IsSatisfied() {
			fn(c)
		}
	}
}
