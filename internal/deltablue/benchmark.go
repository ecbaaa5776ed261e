package deltablue

import "fmt"

// ChainTest builds a chain of n required equality constraints with a stay
// constraint on one end, then edits the other end and checks that every
// new value reaches the far end of the chain.
func ChainTest(n int) (err error) {
	if n < 0 {
		return fmt.Errorf("chain test needs a non-negative length, got %d", n)
	}

	if ferr := Protect(func() { err = chainTest(n) }); ferr != nil {
		return ferr
	}
	return err
}

func chainTest(n int) error {
	planner := NewPlanner()

	vars := make([]*Variable, n+1)
	for i := range vars {
		vars[i] = NewVariable(0)
	}

	for i := range n {
		planner.NewEquality(vars[i], vars[i+1], Required)
	}
	planner.NewStay(vars[n], StrongDefault)

	edit := planner.NewEdit(vars[0], Preferred)
	plan := planner.ExtractPlanFromConstraints(edit)

	for i := range 100 {
		vars[0].SetValue(i)
		plan.Execute()

		if got := vars[n].Value(); got != i {
			return fmt.Errorf("%w: chain test: expected %d at the end of the chain, got %d", ErrVerification, i, got)
		}
	}

	planner.Destroy(edit)
	return nil
}

// ProjectionTest relates two sets of n variables by dst = src*scale + offset
// and checks the values after changing either side, the scale and the
// offset.
func ProjectionTest(n int) (err error) {
	if n < 1 {
		return fmt.Errorf("projection test needs at least one variable pair, got %d", n)
	}

	if ferr := Protect(func() { err = projectionTest(n) }); ferr != nil {
		return ferr
	}
	return err
}

func projectionTest(n int) error {
	planner := NewPlanner()

	scale := NewVariable(10)
	offset := NewVariable(1000)

	var src, dst *Variable
	dests := make([]*Variable, 0, n)
	for i := 1; i <= n; i++ {
		src = NewVariable(i)
		dst = NewVariable(i)
		dests = append(dests, dst)

		planner.NewStay(src, Default)
		planner.NewScale(src, scale, offset, dst, Required)
	}

	planner.Change(src, 17)
	if dst.Value() != 1170 {
		return fmt.Errorf("%w: projection test 1: expected 1170, got %d", ErrVerification, dst.Value())
	}

	planner.Change(dst, 1050)
	if src.Value() != 5 {
		return fmt.Errorf("%w: projection test 2: expected 5, got %d", ErrVerification, src.Value())
	}

	planner.Change(scale, 5)
	for i := 0; i < n-1; i++ {
		if want := (i+1)*5 + 1000; dests[i].Value() != want {
			return fmt.Errorf("%w: projection test 3: dest %d expected %d, got %d", ErrVerification, i, want, dests[i].Value())
		}
	}

	planner.Change(offset, 2000)
	for i := 0; i < n-1; i++ {
		if want := (i+1)*5 + 2000; dests[i].Value() != want {
			return fmt.Errorf("%w: projection test 4: dest %d expected %d, got %d", ErrVerification, i, want, dests[i].Value())
		}
	}

	return nil
}
