package awfy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstraints(t *testing.T) {
	t.Run("edits propagate through a plan", func(t *testing.T) {
		celsius := NewVariable(0)
		scaled := NewVariable(0)
		fahrenheit := NewVariable(0)
		nine, five := NewVariable(9), NewVariable(5)
		zero, thirtyTwo := NewVariable(0), NewVariable(32)

		Stay(nine, Required)
		Stay(five, Required)
		Stay(zero, Required)
		Stay(thirtyTwo, Required)
		Stay(celsius, WeakDefault)

		Scale(celsius, nine, zero, scaled, Required)
		Equal(scaled, fahrenheit, Required)

		edit := Edit(celsius, Preferred)
		plan := PlanFor(edit)

		celsius.SetValue(100)
		plan.Execute()
		assert.Equal(t, 900, fahrenheit.Value())

		Destroy(edit)
	})

	t.Run("change sets the value and keeps the graph consistent", func(t *testing.T) {
		a, b := NewVariable(1), NewVariable(1)
		Equal(a, b, Required)
		Stay(b, Default)

		Change(a, 12)
		assert.Equal(t, 12, a.Value())
		assert.Equal(t, 12, b.Value())

		Change(b, 3)
		assert.Equal(t, 3, a.Value())
	})

	t.Run("solve reports an unsatisfiable required constraint", func(t *testing.T) {
		v := NewVariable(0)

		err := Solve(func() {
			Stay(v, Required)
			Edit(v, Required)
		})
		require.Error(t, err)
	})
}
