package deltablue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrength(t *testing.T) {
	t.Run("orders by arithmetic value", func(t *testing.T) {
		for _, a := range Strengths() {
			for _, b := range Strengths() {
				assert.Equal(t, a.ArithmeticValue() < b.ArithmeticValue(), a.Stronger(b), "%s stronger %s", a, b)

				holds := 0
				for _, ok := range []bool{a.Stronger(b), a.Weaker(b), a.SameAs(b)} {
					if ok {
						holds++
					}
				}
				assert.Equal(t, 1, holds, "%s vs %s", a, b)
			}
		}
	})

	t.Run("has eight levels from strongest to weakest", func(t *testing.T) {
		all := Strengths()
		assert.Len(t, all, 8)
		assert.Equal(t, AbsoluteStrongest, all[0])
		assert.Equal(t, AbsoluteWeakest, all[len(all)-1])

		for i := 1; i < len(all); i++ {
			assert.True(t, all[i-1].Stronger(all[i]))
		}
	})

	t.Run("picks strongest and weakest", func(t *testing.T) {
		assert.Equal(t, Required, Required.Strongest(Default))
		assert.Equal(t, Required, Default.Strongest(Required))
		assert.Equal(t, Default, Required.Weakest(Default))
		assert.Equal(t, WeakDefault, WeakDefault.Weakest(Preferred))
	})

	t.Run("keeps the receiver on a tie", func(t *testing.T) {
		assert.Equal(t, Preferred, Preferred.Strongest(Preferred))
		assert.Equal(t, Preferred, Preferred.Weakest(Preferred))
	})

	t.Run("names levels", func(t *testing.T) {
		assert.Equal(t, "required", Required.String())
		assert.Equal(t, "absolute-weakest", AbsoluteWeakest.String())
		assert.Equal(t, "unknown", Strength(42).String())
	})
}
