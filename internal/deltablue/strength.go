package deltablue

// Strength is the importance level of a constraint.
// Lower arithmetic values are stronger.
type Strength int

const (
	AbsoluteStrongest Strength = iota
	Required
	StrongPreferred
	Preferred
	StrongDefault
	Default
	WeakDefault
	AbsoluteWeakest

	numStrengths
)

// indexed by Strength, never written after package initialization
var strengthTable = [numStrengths]struct {
	name  string
	value int
}{
	AbsoluteStrongest: {"absolute-strongest", -10000},
	Required:          {"required", -800},
	StrongPreferred:   {"strong-preferred", -600},
	Preferred:         {"preferred", -400},
	StrongDefault:     {"strong-default", -200},
	Default:           {"default", 0},
	WeakDefault:       {"weak-default", 500},
	AbsoluteWeakest:   {"absolute-weakest", 10000},
}

// Strengths returns every level from strongest to weakest.
func Strengths() []Strength {
	all := make([]Strength, 0, numStrengths)
	for s := AbsoluteStrongest; s < numStrengths; s++ {
		all = append(all, s)
	}
	return all
}

func (s Strength) ArithmeticValue() int {
	return strengthTable[s].value
}

func (s Strength) Stronger(other Strength) bool {
	return s.ArithmeticValue() < other.ArithmeticValue()
}

func (s Strength) Weaker(other Strength) bool {
	return s.ArithmeticValue() > other.ArithmeticValue()
}

func (s Strength) SameAs(other Strength) bool {
	return s.ArithmeticValue() == other.ArithmeticValue()
}

// Strongest returns the stronger of s and other, s on a tie.
func (s Strength) Strongest(other Strength) Strength {
	if other.Stronger(s) {
		return other
	}
	return s
}

// Weakest returns the weaker of s and other, s on a tie.
func (s Strength) Weakest(other Strength) Strength {
	if other.Weaker(s) {
		return other
	}
	return s
}

func (s Strength) String() string {
	if s < 0 || s >= numStrengths {
		return "unknown"
	}
	return strengthTable[s].name
}
