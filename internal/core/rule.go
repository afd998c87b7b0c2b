package core

// Rule holds the birth and survival neighbor counts of a life-like automaton.
// Counts are in [0, 8].
type Rule struct {
	Birth   []int
	Survive []int
}

// StandardLife returns Conway's rule, B3/S23.
func StandardLife() Rule {
	return Rule{Birth: []int{3}, Survive: []int{2, 3}}
}

// Born reports whether a dead cell with n live neighbors becomes alive.
func (r Rule) Born(n int) bool { return containsInt(r.Birth, n) }

// Survives reports whether a live cell with n live neighbors stays alive.
func (r Rule) Survives(n int) bool { return containsInt(r.Survive, n) }

// Next applies the rule to a single cell.
func (r Rule) Next(alive bool, n int) bool {
	if alive {
		return r.Survives(n)
	}
	return r.Born(n)
}

func containsInt(v []int, x int) bool {
	for _, c := range v {
		if c == x {
			return true
		}
	}
	return false
}
