package dmap

// Evolve applies f to x exactly steps times in sequence and returns
// the resulting state. steps <= 0 returns a copy of x unchanged.
// Holds one state at a time; intermediate states are not retained.
//
// Evolution composes additively:
//
//	Evolve(Evolve(x, f, a), f, b) == Evolve(x, f, a+b)
func Evolve(x State, f Map, steps int) State {
	cur := x.Clone()
	for i := 0; i < steps; i++ {
		cur = f(cur)
	}
	return cur
}

// EvolveScalar is the 1-D form of [Evolve].
func EvolveScalar(x float64, f ScalarMap, steps int) float64 {
	for i := 0; i < steps; i++ {
		x = f(x)
	}
	return x
}

// Evolve advances the system's state by steps map applications and
// returns the re-seeded system; the receiver is left untouched.
func (s System) Evolve(steps int) System {
	return s.Reseed(Evolve(s.state, s.f, steps))
}
