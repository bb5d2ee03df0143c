package games

import "math/rand"

// Rand is the random source behind every outcome draw. Injecting it keeps
// coin flips, wheel spins, deck shuffles and winner draws deterministic in
// tests.
type Rand interface {
	Intn(n int) int
	Int63n(n int64) int64
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// systemRand delegates to math/rand's locked package-level source, which is
// safe for concurrent use.
type systemRand struct{}

func (systemRand) Intn(n int) int { return rand.Intn(n) }
func (systemRand) Int63n(n int64) int64 { return rand.Int63n(n) }
func (systemRand) Float64() float64 { return rand.Float64() }
func (systemRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

func SystemRand() Rand {
	return systemRand{}
}
