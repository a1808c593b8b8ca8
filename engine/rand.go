package engine

import "math/rand/v2"

// mathRand is the default core.Rand backed by math/rand/v2's shared,
// concurrency-safe generator.
type mathRand struct{}

func (mathRand) Float64() float64 { return rand.Float64() }
