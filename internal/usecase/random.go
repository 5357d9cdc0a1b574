package usecase

import (
	"math"
	"math/rand/v2"
)

// RandomSource yields uniform values in [0, 1).
type RandomSource interface {
	Float64() float64
}

type globalRandom struct{}

// NewRandomSource returns the unseeded process-wide generator.
func NewRandomSource() RandomSource {
	return globalRandom{}
}

func (globalRandom) Float64() float64 {
	return rand.Float64()
}

// pick maps one draw from rnd onto [0, n).
func pick(rnd RandomSource, n int) int {
	i := int(math.Floor(rnd.Float64() * float64(n)))
	if i >= n {
		i = n - 1
	}
	return i
}
