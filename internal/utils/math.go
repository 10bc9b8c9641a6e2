package utils

import (
	"math/rand"
)

// RandomFloat returns a random float64 in [0.0, 1.0)
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// IntFromRoll maps a roll in [0, 1) onto an integer in [min, max] (inclusive).
// Rolls outside [0, 1) are clamped so an injected source can never escape the range.
func IntFromRoll(roll float64, min, max int) int {
	if min >= max {
		return min
	}
	span := max - min + 1
	n := int(roll * float64(span))
	if n < 0 {
		n = 0
	}
	if n >= span {
		n = span - 1
	}
	return min + n
}

// CappedPercent returns value/target as a whole percentage, capped at 100.
func CappedPercent(value, target int) int {
	if target <= 0 {
		return 100
	}
	if value <= 0 {
		return 0
	}
	p := value * 100 / target
	if p > 100 {
		return 100
	}
	return p
}
