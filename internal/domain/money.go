package domain

import "math"

// Round2 rounds a monetary value to 2 decimal places. Uses math.Round on
// the scaled value to handle floating-point representation issues
// (e.g., 1.005 * 100 = 100.49999...).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round4 rounds a micro-priced value to 4 decimal places. Crypto
// instruments trading below one currency unit quote at this precision.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
