package domain

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

// Rounding a value already on the 2-decimal grid must leave it unchanged.
func TestProperty_Round2FixedPoint(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hundredths := rapid.Int64Range(-99_999_999_99, 99_999_999_99).Draw(t, "hundredths")
		v := float64(hundredths) / 100

		if got := Round2(v); got != v {
			t.Fatalf("Round2(%v) = %v, want unchanged", v, got)
		}
	})
}

func TestProperty_Round2Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Float64Range(-1e9, 1e9).Draw(t, "v")

		once := Round2(v)
		if twice := Round2(once); twice != once {
			t.Fatalf("Round2 not idempotent: %v -> %v -> %v", v, once, twice)
		}
		if math.Abs(once-v) > 0.005+1e-6 {
			t.Fatalf("Round2(%v) = %v, moved more than half a cent", v, once)
		}
	})
}

func TestProperty_Round4Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Float64Range(-1e6, 1e6).Draw(t, "v")

		once := Round4(v)
		if twice := Round4(once); twice != once {
			t.Fatalf("Round4 not idempotent: %v -> %v -> %v", v, once, twice)
		}
		if math.Abs(once-v) > 0.00005+1e-12 {
			t.Fatalf("Round4(%v) = %v, moved more than half a unit", v, once)
		}
	})
}
