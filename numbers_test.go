package qc

import (
	"math"
	"testing"
)

func TestIntsWithinMagnitudeBound(t *testing.T) {
	e := NewEnv(EnvOptions{Seed: 7, Size: 8})
	ints := e.Ints()
	bound := int64(1) << 8
	sawNegative := false
	for i := 0; i < 5000; i++ {
		v := ints.Next()
		if v < -bound || v > bound {
			t.Fatalf("draw %d: %d outside [-%d, %d]", i, v, bound, bound)
		}
		if v < 0 {
			sawNegative = true
		}
	}
	if !sawNegative {
		t.Error("expected at least one negative draw in 5000")
	}
}

func TestIntsSkewTowardSmallMagnitudes(t *testing.T) {
	// The exponent-first scheme makes small values common even with a
	// large size bound.
	e := NewEnv(EnvOptions{Seed: 11, Size: 32})
	ints := e.Ints()
	small := 0
	for i := 0; i < 5000; i++ {
		if v := ints.Next(); v >= -65536 && v <= 65536 {
			small++
		}
	}
	if small < 1000 {
		t.Errorf("only %d of 5000 draws within 2^16, expected heavy small-value coverage", small)
	}
}

func TestNonNegativeInts(t *testing.T) {
	e := NewEnv(EnvOptions{Seed: 3, Size: 20})
	ints := e.NonNegativeInts()
	bound := int64(1) << 20
	for i := 0; i < 5000; i++ {
		v := ints.Next()
		if v < 0 {
			t.Fatalf("draw %d: %d is negative", i, v)
		}
		if v > bound {
			t.Fatalf("draw %d: %d exceeds 2^20", i, v)
		}
	}
}

func TestFloatsWithinMagnitudeBound(t *testing.T) {
	e := NewEnv(EnvOptions{Seed: 5, Size: 16})
	floats := e.Floats()
	bound := float64(1 << 16)
	for i := 0; i < 5000; i++ {
		v := floats.Next()
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("draw %d: %g is not finite", i, v)
		}
		if v < -bound || v >= bound {
			t.Fatalf("draw %d: %g outside [-2^16, 2^16)", i, v)
		}
	}
}

func TestLargeSizeBoundStaysRepresentable(t *testing.T) {
	// The default size bound of 256 exceeds what int64/float64 can hold;
	// magnitudes cap instead of overflowing.
	e := NewEnv(EnvOptions{Seed: 9})
	ints := e.Ints()
	floats := e.Floats()
	for i := 0; i < 5000; i++ {
		ints.Next()
		if v := floats.Next(); math.IsInf(v, 0) || math.IsNaN(v) {
			t.Fatalf("draw %d: float %g not finite", i, v)
		}
	}
}
