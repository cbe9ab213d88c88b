package qc

import "math"

const (
	// intExponentCap limits integer magnitudes to 2^61 so that the draw
	// range [-m, m] (2m+1 values) still fits in an int64.
	intExponentCap = 61

	// floatExponentCap keeps float magnitudes finite (2^1024 overflows
	// float64).
	floatExponentCap = 1023
)

// intMagnitude draws an exponent uniformly from [0, size] and returns
// 2^e, capped to stay representable. Drawing the exponent first biases
// values toward small magnitudes while still covering the full range.
func (e *Env) intMagnitude() int64 {
	exp := e.between(0, int64(e.size))
	if exp > intExponentCap {
		exp = intExponentCap
	}
	return int64(1) << exp
}

// Ints returns a stream of signed integers spanning many orders of
// magnitude: each draw picks a magnitude m = 2^e with e uniform in
// [0, size], then a value uniform in [-m, m].
func (e *Env) Ints() *Stream[int64] {
	return newStream(func() int64 {
		m := e.intMagnitude()
		return e.between(-m, m)
	})
}

// NonNegativeInts is Ints restricted to [0, m] per draw.
func (e *Env) NonNegativeInts() *Stream[int64] {
	return newStream(func() int64 {
		m := e.intMagnitude()
		return e.between(0, m)
	})
}

// Floats returns a stream of floats: magnitude m = 2^e with e uniform in
// [0, size], then a value uniform (continuous) in [-m, m).
func (e *Env) Floats() *Stream[float64] {
	return newStream(func() float64 {
		exp := e.between(0, int64(e.size))
		if exp > floatExponentCap {
			exp = floatExponentCap
		}
		m := math.Ldexp(1, int(exp))
		return (e.rng.Float64()*2 - 1) * m
	})
}

// Ints is the Gen form of Env.Ints.
func Ints() Gen[int64] { return From((*Env).Ints) }

// NonNegativeInts is the Gen form of Env.NonNegativeInts.
func NonNegativeInts() Gen[int64] { return From((*Env).NonNegativeInts) }

// Floats is the Gen form of Env.Floats.
func Floats() Gen[float64] { return From((*Env).Floats) }
