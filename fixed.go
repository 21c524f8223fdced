// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fixed implements a binary fixed-point number in Q17.14 format:
// a signed 32-bit integer, where the lowest 14 bits hold the fraction.
// An integer x represents the real number x/(2^14).
//
// It can be used where floating-point is not available or not allowed,
// for example, in a scheduler running in interrupt context.
// Overflow is not detected: all operations wrap around like ordinary int32 arithmetic.
package fixed

import (
	"math"

	mu "github.com/avdva/kfixed/internal/mathutil"
)

const (
	// FracBits is the number of fractional bits.
	FracBits = 14
	// Scale is the raw value of 1.
	Scale = 1 << FracBits

	half = Scale / 2
)

const (
	Zero             = Fixed(0)
	One              = Fixed(Scale)
	Half             = Fixed(half)
	SmallestPositive = Fixed(1)
	SmallestNegative = Fixed(-1)
	// Max is approximately 131071.99994.
	Max = Fixed(math.MaxInt32)
	// Min is exactly -131072.
	Min = Fixed(math.MinInt32)
)

// Fixed is a Q17.14 fixed-point number.
// Plain integers are not Fixed values: use FromInt to scale them.
type Fixed int32

// wide is the double-width intermediate used by Mul, Div and rounding.
type wide = int64

// FromInt returns n as a fixed-point value.
// If n is out of the [-131072, 131071] range, the result wraps around.
func FromInt(n int32) Fixed {
	return Fixed(n * Scale)
}

// FromRaw returns a value, whose internal representation is raw.
func FromRaw(raw int32) Fixed {
	return Fixed(raw)
}

// Raw returns the internal representation of f.
func (f Fixed) Raw() int32 {
	return int32(f)
}

// Int returns the integer part of f, truncating toward zero.
func (f Fixed) Int() int32 {
	return int32(f) / Scale
}

// Round returns f rounded to the nearest integer, halves are rounded away from zero.
// The half is added in 64 bits, so, unlike plain int32 arithmetic, values near Max and Min
// do not wrap around: Max.Round() is 131072.
func (f Fixed) Round() int32 {
	return int32(mu.QuoRound(wide(f), Scale))
}

// Floor returns the greatest integer value less than or equal to f.
func (f Fixed) Floor() int32 {
	return int32(f >> FracBits)
}

// Ceil returns the least integer value greater than or equal to f.
func (f Fixed) Ceil() int32 {
	return int32(mu.CeilDiv(wide(f), Scale))
}

// Frac returns the fractional part of f. It has the same sign as f,
// so that f == FromInt(f.Int()).Add(f.Frac()).
func (f Fixed) Frac() Fixed {
	return f - Fixed(f.Int()*Scale)
}

// Sign returns -1 if f < 0, 0 if f == 0, 1 if f > 0.
func (f Fixed) Sign() int {
	return mu.Int64Sign(int64(f))
}

// Abs returns the absolute value of f. Abs(Min) is Min.
func (f Fixed) Abs() Fixed {
	return Fixed(mu.AbsInt32(int32(f)))
}

// Neg returns -f. Neg(Min) is Min.
func (f Fixed) Neg() Fixed {
	return -f
}

// Cmp compares two values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (f Fixed) Cmp(other Fixed) int {
	if f == other {
		return 0
	}
	if f > other {
		return 1
	}
	return -1
}

// IsZero returns true for zero.
func (f Fixed) IsZero() bool {
	return f == Zero
}
