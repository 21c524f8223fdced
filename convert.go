// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
	imgfixed "golang.org/x/image/math/fixed"
)

const (
	// any value with more integer digits is beyond ±131072.
	maxIntDigits = 6
	// any value below 10^-6 is less than half of SmallestPositive.
	minFracDigits = -5
)

// Decimal returns the exact decimal value of f.
func (f Fixed) Decimal() decimal.Decimal {
	// raw/2^14 has at most 14 fractional decimal digits, so the division is exact.
	return decimal.New(int64(f), 0).DivRound(scaleDecimal, FracBits)
}

// FromDecimal converts d to the nearest fixed-point value, halves are rounded away from zero.
// Returns an error if d is out of range.
func FromDecimal(d decimal.Decimal) (Fixed, error) {
	// rescaling to exponent 0 costs 10^|exp|, so decide obvious cases by digit count first.
	c := d.Coefficient()
	if c.Sign() == 0 {
		return Zero, nil
	}
	digits := len(c.Abs(c).String()) + int(d.Exponent())
	if digits > maxIntDigits {
		return Zero, errRange
	}
	if digits < minFracDigits {
		return Zero, nil
	}
	raw := d.Mul(scaleDecimal).Round(0)
	if raw.GreaterThan(maxDecimal) || raw.LessThan(minDecimal) {
		return Zero, errRange
	}
	return Fixed(raw.IntPart()), nil
}

// Float64 returns f as a float64. The conversion is exact.
func (f Fixed) Float64() float64 {
	return Float[float64](f)
}

// FromFloat64 converts v to the nearest fixed-point value, halves are rounded away from zero.
// Returns an error for infinities, not-a-numbers, and values out of range.
func FromFloat64(v float64) (Fixed, error) {
	return FromFloat(v)
}

// MustFromFloat64 is like FromFloat64, but panics on error.
func MustFromFloat64(v float64) Fixed {
	f, err := FromFloat64(v)
	if err != nil {
		panic(err)
	}
	return f
}

// Float converts f to a floating-point number of type T.
func Float[T constraints.Float](f Fixed) T {
	return T(f) / Scale
}

// FromFloat converts a floating-point number of type T to the nearest fixed-point value.
func FromFloat[T constraints.Float](v T) (Fixed, error) {
	fv := float64(v)
	if math.IsInf(fv, 0) || math.IsNaN(fv) {
		return Zero, Error.New("bad float number")
	}
	raw := math.Round(fv * Scale)
	if raw > math.MaxInt32 || raw < math.MinInt32 {
		return Zero, errRange
	}
	return Fixed(raw), nil
}

// FromInteger is like FromInt for any integer type.
// n is converted to int32 first, so out of range values wrap around.
func FromInteger[T constraints.Integer](n T) Fixed {
	return FromInt(int32(n))
}

// ToInt26_6 converts f to a 26.6 fixed-point number, truncating toward zero.
func (f Fixed) ToInt26_6() imgfixed.Int26_6 {
	return imgfixed.Int26_6(int32(f) / (1 << (FracBits - 6)))
}

// FromInt26_6 converts a 26.6 fixed-point number to a value.
// The result wraps around if x is out of range.
func FromInt26_6(x imgfixed.Int26_6) Fixed {
	return Fixed(int32(x) << (FracBits - 6))
}

// ToInt52_12 converts f to a 52.12 fixed-point number, truncating toward zero.
func (f Fixed) ToInt52_12() imgfixed.Int52_12 {
	return imgfixed.Int52_12(int64(f) / (1 << (FracBits - 12)))
}

// FromInt52_12 converts a 52.12 fixed-point number to a value.
// The result wraps around if x is out of range.
func FromInt52_12(x imgfixed.Int52_12) Fixed {
	return Fixed(int64(x) << (FracBits - 12))
}
