// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	mu "github.com/avdva/kfixed/internal/mathutil"
)

// Add returns f+other.
func (f Fixed) Add(other Fixed) Fixed {
	return f + other
}

// AddInt returns f+n.
func (f Fixed) AddInt(n int32) Fixed {
	return f + FromInt(n)
}

// Sub returns f-other.
func (f Fixed) Sub(other Fixed) Fixed {
	return f - other
}

// SubInt returns f-n.
func (f Fixed) SubInt(n int32) Fixed {
	return f - FromInt(n)
}

// Mul returns f*other, truncated toward zero to the nearest representable value.
// The product is calculated in 64 bits and is then narrowed to 32 bits,
// so it wraps around only if the result itself does not fit.
func (f Fixed) Mul(other Fixed) Fixed {
	return Fixed(mu.MulDiv(wide(f), wide(other), Scale))
}

// MulInt returns f*n.
func (f Fixed) MulInt(n int32) Fixed {
	return Fixed(int32(f) * n)
}

// Div returns f/other, truncated toward zero.
// Returns ErrDivisionByZero if other is zero.
func (f Fixed) Div(other Fixed) (Fixed, error) {
	if other == Zero {
		return Zero, ErrDivisionByZero
	}
	return Fixed(mu.MulDiv(wide(f), Scale, wide(other))), nil
}

// DivInt returns f/n, truncated toward zero.
// Returns ErrDivisionByZero if n is zero.
func (f Fixed) DivInt(n int32) (Fixed, error) {
	if n == 0 {
		return Zero, ErrDivisionByZero
	}
	return Fixed(int32(f) / n), nil
}

// MustDiv is like Div, but panics if other is zero.
func (f Fixed) MustDiv(other Fixed) Fixed {
	res, err := f.Div(other)
	if err != nil {
		panic(err)
	}
	return res
}

// MustDivInt is like DivInt, but panics if n is zero.
func (f Fixed) MustDivInt(n int32) Fixed {
	res, err := f.DivInt(n)
	if err != nil {
		panic(err)
	}
	return res
}
