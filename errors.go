// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import "github.com/zeebo/errs"

var (
	// Error is the class of all errors returned by this package.
	Error = errs.Class("fixed")

	// ErrDivisionByZero is returned by Div and DivInt for a zero divisor.
	ErrDivisionByZero = Error.New("division by zero")

	errRange = Error.New("value out of range")
)
