package mathutil

import (
	"unsafe"
)

// MulDiv returns a*b/c using truncating division.
// The caller is responsible for c != 0 and for the result fitting its target width.
func MulDiv(a, b, c int64) int64 {
	return a * b / c
}

// QuoRound returns n/d rounded to the nearest integer, ties away from zero.
// d must be positive.
func QuoRound(n, d int64) int64 {
	if n >= 0 {
		return (n + d/2) / d
	}
	return (n - d/2) / d
}

// CeilDiv returns n/d rounded toward positive infinity. d must be positive.
func CeilDiv(n, d int64) int64 {
	q := n / d
	if n%d != 0 && n > 0 {
		q++
	}
	return q
}

func AbsInt32(val int32) int32 {
	mask := val >> (unsafe.Sizeof(int32(0))*8 - 1)
	return (val + mask) ^ mask
}

func Int64Sign(v int64) int {
	if v == 0 {
		return 0
	}
	return [...]int{1, -1}[uint64(v)>>63]
}
