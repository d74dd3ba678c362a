// Copyright © 2020 The numtheory Authors
//
// This file is part of numtheory. The full numtheory copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"math"
)

// Bounded int64 arithmetic. Every operation that can leave the int64 range
// returns its result tagged with an ok flag instead of wrapping around; callers
// check the flag before using the value.

var powersOfTen = [...]int64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000,
}

func IsEven(n int64) bool {
	return n&1 == 0
}

func IsOdd(n int64) bool {
	return n&1 == 1
}

// IsFactor reports whether d divides n evenly. Zero divides nothing.
func IsFactor(d, n int64) bool {
	if d == 0 {
		return false
	}
	return n%d == 0
}

// ReduceToOdd strips every factor of two from n and returns the odd part
// together with the number of twos removed. Zero is returned unchanged.
func ReduceToOdd(n int64) (int64, int) {
	if n == 0 {
		return 0, 0
	}
	twos := 0
	for IsEven(n) {
		n >>= 1
		twos++
	}
	return n, twos
}

// ISqrt returns floor(sqrt(n)) for n >= 0 and 0 for negative n.
// The float estimate is corrected with division so that no intermediate
// square is ever formed.
func ISqrt(n int64) int64 {
	if n < 2 {
		if n < 0 {
			return 0
		}
		return n
	}
	r := int64(math.Sqrt(float64(n)))
	for r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}
	return r
}

// Abs returns |n|; ok is false for math.MinInt64, whose absolute value is not
// representable.
func Abs(n int64) (abs int64, ok bool) {
	if n == math.MinInt64 {
		return 0, false
	}
	if n < 0 {
		return -n, true
	}
	return n, true
}

func AddChecked(a, b int64) (sum int64, ok bool) {
	c := a + b
	if (a > 0 && b > 0 && c < 0) || (a < 0 && b < 0 && c >= 0) {
		return 0, false
	}
	return c, true
}

func MulChecked(a, b int64) (product int64, ok bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (c < 0) != ((a < 0) != (b < 0)) || c/b != a {
		return 0, false
	}
	return c, true
}

func SquareChecked(n int64) (int64, bool) {
	return MulChecked(n, n)
}

// Pow10 returns 10^k; ok is false when k is negative or 10^k does not fit in
// an int64 (k > 18).
func Pow10(k int) (int64, bool) {
	if k < 0 || k >= len(powersOfTen) {
		return 0, false
	}
	return powersOfTen[k], true
}
