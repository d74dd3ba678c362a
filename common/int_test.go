// Copyright © 2020 The numtheory Authors
//
// This file is part of numtheory. The full numtheory copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParity(t *testing.T) {
	assert.True(t, IsEven(0))
	assert.True(t, IsEven(-4))
	assert.True(t, IsOdd(-7))
	assert.True(t, IsOdd(math.MaxInt64))
	assert.True(t, IsEven(math.MinInt64))
}

func TestIsFactor(t *testing.T) {
	assert.True(t, IsFactor(7, 49))
	assert.True(t, IsFactor(-3, 9))
	assert.False(t, IsFactor(2, 9))
	assert.False(t, IsFactor(0, 9))
	assert.True(t, IsFactor(5, 0))
}

func TestReduceToOdd(t *testing.T) {
	odd, twos := ReduceToOdd(96)
	assert.Equal(t, int64(3), odd)
	assert.Equal(t, 5, twos)

	odd, twos = ReduceToOdd(0)
	assert.Equal(t, int64(0), odd)
	assert.Equal(t, 0, twos)

	odd, twos = ReduceToOdd(-12)
	assert.Equal(t, int64(-3), odd)
	assert.Equal(t, 2, twos)
}

func TestISqrt(t *testing.T) {
	tests := []struct {
		n, want int64
	}{
		{-9, 0},
		{0, 0},
		{1, 1},
		{3, 1},
		{4, 2},
		{99, 9},
		{100, 10},
		{600851475143, 775146},
		{3037000499 * 3037000499, 3037000499},
		{3037000499*3037000499 - 1, 3037000498},
		{math.MaxInt64, 3037000499},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ISqrt(tt.n), "ISqrt(%d)", tt.n)
	}
	for n := int64(0); n < 10000; n++ {
		r := ISqrt(n)
		assert.True(t, r*r <= n && (r+1)*(r+1) > n, "ISqrt(%d) = %d", n, r)
	}
}

func TestAbs(t *testing.T) {
	v, ok := Abs(-42)
	assert.True(t, ok)
	assert.Equal(t, int64(42), v)

	v, ok = Abs(math.MaxInt64)
	assert.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64), v)

	_, ok = Abs(math.MinInt64)
	assert.False(t, ok)
}

func TestCheckedArithmetic(t *testing.T) {
	tests := []struct {
		name   string
		fn     func(a, b int64) (int64, bool)
		a, b   int64
		want   int64
		wantOK bool
	}{{
		name: "add", fn: AddChecked, a: 40, b: 2, want: 42, wantOK: true,
	}, {
		name: "add overflow", fn: AddChecked, a: math.MaxInt64, b: 1,
	}, {
		name: "add underflow", fn: AddChecked, a: math.MinInt64, b: -1,
	}, {
		name: "add mixed signs", fn: AddChecked, a: math.MinInt64, b: math.MaxInt64, want: -1, wantOK: true,
	}, {
		name: "mul", fn: MulChecked, a: -6, b: 7, want: -42, wantOK: true,
	}, {
		name: "mul by zero", fn: MulChecked, a: 0, b: math.MinInt64, want: 0, wantOK: true,
	}, {
		name: "mul overflow", fn: MulChecked, a: 3037000500, b: 3037000500,
	}, {
		name: "mul min by minus one", fn: MulChecked, a: math.MinInt64, b: -1,
	}, {
		name: "mul minus one by min", fn: MulChecked, a: -1, b: math.MinInt64,
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.fn(tt.a, tt.b)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	sq, ok := SquareChecked(3037000499)
	assert.True(t, ok)
	assert.Equal(t, int64(9223372030926249001), sq)
	_, ok = SquareChecked(3037000500)
	assert.False(t, ok)
}

func TestPow10(t *testing.T) {
	v, ok := Pow10(0)
	assert.True(t, ok)
	assert.Equal(t, int64(1), v)

	v, ok = Pow10(18)
	assert.True(t, ok)
	assert.Equal(t, int64(1000000000000000000), v)

	_, ok = Pow10(19)
	assert.False(t, ok)
	_, ok = Pow10(-1)
	assert.False(t, ok)
}
