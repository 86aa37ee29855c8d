// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"math/bits"

	"github.com/unityvault/unityvaultd/fault"
)

// SafeAdd - a + b or fault.Overflow
func SafeAdd(a uint64, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if 0 != carry {
		return 0, fault.Overflow
	}
	return sum, nil
}

// SafeSub - a - b or fault.Overflow if b > a
func SafeSub(a uint64, b uint64) (uint64, error) {
	difference, borrow := bits.Sub64(a, b, 0)
	if 0 != borrow {
		return 0, fault.Overflow
	}
	return difference, nil
}

// MulDiv - (a * b) / d using a 128 bit intermediate product
//
// the quotient must fit in 64 bits
func MulDiv(a uint64, b uint64, d uint64) (uint64, error) {
	if 0 == d {
		return 0, fault.InvalidArgument
	}
	hi, lo := bits.Mul64(a, b)
	if hi >= d {
		return 0, fault.Overflow
	}
	quotient, _ := bits.Div64(hi, lo, d)
	return quotient, nil
}

// MulMulDiv - (a * b * c) / d using a 192 bit intermediate product
//
// the quotient must fit in 64 bits
func MulMulDiv(a uint64, b uint64, c uint64, d uint64) (uint64, error) {
	if 0 == d {
		return 0, fault.InvalidArgument
	}
	hi, lo := bits.Mul64(a, b)

	// (hi:lo) * c = (w2:w1:w0)
	carry, w0 := bits.Mul64(lo, c)
	w2, w1 := bits.Mul64(hi, c)
	w1, k := bits.Add64(w1, carry, 0)
	w2 += k

	if 0 != w2 || w1 >= d {
		return 0, fault.Overflow
	}
	quotient, _ := bits.Div64(w1, w0, d)
	return quotient, nil
}

// SafeAddInt64 - timestamp + duration, both in seconds
func SafeAddInt64(a int64, b int64) (int64, error) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, fault.Overflow
	}
	return c, nil
}
