// Copyright ©2026 The Fourierkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"math"
	"math/bits"
)

// Log2Floor returns ⌊log2(x)⌋ for a positive integer x. It panics if x
// is not positive; callers are expected to have already validated x at
// the public API boundary (see the DomainError checks in the root
// package's kernel constructors).
//
// Uses math/bits rather than a hand-rolled nibble cascade, matching the
// teacher's own preference for math/bits over manual bit twiddling
// (dsp/fourier/radix24.go, fourier/array.go).
func Log2Floor(x int) int {
	if x <= 0 {
		panic("kernel: log2Floor of non-positive value")
	}
	return bits.Len(uint(x)) - 1
}

// IsPow2 reports whether x is an exact power of two (x = 2^p, p ≥ 0).
func IsPow2(x int) bool {
	return x > 0 && bits.OnesCount(uint(x)) == 1
}

// CeilPow2 returns the smallest power of two accommodating x, following
// the literal case enumeration of the reference implementation: 0 maps
// to 1, 1 maps to 2, and every other nonnegative x maps to the smallest
// power of two not less than x. This is not fully consistent with the
// general "smallest power of two ≥ max(x,2)" description at x=0 (which
// would give 2); the 0↦1 case is preserved as specified rather than
// silently corrected.
func CeilPow2(x int) int {
	switch {
	case x <= 0:
		return 1
	case x == 1:
		return 2
	default:
		return 1 << bits.Len(uint(x-1))
	}
}

// Hypot2 computes an overflow-robust hypotenuse of x and y, propagating
// NaN operands rather than squaring them away.
func Hypot2[T Float](x, y T) T {
	if math.IsNaN(float64(x)) {
		return x
	}
	if math.IsNaN(float64(y)) {
		return y
	}
	w, z := absT(x), absT(y)
	if z > w {
		w, z = z, w
	}
	if z == 0 {
		return w
	}
	r := z / w
	return w * T(math.Sqrt(float64(1)+float64(r)*float64(r)))
}

func absT[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
