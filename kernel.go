// Copyright ©2026 The Fourierkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fourierkit

import "github.com/fourierkit/fourierkit/internal/kernel"

// Kernel is the forward-transform surface shared by Radix2 and
// Bluestein. Callers that don't care which algorithm serves a given
// length can program against Kernel and let New pick.
type Kernel[T Float] interface {
	Len() int
	Coefficients(dst, seq []Complex[T]) []Complex[T]
	CoefficientsInto(x []Complex[T]) []Complex[T]
}

// New returns a Kernel for transforming complex sequences of length
// n, choosing Radix2 for power-of-two lengths and Bluestein
// otherwise. It returns a *DomainError if n is not positive. Lengths
// 1 and 2, which are too small for the Bluestein construction, are
// powers of two and are therefore served by Radix2.
func New[T Float](n int) (Kernel[T], error) {
	if n <= 0 {
		return nil, &DomainError{Kernel: "fourierkit", N: n, Reason: "is not positive"}
	}
	if kernel.IsPow2(n) {
		return NewRadix2[T](n)
	}
	return NewBluestein[T](n)
}
