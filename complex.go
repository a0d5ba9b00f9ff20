// Copyright ©2026 The Fourierkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fourierkit

import "github.com/fourierkit/fourierkit/internal/kernel"

// Float is the set of floating-point precisions the engine supports.
type Float = kernel.Float

// Complex is a pair of real values representing a complex number at
// precision T. See internal/kernel.Complex for why this is a plain
// struct rather than the builtin complex64/complex128.
type Complex[T Float] = kernel.Complex[T]

// ToBuiltin converts a slice of Complex[float64] to complex128, for
// interoperating with code (including test cross-checks against
// gonum.org/v1/gonum/dsp/fourier) that uses the builtin complex type.
func ToBuiltin(x []Complex[float64]) []complex128 {
	out := make([]complex128, len(x))
	for i, c := range x {
		out[i] = complex(c.Re, c.Im)
	}
	return out
}

// FromBuiltin converts a slice of complex128 to Complex[float64].
func FromBuiltin(x []complex128) []Complex[float64] {
	out := make([]Complex[float64], len(x))
	for i, c := range x {
		out[i] = Complex[float64]{Re: real(c), Im: imag(c)}
	}
	return out
}
