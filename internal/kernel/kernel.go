// Copyright ©2026 The Fourierkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kernel implements the numerical core of the FFT engine: the
// radix-2 decimation-in-time transform, the Bluestein chirp-z
// construction, and their shared scalar and twiddle-table machinery.
//
// The types and functions here are translated, in spirit, from the
// upstream fftpack-derived radix-2/4 engine in gonum's dsp/fourier
// package, reworked to the ping-pong (rather than bit-reversal) scheme
// and generalized over floating-point precision. Callers outside this
// module never see this package directly; the root fourierkit package
// wraps it in the public Radix2 and Bluestein kernel types.
package kernel

// Float is the set of floating-point precisions the engine supports.
type Float interface {
	~float32 | ~float64
}

// Complex is a pair of real values representing a complex number at
// precision T. It intentionally does not use the builtin complex64 or
// complex128 types: there is no way to constrain a type parameter to
// "the complex type matching T" in Go, so the engine carries its own
// pair type the way the reference AAC decoder's FFT stage represents
// frequency-domain samples as an explicit {Re, Im float32} struct
// rather than a builtin complex number.
type Complex[T Float] struct {
	Re, Im T
}

// Add returns c+d.
func (c Complex[T]) Add(d Complex[T]) Complex[T] {
	return Complex[T]{Re: c.Re + d.Re, Im: c.Im + d.Im}
}

// Sub returns c-d.
func (c Complex[T]) Sub(d Complex[T]) Complex[T] {
	return Complex[T]{Re: c.Re - d.Re, Im: c.Im - d.Im}
}

// Mul returns c*d.
func (c Complex[T]) Mul(d Complex[T]) Complex[T] {
	return Complex[T]{
		Re: c.Re*d.Re - c.Im*d.Im,
		Im: c.Re*d.Im + c.Im*d.Re,
	}
}

// Conj returns the complex conjugate of c.
func (c Complex[T]) Conj() Complex[T] {
	return Complex[T]{Re: c.Re, Im: -c.Im}
}

// Scale returns c scaled by the real factor f.
func (c Complex[T]) Scale(f T) Complex[T] {
	return Complex[T]{Re: c.Re * f, Im: c.Im * f}
}

// Swap exchanges the elements at indices i and j of x.
func Swap[T any](x []T, i, j int) {
	x[i], x[j] = x[j], x[i]
}
