// Copyright ©2026 The Fourierkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "math"

// FillChirp fills chirp, of length n, with the Bluestein chirp
// sequence χ(k) = exp(iπk²/n) for k = 0 … n-1.
//
// The conjugate of this sequence is what actually pre- and
// post-multiplies the input and output samples; Bluestein stores the
// non-conjugated sequence once and lets callers conjugate on use
// (Conj is a cheap field negation), matching the single cached
// factors table in the reference chirp-z implementation rather than
// keeping separate forward/inverse tables.
func FillChirp[T Float](chirp []Complex[T]) {
	n := len(chirp)
	if n == 0 {
		return
	}
	chirp[0] = Complex[T]{Re: 1, Im: 0}
	for k := 1; k < n; k++ {
		sin, cos := math.Sincos(math.Pi / float64(n) * float64(k*k))
		chirp[k] = Complex[T]{Re: T(cos), Im: T(sin)}
	}
}

// FillCirculant fills circulant, of power-of-two length m ≥ 2(n-1), with
// the zero-padded circulant convolution kernel built from chirp (of
// length n): circulant[0] = chirp[0], circulant[k] = circulant[m-k] =
// chirp[k] for k = 1 … n-1, and every other entry zero.
//
// Convolving a chirp-multiplied input against this kernel by way of a
// length-m radix-2 transform is what turns an arbitrary-length DFT
// into a power-of-two one; see Bluestein's algorithm.
func FillCirculant[T Float](circulant []Complex[T], chirp []Complex[T]) {
	m, n := len(circulant), len(chirp)
	for i := range circulant {
		circulant[i] = Complex[T]{}
	}
	if n == 0 {
		return
	}
	circulant[0] = chirp[0]
	for k := 1; k < n; k++ {
		circulant[k] = chirp[k]
		circulant[m-k] = chirp[k]
	}
}
