// Copyright ©2026 The Fourierkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fourierkit

import "github.com/fourierkit/fourierkit/internal/kernel"

// Shift rotates x in place by ⌊len(x)/2⌋, moving the zero-frequency
// component to the center of the sequence, the way fftshift does in
// the reference implementations this engine follows.
//
// For even length it swaps the two halves directly. For odd length it
// performs the single-cycle rotation j = i + ⌊N/2⌋ (mod N) using one
// temporary; the reference source this is modeled on has a
// transcription typo in its odd branch (an undefined `m` where `M`
// was meant), resolved here to the half-length rotation it clearly
// intended rather than reproduced literally.
func Shift[T Float](x []Complex[T]) {
	n := len(x)
	if n < 2 {
		return
	}
	half := n / 2
	if n%2 == 0 {
		for i := 0; i < half; i++ {
			kernel.Swap(x, i, i+half)
		}
		return
	}
	i := 0
	tmp := x[0]
	for step := 0; step < n; step++ {
		j := (i + half) % n
		saved := x[j]
		x[j] = tmp
		tmp = saved
		i = j
	}
}

// Freq returns a length-n real sequence of the sample frequencies for
// a signal of length n sampled at interval dt: Δf = 1/(dt·n).
//
// For even n, indices 0…n/2-1 hold Δf·i and indices n/2…n-1 hold
// Δf·(i-n). For odd n, indices 0…⌊n/2⌋ hold Δf·i and the remainder
// hold Δf·(i-n).
func Freq[T Float](n int, dt T) []T {
	dst := make([]T, n)
	Freqs(dst, dt)
	return dst
}

// Freqs fills dst, of length n, with the sample frequency grid; see Freq.
func Freqs[T Float](dst []T, dt T) {
	n := len(dst)
	if n == 0 {
		return
	}
	df := 1 / (dt * T(n))
	split := (n + 1) / 2
	for i := 0; i < n; i++ {
		if i < split {
			dst[i] = df * T(i)
		} else {
			dst[i] = df * T(i-n)
		}
	}
}

// Amplitude fills ampl with the magnitude of each element of spec
// (computed with Hypot2), each divided by ⌊len(ampl)/2⌋:
// ampl[i] = |spec[i]| / ⌊len(ampl)/2⌋.
func Amplitude[T Float](ampl []T, spec []Complex[T]) []T {
	if len(ampl) != len(spec) {
		lengthMismatch("Amplitude", len(spec), len(ampl))
	}
	div := T(len(ampl) / 2)
	for i, c := range spec {
		ampl[i] = kernel.Hypot2(c.Re, c.Im) / div
	}
	return ampl
}
