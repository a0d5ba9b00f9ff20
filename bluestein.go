// Copyright ©2026 The Fourierkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fourierkit

import "github.com/fourierkit/fourierkit/internal/kernel"

// Bluestein computes the discrete Fourier transform of complex
// sequences whose length is not a power of two, by way of the
// Bluestein (chirp-z) construction: the DFT is expressed as a
// circular convolution and computed using an internal power-of-two
// Radix2-style engine of an extended size.
//
// The zero value is not usable; construct with NewBluestein.
type Bluestein[T Float] struct {
	fftsize int
	extsize int

	cache0, cache1, cache2 []Complex[T]
	twiddle                []Complex[T]
	circulant              []Complex[T]
	ifswap                 bool
}

// NewBluestein returns a kernel for transforming complex sequences of
// length n. It returns a *DomainError if n is a power of two (use
// NewRadix2 instead) or smaller than 3.
func NewBluestein[T Float](n int) (*Bluestein[T], error) {
	if n < 3 {
		return nil, &DomainError{Kernel: "Bluestein", N: n, Reason: "is smaller than the minimum length 3"}
	}
	if kernel.IsPow2(n) {
		return nil, &DomainError{Kernel: "Bluestein", N: n, Reason: "is a power of two; use Radix2 instead"}
	}
	m := kernel.CeilPow2(2 * (n - 1))
	k := &Bluestein[T]{
		fftsize:   n,
		extsize:   m,
		cache0:    make([]Complex[T], m),
		cache1:    make([]Complex[T], m),
		cache2:    make([]Complex[T], m),
		twiddle:   make([]Complex[T], m/2),
		circulant: make([]Complex[T], m),
		ifswap:    kernel.Log2Floor(m)%2 == 1,
	}
	kernel.FillTwiddle(k.twiddle)
	chirp := make([]Complex[T], n)
	kernel.FillChirp(chirp)
	kernel.FillCirculant(k.circulant, chirp)
	return k, nil
}

// Len returns the sequence length this kernel was constructed for.
func (k *Bluestein[T]) Len() int { return k.fftsize }

// transformExt runs the extended-size forward radix-2 transform on x
// (length extsize) in place, using cache0 as ping-pong scratch.
func (k *Bluestein[T]) transformExt(x []Complex[T]) {
	hs := k.extsize / 2
	if k.ifswap {
		copy(k.cache0, x)
		kernel.DITNaturalOrder(k.cache0, x, k.twiddle, hs)
	} else {
		kernel.DITNaturalOrder(x, k.cache0, k.twiddle, hs)
	}
}

// inverseTransformExt runs the extended-size inverse radix-2
// transform on x (length extsize) in place, using cache0 as ping-pong
// scratch.
func (k *Bluestein[T]) inverseTransformExt(x []Complex[T]) {
	hs := k.extsize / 2
	if k.ifswap {
		for i, c := range x {
			k.cache0[i] = c.Conj()
		}
		kernel.DITNaturalOrder(k.cache0, x, k.twiddle, hs)
	} else {
		for i, c := range x {
			x[i] = c.Conj()
		}
		kernel.DITNaturalOrder(x, k.cache0, k.twiddle, hs)
	}
	scale := 1 / T(k.extsize)
	for i, c := range x {
		x[i] = c.Conj().Scale(scale)
	}
}

// CoefficientsInto computes the Fourier coefficients of x in place by
// way of the chirp-z construction, overwriting x with the result and
// returning it. It panics if len(x) != k.Len().
func (k *Bluestein[T]) CoefficientsInto(x []Complex[T]) []Complex[T] {
	if len(x) != k.fftsize {
		lengthMismatch("Bluestein", k.fftsize, len(x))
	}
	n, m := k.fftsize, k.extsize
	chi := k.circulant[:n]

	copy(k.cache1, k.circulant)
	k.transformExt(k.cache1) // cache1 now holds H = DFT(χ)

	for i := 0; i < n; i++ {
		k.cache2[i] = x[i].Mul(chi[i].Conj())
	}
	for i := n; i < m; i++ {
		k.cache2[i] = Complex[T]{}
	}
	k.transformExt(k.cache2) // cache2 now holds Y = DFT(y)

	for i := 0; i < m; i++ {
		k.cache2[i] = k.cache2[i].Mul(k.cache1[i])
	}
	k.inverseTransformExt(k.cache2)

	for i := 0; i < n; i++ {
		x[i] = k.cache2[i].Mul(chi[i].Conj())
	}
	return x
}

// SequenceInto always panics with an *UnsupportedError: the inverse
// chirp-z transform is documented future work (see §4.7 of the design
// notes) and is not implemented.
func (k *Bluestein[T]) SequenceInto(x []Complex[T]) []Complex[T] {
	panic(&UnsupportedError{Kernel: "Bluestein", Op: "SequenceInto"})
}

// Coefficients computes the Fourier coefficients of seq, placing the
// result in dst and returning it. If dst is nil, a new slice is
// allocated. It panics if len(seq) != k.Len(), or if dst is non-nil
// and len(dst) != len(seq).
func (k *Bluestein[T]) Coefficients(dst, seq []Complex[T]) []Complex[T] {
	if len(seq) != k.fftsize {
		lengthMismatch("Bluestein", k.fftsize, len(seq))
	}
	if dst == nil {
		dst = make([]Complex[T], len(seq))
	} else if len(dst) != len(seq) {
		lengthMismatch("Bluestein", len(seq), len(dst))
	}
	copy(dst, seq)
	return k.CoefficientsInto(dst)
}
