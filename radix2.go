// Copyright ©2026 The Fourierkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fourierkit

import "github.com/fourierkit/fourierkit/internal/kernel"

// Radix2 computes the discrete Fourier transform, and its inverse, of
// complex sequences whose length is a power of two, using an
// in-place, naturally-ordered decimation-in-time algorithm with
// ping-pong buffering between the caller's signal and an internal
// scratch cache.
//
// A Radix2 is reusable: once constructed for a given length, any
// number of forward or inverse transforms of that length can be run
// without further allocation (aside from the copy-based Coefficients
// and Sequence methods, each of which allocates its destination once
// if one is not supplied).
//
// The zero value is not usable; construct with NewRadix2.
type Radix2[T Float] struct {
	cache   []Complex[T]
	twiddle []Complex[T]
	fftsize int
	ifswap  bool
}

// NewRadix2 returns a kernel for transforming complex sequences of
// length n. It returns a *DomainError if n is not a positive power of
// two.
func NewRadix2[T Float](n int) (*Radix2[T], error) {
	if n <= 0 || !kernel.IsPow2(n) {
		return nil, &DomainError{Kernel: "Radix2", N: n, Reason: "is not a positive power of two"}
	}
	k := &Radix2[T]{
		cache:   make([]Complex[T], n),
		twiddle: make([]Complex[T], n/2),
		fftsize: n,
		ifswap:  kernel.Log2Floor(n)%2 == 1,
	}
	kernel.FillTwiddle(k.twiddle)
	return k, nil
}

// Len returns the sequence length this kernel was constructed for.
func (k *Radix2[T]) Len() int { return k.fftsize }

// CoefficientsInto computes the Fourier coefficients of x in place,
// overwriting x with the result and returning it. It panics if
// len(x) != k.Len().
func (k *Radix2[T]) CoefficientsInto(x []Complex[T]) []Complex[T] {
	if len(x) != k.fftsize {
		lengthMismatch("Radix2", k.fftsize, len(x))
	}
	hs := k.fftsize / 2
	if k.ifswap {
		copy(k.cache, x)
		kernel.DITNaturalOrder(k.cache, x, k.twiddle, hs)
	} else {
		kernel.DITNaturalOrder(x, k.cache, k.twiddle, hs)
	}
	return x
}

// SequenceInto computes the inverse transform of x in place,
// overwriting x with the result and returning it. It panics if
// len(x) != k.Len().
func (k *Radix2[T]) SequenceInto(x []Complex[T]) []Complex[T] {
	if len(x) != k.fftsize {
		lengthMismatch("Radix2", k.fftsize, len(x))
	}
	hs := k.fftsize / 2
	if k.ifswap {
		for i, c := range x {
			k.cache[i] = c.Conj()
		}
		kernel.DITNaturalOrder(k.cache, x, k.twiddle, hs)
	} else {
		for i, c := range x {
			x[i] = c.Conj()
		}
		kernel.DITNaturalOrder(x, k.cache, k.twiddle, hs)
	}
	scale := 1 / T(k.fftsize)
	for i, c := range x {
		x[i] = c.Conj().Scale(scale)
	}
	return x
}

// Coefficients computes the Fourier coefficients of seq, placing the
// result in dst and returning it. If dst is nil, a new slice is
// allocated. It panics if len(seq) != k.Len(), or if dst is non-nil
// and len(dst) != len(seq).
func (k *Radix2[T]) Coefficients(dst, seq []Complex[T]) []Complex[T] {
	if len(seq) != k.fftsize {
		lengthMismatch("Radix2", k.fftsize, len(seq))
	}
	if dst == nil {
		dst = make([]Complex[T], len(seq))
	} else if len(dst) != len(seq) {
		lengthMismatch("Radix2", len(seq), len(dst))
	}
	copy(dst, seq)
	return k.CoefficientsInto(dst)
}

// Sequence computes the inverse transform of coeff, placing the
// result in dst and returning it. If dst is nil, a new slice is
// allocated. It panics if len(coeff) != k.Len(), or if dst is non-nil
// and len(dst) != len(coeff).
func (k *Radix2[T]) Sequence(dst, coeff []Complex[T]) []Complex[T] {
	if len(coeff) != k.fftsize {
		lengthMismatch("Radix2", k.fftsize, len(coeff))
	}
	if dst == nil {
		dst = make([]Complex[T], len(coeff))
	} else if len(dst) != len(coeff) {
		lengthMismatch("Radix2", len(coeff), len(dst))
	}
	copy(dst, coeff)
	return k.SequenceInto(dst)
}
