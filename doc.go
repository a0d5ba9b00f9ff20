// Copyright ©2026 The Fourierkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fourierkit implements a one-dimensional Fast Fourier
// Transform engine for complex-valued sequences of arbitrary positive
// length, generic over float32 and float64.
//
// Sequences whose length is a power of two are served by Radix2, an
// in-place, naturally-ordered decimation-in-time transform. Every
// other length is served by Bluestein, which expresses the DFT as a
// circular convolution computed by an internal Radix2-style engine of
// an extended, power-of-two size. New picks whichever of the two
// applies to a given length.
//
// Each kernel is a reusable object: once constructed for a length, it
// owns every scratch buffer and twiddle table its transforms need, so
// any number of forward (and, for Radix2, inverse) transforms can be
// run without further allocation. A kernel's caches are exclusively
// owned by that kernel; concurrent transforms on the same kernel are
// not safe, though distinct kernels may be used from distinct
// goroutines freely.
package fourierkit
