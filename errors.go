// Copyright ©2026 The Fourierkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fourierkit

import "fmt"

// DomainError reports that a kernel constructor was asked for a
// length its algorithm cannot serve: a power of two or a length below
// 3 handed to NewBluestein, anything but a positive power of two
// handed to NewRadix2, or a non-positive length handed to New.
type DomainError struct {
	Kernel string
	N      int
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("fourierkit: %s: length %d %s", e.Kernel, e.N, e.Reason)
}

// UnsupportedError reports a call to a documented-but-unimplemented
// operation, such as the inverse transform on a Bluestein kernel.
type UnsupportedError struct {
	Kernel string
	Op     string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("fourierkit: %s: %s not implemented", e.Kernel, e.Op)
}

// lengthMismatch panics with a message in the teacher's own style
// (fourier.FFT, fourier.IFFT); a signal buffer of the wrong length is
// a programmer error caught at the call boundary, not a recoverable
// condition, so it is reported the same way the teacher reports it.
func lengthMismatch(kernel string, want, got int) {
	panic(fmt.Sprintf("fourierkit: %s: length mismatch: want %d, got %d", kernel, want, got))
}
