// Copyright ©2026 The Fourierkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

// Butterfly runs one decimation-in-time butterfly pass over ns pairs
// drawn from the source buffer xa and written into the destination
// buffer ya; it never writes to xa. wa is the twiddle table for the
// whole transform, hs is the constant half-size N/2, ss is the output
// stride, and pd is both the input stride and the twiddle stride (the
// sub-problem's half-span at this pass).
//
// For k = 0 … ns-1, with xi = si+k·pd, yi = si+k·ss, wi = k·pd:
//
//	ya[yi]    = xa[xi] + xa[xi+hs]
//	ya[yi+pd] = (xa[xi] - xa[xi+hs]) · wa[wi]
func Butterfly[T Float](ya, xa, wa []Complex[T], si, hs, ns, ss, pd int) {
	for k := 0; k < ns; k++ {
		xi := si + k*pd
		yi := si + k*ss
		w := wa[k*pd]

		a := xa[xi]
		b := xa[xi+hs]
		ya[yi] = a.Add(b)
		ya[yi+pd] = a.Sub(b).Mul(w)
	}
}

// DITNaturalOrder drives a full radix-2 decimation-in-time transform
// of length N = 2·hs over the pair of same-length buffers sa, ba,
// using twiddle table wa, by scheduling log2(N) Butterfly passes with
// ping-pong between sa and ba.
//
// The result lands in natural order: in ba when log2(N) is odd, in sa
// when even. Callers precompute that parity once (the Radix2 kernel's
// ifswap field) rather than asking this routine to report it, since
// it depends only on N and is known before any data arrives.
func DITNaturalOrder[T Float](sa, ba, wa []Complex[T], hs int) {
	ns, pd, ss := hs, 1, 2
	fromA := true
	for ns > 0 {
		for si := 0; si < pd; si++ {
			if fromA {
				Butterfly(ba, sa, wa, si, hs, ns, ss, pd)
			} else {
				Butterfly(sa, ba, wa, si, hs, ns, ss, pd)
			}
		}
		ns /= 2
		pd *= 2
		ss *= 2
		fromA = !fromA
	}
}
