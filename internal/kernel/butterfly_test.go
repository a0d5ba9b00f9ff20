// Copyright ©2026 The Fourierkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"
)

// bruteDFT computes X[k] = Σ x[n]·exp(-2πi·k·n/N) directly, as a
// reference independent of the butterfly/ping-pong machinery.
func bruteDFT(x []Complex[float64]) []Complex[float64] {
	n := len(x)
	out := make([]Complex[float64], n)
	for k := 0; k < n; k++ {
		var sumRe, sumIm float64
		for t := 0; t < n; t++ {
			theta := -2 * math.Pi * float64(k) * float64(t) / float64(n)
			c, s := math.Cos(theta), math.Sin(theta)
			sumRe += x[t].Re*c - x[t].Im*s
			sumIm += x[t].Re*s + x[t].Im*c
		}
		out[k] = Complex[float64]{Re: sumRe, Im: sumIm}
	}
	return out
}

func TestDITNaturalOrder(t *testing.T) {
	const tol = 1e-9
	src := rand.NewPCG(1, 1)
	for _, n := range []int{2, 4, 8, 16, 64} {
		t.Run(fmt.Sprintf("N=%d", n), func(t *testing.T) {
			rng := rand.New(src)
			x := make([]Complex[float64], n)
			for i := range x {
				x[i] = Complex[float64]{Re: rng.Float64()*2 - 1, Im: rng.Float64()*2 - 1}
			}
			want := bruteDFT(x)

			twiddle := make([]Complex[float64], n/2)
			FillTwiddle(twiddle)

			sa := append([]Complex[float64]{}, x...)
			ba := make([]Complex[float64], n)
			DITNaturalOrder(sa, ba, twiddle, n/2)

			p := Log2Floor(n)
			got := sa
			if p%2 == 1 {
				got = ba
			}
			for k := range got {
				if math.Abs(got[k].Re-want[k].Re) > tol || math.Abs(got[k].Im-want[k].Im) > tol {
					t.Errorf("N=%d X[%d] = %v, want %v", n, k, got[k], want[k])
				}
			}
		})
	}
}

func TestDITNaturalOrderKnownValue(t *testing.T) {
	// fft([1+0i, 2-1i, 0-1i, -1+2i]) = [2+0i, -2-2i, 0-2i, 4+4i]
	x := []Complex[float64]{{1, 0}, {2, -1}, {0, -1}, {-1, 2}}
	want := []Complex[float64]{{2, 0}, {-2, -2}, {0, -2}, {4, 4}}

	twiddle := make([]Complex[float64], 2)
	FillTwiddle(twiddle)

	sa := append([]Complex[float64]{}, x...)
	ba := make([]Complex[float64], 4)
	DITNaturalOrder(sa, ba, twiddle, 2) // log2(4)=2, even -> result in sa

	for k := range sa {
		if sa[k] != want[k] {
			t.Errorf("X[%d] = %v, want %v", k, sa[k], want[k])
		}
	}
}
