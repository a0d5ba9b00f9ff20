// Copyright ©2026 The Fourierkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fourierkit

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"
)

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

func TestNewBluesteinGating(t *testing.T) {
	for _, n := range []int{3, 5, 6, 7, 9, 11, 100, 501, 1000} {
		if _, err := NewBluestein[float64](n); err != nil {
			t.Errorf("NewBluestein(%d) returned error %v, want success", n, err)
		}
	}
	for _, n := range []int{0, 1, 2, -1, 4, 8, 1024} {
		if _, err := NewBluestein[float64](n); err == nil {
			t.Errorf("NewBluestein(%d) succeeded, want *DomainError", n)
		}
	}
}

func TestBluesteinAgainstBruteForce(t *testing.T) {
	const tol = 1e-6
	src := rand.NewPCG(5, 5)
	for _, n := range []int{3, 5, 6, 7, 11, 17, 100, 101, 501} {
		t.Run(fmt.Sprintf("N=%d", n), func(t *testing.T) {
			k, err := NewBluestein[float64](n)
			if err != nil {
				t.Fatal(err)
			}
			if k.Len() != n {
				t.Fatalf("Len() = %d, want %d", k.Len(), n)
			}

			rng := rand.New(src)
			x := make([]Complex[float64], n)
			for i := range x {
				x[i] = Complex[float64]{Re: rng.Float64()*2 - 1, Im: rng.Float64()*2 - 1}
			}
			want := bruteDFT(x)
			got := k.Coefficients(nil, x)

			for i := range got {
				if math.Abs(got[i].Re-want[i].Re) > tol || math.Abs(got[i].Im-want[i].Im) > tol {
					t.Errorf("N=%d X[%d] = %v, want %v", n, i, got[i], want[i])
				}
			}
		})
	}
}

func TestBluesteinSequenceIntoUnsupported(t *testing.T) {
	k, err := NewBluestein[float64](5)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("SequenceInto did not panic")
		}
		if _, ok := r.(*UnsupportedError); !ok {
			t.Fatalf("SequenceInto panicked with %T, want *UnsupportedError", r)
		}
	}()
	k.SequenceInto(make([]Complex[float64], 5))
}

func TestBluesteinLengthMismatchPanics(t *testing.T) {
	k, err := NewBluestein[float64](5)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Error("CoefficientsInto with wrong length did not panic")
		}
	}()
	k.CoefficientsInto(make([]Complex[float64], 4))
}
