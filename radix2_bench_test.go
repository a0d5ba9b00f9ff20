// Copyright ©2026 The Fourierkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fourierkit

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func BenchmarkRadix2Coefficients(b *testing.B) {
	for n := 16; n < 1<<20; n <<= 3 {
		k, err := NewRadix2[float64](n)
		if err != nil {
			b.Fatal(err)
		}
		rng := rand.New(rand.NewPCG(1, 1))
		x := make([]Complex[float64], n)
		for i := range x {
			x[i] = Complex[float64]{Re: rng.Float64(), Im: rng.Float64()}
		}
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				k.CoefficientsInto(x)
			}
		})
	}
}

func BenchmarkRadix2Sequence(b *testing.B) {
	for n := 16; n < 1<<20; n <<= 3 {
		k, err := NewRadix2[float64](n)
		if err != nil {
			b.Fatal(err)
		}
		rng := rand.New(rand.NewPCG(1, 1))
		x := make([]Complex[float64], n)
		for i := range x {
			x[i] = Complex[float64]{Re: rng.Float64(), Im: rng.Float64()}
		}
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				k.SequenceInto(x)
			}
		})
	}
}
