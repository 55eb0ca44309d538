// Package dct implements a fast forward Discrete Cosine Transform, Type II,
// over power-of-two sizes.
package dct

import "math"

// DCT holds state for an in-place forward DCT-II of a fixed size.
//
// The transform is unnormalized:
//
//	X[k] = sum_{i=0}^{n-1} x[i] * cos(pi*k*(2i+1) / (2n))
//
// It is computed with Lee's recursive decomposition, which splits an n-point
// DCT-II into two n/2-point DCT-IIs. Only power-of-two sizes are supported
// for this reason.
type DCT struct {
	n       int
	stages  [][]float64 // per-stage fold coefficients, 0.5/cos(pi*(2i+1)/(2m))
	scratch []float64
}

// New creates and initializes a DCT-II engine for size n.
// n must be a positive power of two.
func New(n int) *DCT {
	if n <= 0 || n&(n-1) != 0 {
		panic("dct: size must be a positive power of two")
	}

	// One coefficient table per recursion stage, from size n down to 2.
	var stages [][]float64
	for m := n; m >= 2; m >>= 1 {
		tab := make([]float64, m/2)
		for i := range tab {
			tab[i] = 0.5 / math.Cos(math.Pi*float64(2*i+1)/float64(2*m))
		}
		stages = append(stages, tab)
	}

	return &DCT{
		n:       n,
		stages:  stages,
		scratch: make([]float64, n),
	}
}

// Size returns the transform size the engine was created with.
func (d *DCT) Size() int {
	return d.n
}

// Transform computes the forward DCT-II of x in place.
// The length of x must equal the engine size.
func (d *DCT) Transform(x []float64) {
	if len(x) != d.n {
		panic("dct: buffer length must equal the transform size")
	}
	d.apply(x, d.scratch, 0)
}

// apply runs one stage of Lee's decomposition. x holds the input and
// receives the output. scratch has the same length as x and is clobbered;
// the recursion alternates the two buffers so no further allocation is
// needed.
func (d *DCT) apply(x, scratch []float64, stage int) {
	n := len(x)
	if n == 1 {
		return
	}
	m := n / 2

	// Fold the input around its midpoint. The sums feed the even output
	// indices, the scaled differences feed the odd ones.
	tab := d.stages[stage]
	g := scratch[:m]
	h := scratch[m:]
	for i := 0; i < m; i++ {
		g[i] = x[i] + x[n-1-i]
		h[i] = (x[i] - x[n-1-i]) * tab[i]
	}

	d.apply(g, x[:m], stage+1)
	d.apply(h, x[m:], stage+1)

	// Interleave the half-size transforms. Odd outputs combine adjacent
	// coefficients of the difference transform; the last one stands alone
	// because the term past the end is identically zero.
	for k := 0; k < m-1; k++ {
		x[2*k] = g[k]
		x[2*k+1] = h[k] + h[k+1]
	}
	x[n-2] = g[m-1]
	x[n-1] = h[m-1]
}
