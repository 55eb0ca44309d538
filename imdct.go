package mdct

import (
	"math"

	"github.com/llehouerou/go-mdct/internal/dct"
)

// Transform size limits. The upper bound is somewhat arbitrary, but a limit
// must be set somewhere; the lower bound comes from the quarter-region
// recurrence in Transform, which requires the output length to be divisible
// by four.
const (
	minSize = 4
	maxSize = 8192
)

// IMDCT holds state for an N-point Inverse Modified Discrete Cosine
// Transform, mapping N frequency-domain coefficients to 2N time-domain
// samples.
//
// The IMDCT is implemented in terms of a DCT-IV derived from a DCT-II, as
// described in [1] and [2].
//
// [1] Mu-Huo Cheng and Yu-Hsin Hsu, "Fast IMDCT and MDCT algorithms - a
// matrix approach," in IEEE Transactions on Signal Processing, vol. 51,
// no. 1, pp. 221-229, Jan. 2003, doi: 10.1109/TSP.2002.806566.
//
// [2] Tan Li, R. Zhang, R. Yang, Heyun Huang and Fuhuei Lin, "A unified
// computing kernel for MDCT/IMDCT in modern audio coding standards," 2007
// International Symposium on Communications and Information Technologies,
// Sydney, NSW, 2007, pp. 546-550, doi: 10.1109/ISCIT.2007.4392079.
type IMDCT struct {
	n     int
	dct   *dct.DCT
	table []float64 // pre-rotation twiddles, 2*cos(pi*(2i+1)/(4n))
	buf   []float64 // work buffer for the DCT-II and recurrence steps
}

// New creates an N-point IMDCT.
//
// n must be a power of two, at least 4 and at most 8192; other values are
// rejected with an Error. The twiddle table and the owned DCT-II engine are
// built once here, so Transform never allocates.
func New(n int) (*IMDCT, error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, ErrNotPowerOfTwo
	}
	if n < minSize {
		return nil, ErrSizeTooSmall
	}
	if n > maxSize {
		return nil, ErrSizeTooLarge
	}

	c := math.Pi / float64(4*n)
	table := make([]float64, n)
	for i := range table {
		table[i] = 2.0 * math.Cos(c*float64(2*i+1))
	}

	return &IMDCT{
		n:     n,
		dct:   dct.New(n),
		table: table,
		buf:   make([]float64, 2*n),
	}, nil
}

// Size returns the number of input coefficients N the transform was created
// with. Each call to Transform produces 2N output samples.
func (t *IMDCT) Size() int {
	return t.n
}

// Transform performs the N-point Inverse Modified Discrete Cosine Transform.
//
// The number of input coefficients in src must equal the value the IMDCT was
// instantiated with, and the length of dst must equal twice that; violating
// either panics before any work is done. dst is fully overwritten, src is
// never modified.
//
// No windowing is performed, but every output sample is multiplied by scale.
// All intermediate arithmetic is done in double precision; results are
// rounded to float32 once, on output.
func (t *IMDCT) Transform(src, dst []float32, scale float32) {
	// The IMDCT produces 2N samples for N inputs.
	n2 := t.n
	n := n2 << 1
	n4 := n2 >> 1

	if len(src) != n2 {
		panic("mdct: src length must equal the transform size")
	}
	if len(dst) != n {
		panic("mdct: dst length must equal twice the transform size")
	}

	buf := t.buf

	// Pre-rotate the input into the second half of the work buffer.
	for i, s := range src {
		buf[n2+i] = float64(s) * t.table[i]
	}

	// Compute the DCT-II in place over the pre-rotated samples.
	t.dct.Transform(buf[n2:])

	// DCT-II to DCT-IV
	//
	// Split the work buffer into 4 evenly sized N/4 regions: [ a, b, c, d ].
	// Regions c & d contain the DCT-II transformed samples from the previous
	// step. After this step, regions b & c contain the DCT-IV transformed
	// samples; d's contents are consumed and never read again.
	b := buf[n4 : 2*n4]
	c := buf[2*n4 : 3*n4]
	d := buf[3*n4:]

	// Map c to b.
	b[0] = -0.5 * c[0]

	for i := 1; i < n4; i++ {
		b[i] = -(c[i] + b[i-1])
	}

	// Map d to c.
	c[0] = d[0] + b[n4-1]

	for i := 1; i < n4; i++ {
		c[i] = d[i] - c[i-1]
	}

	// DCT-IV to IMDCT
	//
	// Using symmetry, expand the DCT-IV into the four quarters of dst.
	// Multiply by the scale factor as this is done.
	sc := float64(scale)

	// The first quarter of dst is a scaled copy of region c.
	for i := 0; i < n4; i++ {
		dst[i] = float32(sc * c[i])
	}

	// The last quarter of dst is a scaled copy of region b, and the third
	// quarter is the same copy reversed.
	for i := 0; i < n4; i++ {
		s := float32(sc * b[i])
		dst[3*n4-1-i] = s
		dst[3*n4+i] = s
	}

	// The second quarter of dst is the first quarter reversed and negated.
	// The first quarter is final at this point.
	for i := 0; i < n4; i++ {
		dst[n4+i] = -dst[n4-1-i]
	}
}
