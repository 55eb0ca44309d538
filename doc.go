// Package mdct implements the Inverse Modified Discrete Cosine Transform
// (IMDCT) used by audio decoders to synthesize time-domain samples from
// frequency-domain coefficients.
//
// The transform is specialized for typical audio compression applications
// and is not general purpose: only power-of-two sizes up to 8192 points are
// supported. It performs no windowing and no overlap-add; those belong to
// the caller's synthesis stage.
//
// # Basic Usage
//
// Create one transform per size needed, then reuse it once per frame:
//
//	imdct, err := mdct.New(1024)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	coeffs := make([]float32, 1024)  // frequency-domain input
//	samples := make([]float32, 2048) // time-domain output
//
//	for {
//	    // Fill coeffs from the decoded frame...
//	    imdct.Transform(coeffs, samples, scale)
//	    // Window and overlap-add samples...
//	}
//
// The scale factor is applied to every output sample. Typically it is
// sqrt(1/N) where N is the number of input coefficients, though each
// application will vary.
//
// # Thread Safety
//
// IMDCT instances are NOT safe for concurrent use: each transform call
// reuses an internal work buffer. Use one instance per goroutine, or
// serialize access externally. Construction-time state (the twiddle table)
// is never mutated after New returns.
package mdct
