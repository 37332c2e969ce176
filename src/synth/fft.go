package synth

import (
	"math"

	"github.com/pkg/errors"
)

// Spectrum is a complex signal split into parallel real and imaginary parts
type Spectrum struct {
	Re, Im []float64
}

// NewSpectrum allocates a zeroed spectrum of n bins
func NewSpectrum(n int) Spectrum {
	return Spectrum{Re: make([]float64, n), Im: make([]float64, n)}
}

func (s Spectrum) copyFrom(o Spectrum) {
	copy(s.Re, o.Re)
	copy(s.Im, o.Im)
}

// Transform is a recursive radix-2 FFT of one fixed size. Twiddles are
// computed once, scratch space is reused between calls, so a Transform must
// not be used from two goroutines at once.
type Transform struct {
	n       int
	cos     []float64
	sin     []float64
	sinInv  []float64
	scratch Spectrum
}

// NewTransform prepares an n point transform, n must be a power of two
func NewTransform(n int) (*Transform, error) {
	if n < 2 || n&(n-1) != 0 {
		return nil, errors.Errorf("transform size must be a power of two, got %d", n)
	}
	half := n / 2
	t := &Transform{
		n:       n,
		cos:     make([]float64, half),
		sin:     make([]float64, half),
		sinInv:  make([]float64, half),
		scratch: NewSpectrum(n),
	}
	for k := 0; k < half; k++ {
		angle := math.Pi * float64(k) / float64(half)
		t.cos[k] = math.Cos(angle)
		t.sin[k] = -math.Sin(angle)
		t.sinInv[k] = -t.sin[k]
	}
	return t, nil
}

// Size is the number of points of the transform
func (t *Transform) Size() int { return t.n }

// Forward transforms s in place
func (t *Transform) Forward(s Spectrum) {
	t.run(s, t.sin)
}

// Inverse transforms s in place. The result is not normalised: divide by
// Size() to get the original signal back.
func (t *Transform) Inverse(s Spectrum) {
	t.run(s, t.sinInv)
}

func (t *Transform) run(s Spectrum, sin []float64) {
	if len(s.Re) != t.n || len(s.Im) != t.n {
		panic(errors.Errorf("transform of size %d applied to %d/%d points", t.n, len(s.Re), len(s.Im)))
	}
	t.scratch.copyFrom(s)
	t.recurse(s, t.scratch, 0, 1, sin)
}

// recurse transforms the points off, off+step, off+2*step... of src into dst.
// The two halves are transformed into src first, using dst as their scratch,
// so both buffers must hold the input on entry. Depth is log2(n).
func (t *Transform) recurse(dst, src Spectrum, off, step int, sin []float64) {
	if step >= t.n {
		return
	}
	step2 := step << 1
	t.recurse(src, dst, off, step2, sin)
	t.recurse(src, dst, off+step, step2, sin)

	for i := 0; i < t.n; i += step2 {
		w := i >> 1
		even, odd := off+i, off+i+step
		tr := src.Re[odd]*t.cos[w] - src.Im[odd]*sin[w]
		ti := src.Re[odd]*sin[w] + src.Im[odd]*t.cos[w]
		lo, hi := off+i>>1, off+(i+t.n)>>1
		dst.Re[lo] = src.Re[even] + tr
		dst.Im[lo] = src.Im[even] + ti
		dst.Re[hi] = src.Re[even] - tr
		dst.Im[hi] = src.Im[even] - ti
	}
}
