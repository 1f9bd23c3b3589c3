package wastecarbonsim

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Convolve turns a daily waste input schedule and a release kernel into a
// daily emission series:
//
//	e[d] = Σ_{i=0}^{min(d,m-1)} p[d-i]·w[i]
//
// The output always has the length of the input schedule. Inputs arriving
// near the end of the horizon are only partially observed since the
// release continues past the simulation window. No normalization happens
// here, that is the kernel's responsibility.
func Convolve(inputs Series, kernel Kernel) Series {
	out := make(Series, len(inputs))
	for d := range out {
		limit := min(d, len(kernel)-1)
		for i := 0; i <= limit; i++ {
			out[d] += inputs[d-i] * kernel[i]
		}
	}
	return out
}

// ConvolveFFT produces the same values as Convolve through a transform
// based linear convolution. Direct summation degrades to O(n·m): for a 50
// year horizon against the full length landfill decay kernel the fast
// transform keeps the run well under a second.
func ConvolveFFT(inputs Series, kernel Kernel) Series {
	n := len(inputs)
	if n == 0 {
		return Series{}
	}
	if len(kernel) == 0 {
		return make(Series, n)
	}

	length := n + len(kernel) - 1
	padInputs := make([]float64, length)
	copy(padInputs, inputs)
	padKernel := make([]float64, length)
	copy(padKernel, kernel)

	fft := fourier.NewFFT(length)
	inputCoeffs := fft.Coefficients(nil, padInputs)
	kernelCoeffs := fft.Coefficients(nil, padKernel)
	for i := range inputCoeffs {
		inputCoeffs[i] *= kernelCoeffs[i]
	}

	full := fft.Sequence(nil, inputCoeffs)
	out := make(Series, n)
	for i := range out {
		// gonum's inverse transform is unnormalized. Roundoff can leave
		// tiny negative values where the direct sum is exactly zero, so
		// clamp: emission series stay non-negative.
		out[i] = math.Max(full[i]/float64(length), 0)
	}
	return out
}
