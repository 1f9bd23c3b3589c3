package wastecarbonsim_test

import (
	"math/rand"
	"testing"

	wastecarbonsim "github.com/loopvinyl/waste-carbon-simulator"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
)

func TestConvolveLengthInvariance(t *testing.T) {
	for _, tc := range []struct{ n, m int }{
		{1, 1}, {1, 50}, {10, 3}, {365, 50}, {50, 365},
	} {
		inputs := make(wastecarbonsim.Series, tc.n)
		for i := range inputs {
			inputs[i] = 1
		}
		kernel := make(wastecarbonsim.Kernel, tc.m)
		for i := range kernel {
			kernel[i] = 1 / float64(tc.m)
		}

		assert.Len(t, wastecarbonsim.Convolve(inputs, kernel), tc.n)
		assert.Len(t, wastecarbonsim.ConvolveFFT(inputs, kernel), tc.n)
	}
}

func TestConvolveEmptyInput(t *testing.T) {
	kernel := wastecarbonsim.Kernel{0.5, 0.5}
	assert.Empty(t, wastecarbonsim.Convolve(wastecarbonsim.Series{}, kernel))
	assert.Empty(t, wastecarbonsim.ConvolveFFT(wastecarbonsim.Series{}, kernel))
}

func TestConvolveKernelLongerThanHorizon(t *testing.T) {
	inputs := wastecarbonsim.Series{1, 1, 1}
	kernel := wastecarbonsim.Kernel{0.1, 0.2, 0.3, 0.2, 0.1, 0.1}

	out := wastecarbonsim.Convolve(inputs, kernel)
	assert.True(t, floats.EqualApprox(out, []float64{0.1, 0.3, 0.6}, 1e-12))
}

func TestConvolveSpikeDegeneratesToKernel(t *testing.T) {
	inputs := wastecarbonsim.Series{2, 0, 0, 0, 0}
	kernel := wastecarbonsim.Kernel{0.5, 0.3, 0.2}

	out := wastecarbonsim.Convolve(inputs, kernel)
	assert.True(t, floats.EqualApprox(out, []float64{1.0, 0.6, 0.4, 0, 0}, 1e-12))
}

func TestConvolveFFTNonNegative(t *testing.T) {
	// a single early spike leaves a long zero tail where transform
	// roundoff would otherwise dip a few 1e-18 below zero
	inputs := make(wastecarbonsim.Series, 4015)
	inputs[0] = 100

	out := wastecarbonsim.ConvolveFFT(inputs, wastecarbonsim.Kernel{0.5, 0.3, 0.2})
	for day, v := range out {
		if v < 0 {
			t.Fatalf("negative emission %g on day %d", v, day)
		}
	}
}

func TestConvolveDirectMatchesFFT(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 10; trial++ {
		n := 1 + rng.Intn(400)
		m := 1 + rng.Intn(400)

		inputs := make(wastecarbonsim.Series, n)
		for i := range inputs {
			inputs[i] = rng.Float64() * 100
		}
		kernel := make(wastecarbonsim.Kernel, m)
		for i := range kernel {
			kernel[i] = rng.Float64()
		}

		direct := wastecarbonsim.Convolve(inputs, kernel)
		fft := wastecarbonsim.ConvolveFFT(inputs, kernel)
		assert.True(t, floats.EqualApprox(direct, fft, 1e-9),
			"direct and fft convolutions diverge for n=%d m=%d", n, m)
	}
}
