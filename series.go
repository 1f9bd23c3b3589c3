package wastecarbonsim

import (
	"github.com/loopvinyl/waste-carbon-simulator/internal/must"
	"gonum.org/v1/gonum/floats"
)

// Series is a sequence of daily values indexed by day since the start of
// the simulation.
type Series []float64

func (s Series) Sum() float64 {
	return floats.Sum(s)
}

func (s Series) Last() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// Cumulative returns the running sum of the series, same length.
func (s Series) Cumulative() Series {
	cum := make(Series, len(s))
	copy(cum, s)
	floats.CumSum(cum, s)
	return cum
}

// Scaled returns a copy of the series multiplied elementwise by c.
func (s Series) Scaled(c float64) Series {
	scaled := make(Series, len(s))
	copy(scaled, s)
	floats.Scale(c, scaled)
	return scaled
}

// Plus returns the elementwise sum of two series of equal length.
func (s Series) Plus(other Series) Series {
	must.Assert(len(s) == len(other), "cannot add series of different lengths")
	sum := make(Series, len(s))
	copy(sum, s)
	floats.Add(sum, other)
	return sum
}

// Minus returns the elementwise difference s - other of two series of
// equal length.
func (s Series) Minus(other Series) Series {
	must.Assert(len(s) == len(other), "cannot subtract series of different lengths")
	diff := make(Series, len(s))
	copy(diff, s)
	floats.Sub(diff, other)
	return diff
}

// Kernel is a release profile: non-negative weights distributing one unit
// of emission potential over the days following a waste input. Empirical
// kernels sum to 1. The landfill methane decay kernel deliberately does
// not: its sum is the fraction of the potential released within the
// simulation horizon.
type Kernel []float64

func (k Kernel) Sum() float64 {
	return floats.Sum(k)
}

// Normalized returns a copy of the kernel scaled so its weights sum to 1.
func (k Kernel) Normalized() Kernel {
	sum := k.Sum()
	must.Assert(sum > 0, "cannot normalize a kernel with zero sum")
	norm := make(Kernel, len(k))
	copy(norm, k)
	floats.Scale(1/sum, norm)
	return norm
}
