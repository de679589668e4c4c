package economics

import "math"

// RoundSigFigs rounds x to n significant figures, half away from zero.
// Zero, NaN and infinities are returned unchanged, as is x when n < 1.
//
// The rounding position comes from the order of magnitude of x, so a value
// that carries across a power of ten gains a digit: 999.6 at 3 figures is 1000.
func RoundSigFigs(x float64, n int) float64 {
	if x == 0 || n < 1 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	decimals := n - int(math.Floor(math.Log10(math.Abs(x)))) - 1
	if decimals >= 0 {
		scale := math.Pow(10, float64(decimals))
		return math.Round(x*scale) / scale
	}
	scale := math.Pow(10, float64(-decimals))
	return math.Round(x/scale) * scale
}
