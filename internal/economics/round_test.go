package economics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundSigFigs(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		n    int
		want float64
	}{
		{name: "carbon reference", x: 1806.8963351228695, n: 3, want: 1810},
		{name: "investment reference", x: 5828183.077291457, n: 4, want: 5828000},
		{name: "crosses power of ten at 3", x: 999.6, n: 3, want: 1000},
		{name: "crosses power of ten at 4", x: 9999.6, n: 4, want: 10000},
		{name: "stays below power of ten", x: 999.6, n: 4, want: 999.6},
		{name: "half rounds away from zero", x: 12.5, n: 2, want: 13},
		{name: "negative", x: -1234.5, n: 3, want: -1230},
		{name: "fractional", x: 0.0012345, n: 3, want: 0.00123},
		{name: "already exact", x: 466.5, n: 4, want: 466.5},
		{name: "single figure", x: 0.96, n: 1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RoundSigFigs(tt.x, tt.n), math.Abs(tt.want)*1e-12)
		})
	}
}

func TestRoundSigFigs_PassThrough(t *testing.T) {
	assert.Equal(t, 0.0, RoundSigFigs(0, 3))
	assert.Equal(t, 123.456, RoundSigFigs(123.456, 0))
	assert.True(t, math.IsNaN(RoundSigFigs(math.NaN(), 3)))
	assert.True(t, math.IsInf(RoundSigFigs(math.Inf(1), 3), 1))
	assert.True(t, math.IsInf(RoundSigFigs(math.Inf(-1), 3), -1))
}
