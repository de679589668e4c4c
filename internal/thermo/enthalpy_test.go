package thermo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateAt_H1IsConstant(t *testing.T) {
	for _, temp := range []float64{-20, 0, 50, 65, 80, 150} {
		assert.Equal(t, 226989.0315067, StateAt(temp).H1, "h1 at %v °C", temp)
	}
}

func TestStateAt_CoolingTechnologyDefaults(t *testing.T) {
	tests := []struct {
		name    string
		tempC   float64
		wantH2s float64
		wantH3  float64
		wantH4s float64
	}{
		{name: "air 50C", tempC: 50, wantH2s: 227095.2754559, wantH3: 442199.881098, wantH4s: 429777.4609171},
		{name: "water 65C", tempC: 65, wantH2s: 227222.0757989, wantH3: 453222.7760115, wantH4s: 432279.8528551},
		{name: "two-phase 80C", tempC: 80, wantH2s: 227395.0501469, wantH3: 463885.709625, wantH4s: 435071.1155881},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := StateAt(tt.tempC)
			assert.InEpsilon(t, tt.wantH2s, st.H2s, 1e-6)
			assert.InEpsilon(t, tt.wantH3, st.H3, 1e-6)
			assert.InEpsilon(t, tt.wantH4s, st.H4s, 1e-6)
		})
	}
}

func TestStateAt_MatchesClosedForm(t *testing.T) {
	for _, temp := range []float64{20, 37.5, 50, 65, 80, 100} {
		st := StateAt(temp)
		assert.InEpsilon(t, 0.1026089*temp*temp-3.3466673*temp+227006.0865709, st.H2s, 1e-12)
		assert.InEpsilon(t, -0.7999140*temp*temp+826.8497709*temp+402857.1775530, st.H3, 1e-12)
		assert.InEpsilon(t, 0.6419351*temp*temp+93.0035927*temp+423522.4435321, st.H4s, 1e-12)
	}
}

func TestStateAt_ExpanderDropGrowsWithTemperature(t *testing.T) {
	prev := 0.0
	for _, temp := range []float64{40, 50, 60, 70, 80, 90} {
		st := StateAt(temp)
		drop := st.H3 - st.H4s
		assert.Greater(t, drop, prev, "h3-h4s should grow with source temperature (at %v °C)", temp)
		prev = drop
	}
}
