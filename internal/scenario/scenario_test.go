package scenario

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louisconnoni/orc-calc/internal/calculator"
	"github.com/louisconnoni/orc-calc/internal/pricing"
)

func TestLoad(t *testing.T) {
	f, err := Load("testdata/scenarios.yaml")
	require.NoError(t, err)
	require.Len(t, f.Scenarios, 3)

	assert.Equal(t, "pa-water", f.Scenarios[0].Name)
	assert.Equal(t, "ct-defaults", f.Scenarios[1].Name)
	assert.Equal(t, "tx-two-phase-custom", f.Scenarios[2].Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.yaml")
	assert.ErrorContains(t, err, "reading scenario file")
}

func TestScenario_Inputs(t *testing.T) {
	f, err := Load("testdata/scenarios.yaml")
	require.NoError(t, err)

	t.Run("explicit values", func(t *testing.T) {
		in, err := f.Scenarios[0].Inputs()
		require.NoError(t, err)

		want := calculator.DefaultInputParameters()
		want.Cooling = calculator.CoolingWater
		want.Location = "PA"
		assert.Equal(t, want, in)
	})

	t.Run("defaults", func(t *testing.T) {
		in, err := f.Scenarios[1].Inputs()
		require.NoError(t, err)
		assert.Equal(t, calculator.DefaultInputParameters(), in)
	})

	t.Run("overrides", func(t *testing.T) {
		in, err := f.Scenarios[2].Inputs()
		require.NoError(t, err)

		assert.Equal(t, 2500.0, in.ITLoadKW)
		assert.Equal(t, calculator.CoolingTwoPhase, in.Cooling)
		require.NotNil(t, in.SourceTempC)
		assert.Equal(t, 85.0, *in.SourceTempC)
		assert.InDelta(t, 0.10, in.HeatLossFraction, 1e-15)
		assert.Equal(t, "TX", in.Location)
		require.NotNil(t, in.ElectricityCentsPerKWh)
		assert.Equal(t, 12.5, *in.ElectricityCentsPerKWh)
		assert.InDelta(t, 0.05, in.PowerLossFraction, 1e-15)
		assert.InDelta(t, 0.75, in.PumpEfficiency, 1e-15)
		assert.InDelta(t, 0.80, in.ExpanderEfficiency, 1e-15)
	})
}

func TestScenario_EvaluatesLikeForm(t *testing.T) {
	f, err := Load("testdata/scenarios.yaml")
	require.NoError(t, err)

	tariffs, err := pricing.NewClient(zerolog.Nop())
	require.NoError(t, err)
	calc := calculator.New(tariffs, zerolog.Nop())

	in, err := f.Scenarios[0].Inputs()
	require.NoError(t, err)

	res, err := calc.Compute(in)
	require.NoError(t, err)
	assert.Equal(t, 5828000.0, res.Economics.InitialInvestment)
	assert.Equal(t, 1810.0, res.Economics.CarbonSavingsTonnes)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"empty document", "", ErrNoScenarios.Error()},
		{"empty list", "scenarios: []\n", ErrNoScenarios.Error()},
		{"unknown key", "scenarios:\n  - name: a\n    it_load: 5\n", "field it_load not found"},
		{"bad number", "scenarios:\n  - name: a\n    it_load_kw: lots\n", "parsing scenario YAML"},
		{"duplicate names", "scenarios:\n  - name: a\n  - name: a\n", `scenario "a" defined twice`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_GeneratesMissingNames(t *testing.T) {
	f, err := Parse([]byte("scenarios:\n  - it_load_kw: 100\n  - name: '  named  '\n"))
	require.NoError(t, err)

	assert.Equal(t, "scenario-1", f.Scenarios[0].Name)
	assert.Equal(t, "named", f.Scenarios[1].Name)
}

func TestScenario_InputsRejectsUnknownCooling(t *testing.T) {
	s := Scenario{Name: "x", Cooling: "immersion"}

	_, err := s.Inputs()
	assert.ErrorContains(t, err, `scenario "x"`)
	assert.ErrorContains(t, err, "unknown cooling technology")
}

func TestFraction(t *testing.T) {
	assert.Equal(t, 0.6, Fraction(60))
	assert.Equal(t, 0.0, Fraction(0))
	assert.Equal(t, 1.0, Fraction(100))
}
