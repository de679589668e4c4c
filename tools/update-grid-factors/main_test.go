package main

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louisconnoni/orc-calc/internal/carbon"
)

func loadTestdata(t *testing.T) []GridFactor {
	t.Helper()

	f, err := os.Open("testdata/egrid_states.csv")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	factors, err := parseFactors(f)
	require.NoError(t, err)
	return factors
}

func TestParseFactors_MatchesCheckedInTable(t *testing.T) {
	factors := loadTestdata(t)
	require.Len(t, factors, len(carbon.GridEmissionFactors))

	for _, f := range factors {
		want, ok := carbon.GridEmissionFactors[f.State]
		require.True(t, ok, f.State)
		assert.Equal(t, want, f.Factor, f.State)
	}
	assert.NoError(t, validateFactors(factors))
}

func TestGenerateGridFactorsFile(t *testing.T) {
	factors := loadTestdata(t)

	out, err := generateGridFactorsFile(factors, "pa")
	require.NoError(t, err)
	src := string(out)

	assert.True(t, strings.HasPrefix(src, "package carbon\n"))
	assert.Contains(t, src, `"PA": 0.372, // Pennsylvania`)
	assert.Contains(t, src, "This is the Pennsylvania value.")
	assert.Contains(t, src, "const DefaultGridFactor = 0.372")
	assert.Contains(t, src, "func LookupGridFactor(state string)")
	assert.Less(t, strings.Index(src, `"AL"`), strings.Index(src, `"WY"`))
}

func TestGenerateGridFactorsFile_MatchesCheckedInFile(t *testing.T) {
	out, err := generateGridFactorsFile(loadTestdata(t), "PA")
	require.NoError(t, err)

	want, err := os.ReadFile("../../internal/carbon/grid_factors.go")
	require.NoError(t, err)
	assert.Contains(t, string(out), `"KY": 0.750, // Kentucky`)
	assert.Equal(t, string(want), string(out))
}

func TestFormatFactor(t *testing.T) {
	assert.Equal(t, "0.750", formatFactor(0.75))
	assert.Equal(t, "0.372", formatFactor(0.372))
	assert.Equal(t, "1.000", formatFactor(1))
}

func TestGenerateGridFactorsFile_UnknownDefault(t *testing.T) {
	_, err := generateGridFactorsFile(loadTestdata(t), "ZZ")
	assert.ErrorContains(t, err, "default state ZZ not in input")
}

func TestParseFactors_Errors(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		wantErr string
	}{
		{"empty", "", "empty CSV"},
		{"missing column", "state,name\nPA,Pennsylvania\n", `missing column "kg_per_kwh"`},
		{"no rows", "state,name,kg_per_kwh\n", "no state rows"},
		{"bad code", "state,name,kg_per_kwh\nPENN,Pennsylvania,0.3\n", "not two letters"},
		{"duplicate", "state,name,kg_per_kwh\nPA,Pennsylvania,0.3\npa,Pennsylvania,0.4\n", "duplicate state PA"},
		{"bad number", "state,name,kg_per_kwh\nPA,Pennsylvania,abc\n", "bad factor for PA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFactors(strings.NewReader(tt.csv))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestParseFactors_HeaderOrder(t *testing.T) {
	factors, err := parseFactors(strings.NewReader("kg_per_kwh,State,name\n0.5, tx ,Texas\n"))
	require.NoError(t, err)
	assert.Equal(t, []GridFactor{{State: "TX", Name: "Texas", Factor: 0.5}}, factors)
}

func TestValidateFactors(t *testing.T) {
	err := validateFactors([]GridFactor{
		{State: "AA", Factor: -0.1},
		{State: "BB", Factor: 0.4},
		{State: "CC", Factor: 2.5},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AA")
	assert.Contains(t, err.Error(), "CC")
	assert.NotContains(t, err.Error(), "BB")
}
