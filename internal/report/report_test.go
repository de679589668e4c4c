package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/louisconnoni/orc-calc/internal/calculator"
	"github.com/louisconnoni/orc-calc/internal/pricing"
)

func referenceEntry(t *testing.T) Entry {
	t.Helper()

	tariffs, err := pricing.NewClient(zerolog.Nop())
	require.NoError(t, err)

	in := calculator.DefaultInputParameters()
	in.Cooling = calculator.CoolingWater
	in.Location = "PA"

	res, err := calculator.New(tariffs, zerolog.Nop()).Compute(in)
	require.NoError(t, err)
	return Entry{Name: "pa-water", Result: res}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatText},
		{"text", FormatText},
		{"JSON", FormatJSON},
		{"yaml", FormatYAML},
		{"yml", FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFormat("csv")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatText, []Entry{referenceEntry(t)}))
	out := buf.String()

	assert.Contains(t, out, "== pa-water ==")
	assert.Contains(t, out, "IT load 10,000 kW, Water cooling at 65.0 °C, PA")
	assert.Contains(t, out, "Payback Period (years): 13.77\n")
	assert.Contains(t, out, "Initial Investment: $5,828,000.00\n")
	assert.Contains(t, out, "Energy Savings (kW): 554.48\n")
	assert.Contains(t, out, "Carbon Savings (Metric Tons CO2/year): 1,810.00\n")
	assert.Contains(t, out, "Total installed cost: $5,828,183.08 (USD)")
	assert.Contains(t, out, "Net cycle output: 537.34 kW")

	for _, want := range []string{"pump", "expander", "evaporator", "condenser", "generator", "working fluid", "in_range", "above_max"} {
		assert.Contains(t, out, want)
	}
}

func TestRender_TextDegeneratePayback(t *testing.T) {
	entry := referenceEntry(t)
	entry.Result.Economics.PaybackYears = 0
	entry.Result.Economics.DegeneratePayback = true

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatText, []Entry{entry}))
	assert.Contains(t, buf.String(), "Payback Period (years): 0.00 (net savings not positive)")
}

func TestRender_TextMultipleEntries(t *testing.T) {
	a := referenceEntry(t)
	b := referenceEntry(t)
	b.Name = "second"

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatText, []Entry{a, b}))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, LabelPayback))
	assert.Less(t, strings.Index(out, "== pa-water =="), strings.Index(out, "== second =="))
}

func TestRender_TextMissingResult(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, FormatText, []Entry{{Name: "empty"}})
	assert.ErrorContains(t, err, `rendering "empty"`)
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, []Entry{referenceEntry(t)}))

	var decoded []struct {
		Name   string `json:"name"`
		Result struct {
			Economics struct {
				InitialInvestment   float64 `json:"initial_investment"`
				CarbonSavingsTonnes float64 `json:"carbon_savings_tonnes_per_year"`
			} `json:"economics"`
			Costs struct {
				Items []struct {
					Item   string `json:"item"`
					Regime string `json:"regime"`
				} `json:"items"`
			} `json:"costs"`
			Inputs struct {
				Location string `json:"location"`
				Currency string `json:"currency"`
			} `json:"inputs"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)

	got := decoded[0]
	assert.Equal(t, "pa-water", got.Name)
	assert.Equal(t, "PA", got.Result.Inputs.Location)
	assert.Equal(t, "USD", got.Result.Inputs.Currency)
	assert.Equal(t, 5828000.0, got.Result.Economics.InitialInvestment)
	assert.Equal(t, 1810.0, got.Result.Economics.CarbonSavingsTonnes)
	require.Len(t, got.Result.Costs.Items, 5)
	assert.Equal(t, "evaporator", got.Result.Costs.Items[2].Item)
	assert.Equal(t, "above_max", got.Result.Costs.Items[2].Regime)
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatYAML, []Entry{referenceEntry(t)}))

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "pa-water", decoded[0]["name"])

	result, ok := decoded[0]["result"].(map[string]any)
	require.True(t, ok)
	econ, ok := result["economics"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 1810, econ["carbon_savings_tonnes_per_year"])
	assert.Contains(t, buf.String(), "regime: in_range")
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, Format("xml"), nil)
	assert.ErrorContains(t, err, "unknown output format")
}
