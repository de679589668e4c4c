// Package economics turns ORC net power and installed cost into annual
// savings, simple payback and avoided grid emissions.
package economics

import (
	"github.com/louisconnoni/orc-calc/internal/carbon"
)

const (
	// OperatingHoursPerYear assumes the cycle runs continuously all year.
	OperatingHoursPerYear = carbon.HoursPerYear

	// CentsPerDollar converts a ¢/kWh tariff to $/kWh.
	CentsPerDollar = 100.0

	// CarbonSigFigs is the precision of reported carbon savings.
	CarbonSigFigs = 3

	// InvestmentSigFigs is the precision of the reported initial investment.
	InvestmentSigFigs = 4
)

// Inputs are the values the economics stage needs from the rest of the pipeline.
type Inputs struct {
	// PowerLossFraction is the share of generated power lost before it
	// displaces grid draw (0.0 to 1.0).
	PowerLossFraction float64

	// ElectricityCentsPerKWh is the avoided electricity price.
	ElectricityCentsPerKWh float64

	// ExpanderPowerKW and PumpPowerKW come from the solved cycle.
	ExpanderPowerKW float64
	PumpPowerKW     float64

	// TotalCost is the unrounded installed cost in dollars.
	TotalCost float64

	// GridFactor is the carbon intensity of displaced electricity (kg CO2e/kWh).
	GridFactor float64
}

// Project is the economic and environmental outcome of one evaluation.
type Project struct {
	// InitialInvestment is the installed cost as reported (rounded).
	InitialInvestment float64 `json:"initial_investment" yaml:"initial_investment"`

	// AnnualSavings is the value of net generation in $/yr.
	AnnualSavings float64 `json:"annual_savings" yaml:"annual_savings"`

	// PaybackYears is TotalCost / AnnualSavings, or 0 when savings are not positive.
	PaybackYears float64 `json:"payback_years" yaml:"payback_years"`

	// DegeneratePayback is set when PaybackYears was forced to 0 because the
	// cycle produces no net saving.
	DegeneratePayback bool `json:"degenerate_payback" yaml:"degenerate_payback"`

	// EnergySavingsKW is the delivered expander output after power losses.
	EnergySavingsKW float64 `json:"energy_savings_kw" yaml:"energy_savings_kw"`

	// CarbonSavingsTonnes is avoided metric tons CO2e per year, rounded to
	// CarbonSigFigs.
	CarbonSavingsTonnes float64 `json:"carbon_savings_tonnes_per_year" yaml:"carbon_savings_tonnes_per_year"`
}

// AnnualSavings returns the yearly value in dollars of net cycle output.
func AnnualSavings(centsPerKWh, powerLossFraction, expanderKW, pumpKW float64) float64 {
	return (centsPerKWh / CentsPerDollar) * OperatingHoursPerYear * (1 - powerLossFraction) * (expanderKW - pumpKW)
}

// PaybackYears returns totalCost / annualSavings. When annualSavings is zero
// or negative the project never pays back, and the result is reported as 0
// with degenerate set.
func PaybackYears(totalCost, annualSavings float64) (years float64, degenerate bool) {
	if annualSavings > 0 {
		return totalCost / annualSavings, false
	}
	return 0, true
}

// Evaluate computes the project economics and avoided emissions.
//
// Energy savings credit the gross expander output net of power losses; the
// pump draw is charged against the dollar savings only.
func Evaluate(in Inputs) Project {
	var p Project

	p.InitialInvestment = RoundSigFigs(in.TotalCost, InvestmentSigFigs)
	p.AnnualSavings = AnnualSavings(in.ElectricityCentsPerKWh, in.PowerLossFraction, in.ExpanderPowerKW, in.PumpPowerKW)
	p.PaybackYears, p.DegeneratePayback = PaybackYears(in.TotalCost, p.AnnualSavings)

	p.EnergySavingsKW = (1 - in.PowerLossFraction) * in.ExpanderPowerKW

	tonnes := carbon.CalculateAvoidedTonnes(p.EnergySavingsKW, in.GridFactor, OperatingHoursPerYear)
	p.CarbonSavingsTonnes = RoundSigFigs(tonnes, CarbonSigFigs)

	return p
}
