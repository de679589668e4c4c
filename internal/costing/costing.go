// Package costing rolls priced ORC equipment up into a total installed
// (grassroots) capital cost escalated to the current cost-index year.
package costing

import (
	"fmt"

	"github.com/louisconnoni/orc-calc/internal/economics"
	"github.com/louisconnoni/orc-calc/internal/equipment"
	"github.com/louisconnoni/orc-calc/internal/thermo"
)

const (
	// ModuleFactor converts bare-module cost to total module cost
	// (contingency and contractor fee).
	ModuleFactor = 1.18

	// AuxiliaryFactor is the share of base bare-module cost added for
	// auxiliary facilities in the grassroots estimate.
	AuxiliaryFactor = 0.5

	// CEPCIBase is the Chemical Engineering Plant Cost Index of the
	// correlation base year (2009).
	CEPCIBase = 521.9

	// CEPCICurrent is the index the estimate is escalated to (2018).
	CEPCICurrent = 567.5
)

// Summary is the aggregated capital cost estimate. All figures are dollars.
type Summary struct {
	Items []equipment.Cost `json:"items" yaml:"items"`

	// WorkingFluid is the initial working-fluid charge. It counts toward the
	// base sum only.
	WorkingFluid float64 `json:"working_fluid_cost" yaml:"working_fluid_cost"`

	BareModuleBaseSum float64 `json:"bare_module_base_sum" yaml:"bare_module_base_sum"`
	BareModuleSum     float64 `json:"bare_module_sum" yaml:"bare_module_sum"`
	TotalModule       float64 `json:"total_module_cost" yaml:"total_module_cost"`
	Grassroots        float64 `json:"grassroots_cost" yaml:"grassroots_cost"`

	// Total is the grassroots cost escalated by CEPCICurrent / CEPCIBase.
	Total float64 `json:"total_installed_cost" yaml:"total_installed_cost"`

	// InitialInvestment is Total rounded to economics.InvestmentSigFigs.
	InitialInvestment float64 `json:"initial_investment" yaml:"initial_investment"`
}

// Aggregate sums the priced items and applies the module, grassroots and
// cost-index factors.
func Aggregate(items []equipment.Cost, workingFluid float64) Summary {
	s := Summary{
		Items:        append([]equipment.Cost(nil), items...),
		WorkingFluid: workingFluid,
	}

	for _, item := range items {
		s.BareModuleBaseSum += item.BareModuleBase
		s.BareModuleSum += item.BareModule
	}
	s.BareModuleBaseSum += workingFluid

	s.TotalModule = s.BareModuleSum * ModuleFactor
	s.Grassroots = s.TotalModule + AuxiliaryFactor*s.BareModuleBaseSum
	s.Total = s.Grassroots * (CEPCICurrent / CEPCIBase)
	s.InitialInvestment = economics.RoundSigFigs(s.Total, economics.InvestmentSigFigs)

	return s
}

// Estimate prices the pump, expander, evaporator, condenser, generator and
// working-fluid charge for a solved cycle and aggregates them.
func Estimate(p thermo.Performance) (Summary, error) {
	sized := []struct {
		c    equipment.Correlation
		size float64
	}{
		{equipment.Pump, p.PumpPowerKW},
		{equipment.Expander, p.ExpanderPowerKW},
		{equipment.Evaporator, p.EvaporatorAreaM2},
		{equipment.Condenser, p.CondenserAreaM2},
	}

	items := make([]equipment.Cost, 0, len(sized)+1)
	for _, s := range sized {
		cost, err := s.c.Estimate(s.size)
		if err != nil {
			return Summary{}, fmt.Errorf("pricing %s: %w", s.c.Item, err)
		}
		items = append(items, cost)
	}

	gen, err := equipment.Generator(p.ExpanderPowerKW)
	if err != nil {
		return Summary{}, fmt.Errorf("pricing %s: %w", equipment.ItemGenerator, err)
	}
	items = append(items, gen)

	fluid, err := equipment.WorkingFluid(p.MassFlowKgPerS)
	if err != nil {
		return Summary{}, fmt.Errorf("pricing working fluid: %w", err)
	}

	return Aggregate(items, fluid), nil
}
