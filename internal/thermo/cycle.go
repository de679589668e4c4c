package thermo

import (
	"errors"
	"fmt"
	"math"
)

// Heat-exchanger area fits: A (m²) = coeff × Q(kW)^exp.
const (
	EvaporatorAreaCoeff = 0.1537409
	EvaporatorAreaExp   = 1.0766492
	CondenserAreaCoeff  = 0.2065152
	CondenserAreaExp    = 1.0842556
)

// wattsPerKW converts between the kW loads and the J/kg specific quantities.
const wattsPerKW = 1000.0

var (
	// ErrNonPositiveEfficiency is returned when an isentropic efficiency is <= 0.
	ErrNonPositiveEfficiency = errors.New("isentropic efficiency must be positive")

	// ErrNonPositiveSpecificHeat is returned when the specific evaporator heat
	// is zero or negative, which would make mass flow undefined or reversed.
	ErrNonPositiveSpecificHeat = errors.New("specific evaporator heat must be positive")

	// ErrNegativeHeat is returned when the evaporator or condenser duty is negative.
	ErrNegativeHeat = errors.New("heat duty must not be negative")

	// ErrNonFinite is returned when a derived quantity is NaN or infinite.
	ErrNonFinite = errors.New("derived quantity is not finite")
)

// CycleInputs are the operating parameters of one cycle evaluation.
type CycleInputs struct {
	// ITLoadKW is the data-center heat rejected to the evaporator before losses.
	ITLoadKW float64

	// HeatLossFraction is the share of IT heat lost before the evaporator (0.0 to 1.0).
	HeatLossFraction float64

	// PumpEfficiency is the pump isentropic efficiency (0.0 to 1.0, exclusive of 0).
	PumpEfficiency float64

	// ExpanderEfficiency is the expander isentropic efficiency (0.0 to 1.0, exclusive of 0).
	ExpanderEfficiency float64
}

// Performance is the solved cycle.
type Performance struct {
	SpecificEvaporatorHeat float64 `json:"specific_evaporator_heat_j_per_kg" yaml:"specific_evaporator_heat_j_per_kg"`
	SpecificExpanderWork   float64 `json:"specific_expander_work_j_per_kg" yaml:"specific_expander_work_j_per_kg"`
	SpecificPumpWork       float64 `json:"specific_pump_work_j_per_kg" yaml:"specific_pump_work_j_per_kg"`
	ThermalEfficiency      float64 `json:"thermal_efficiency" yaml:"thermal_efficiency"`
	MassFlowKgPerS         float64 `json:"mass_flow_kg_per_s" yaml:"mass_flow_kg_per_s"`
	ExpanderPowerKW        float64 `json:"expander_power_kw" yaml:"expander_power_kw"`
	PumpPowerKW            float64 `json:"pump_power_kw" yaml:"pump_power_kw"`
	EvaporatorHeatKW       float64 `json:"evaporator_heat_kw" yaml:"evaporator_heat_kw"`
	EvaporatorAreaM2       float64 `json:"evaporator_area_m2" yaml:"evaporator_area_m2"`
	CondenserHeatKW        float64 `json:"condenser_heat_kw" yaml:"condenser_heat_kw"`
	CondenserAreaM2        float64 `json:"condenser_area_m2" yaml:"condenser_area_m2"`
}

// NetPowerKW is the expander output minus the pump input.
func (p Performance) NetPowerKW() float64 {
	return p.ExpanderPowerKW - p.PumpPowerKW
}

// Solve runs the closed-form cycle balance:
//  1. Qevap = (1 − LS) × IT load
//  2. wpump = (h2s − h1) / ηpump
//  3. qevap = h3 − (h1 − wpump)
//  4. wexp = (h3 − h4s) × ηexp
//  5. η = (wexp − wpump) / qevap
//  6. ṁ = Qevap / qevap × 1000
//  7-8. Wexp, Wp = ṁ × w / 1000
//  9-11. evaporator area, Qcond = Qevap × (1 − η), condenser area
func Solve(in CycleInputs, st State) (Performance, error) {
	if in.PumpEfficiency <= 0 {
		return Performance{}, fmt.Errorf("pump efficiency %v: %w", in.PumpEfficiency, ErrNonPositiveEfficiency)
	}
	if in.ExpanderEfficiency <= 0 {
		return Performance{}, fmt.Errorf("expander efficiency %v: %w", in.ExpanderEfficiency, ErrNonPositiveEfficiency)
	}

	var p Performance

	p.EvaporatorHeatKW = (1 - in.HeatLossFraction) * in.ITLoadKW
	if p.EvaporatorHeatKW < 0 {
		return Performance{}, fmt.Errorf("evaporator duty %.4g kW: %w", p.EvaporatorHeatKW, ErrNegativeHeat)
	}

	p.SpecificPumpWork = (st.H2s - st.H1) / in.PumpEfficiency
	p.SpecificEvaporatorHeat = st.H3 - (st.H1 - p.SpecificPumpWork)
	p.SpecificExpanderWork = (st.H3 - st.H4s) * in.ExpanderEfficiency

	if !(p.SpecificEvaporatorHeat > 0) {
		return Performance{}, fmt.Errorf("specific evaporator heat %.6g J/kg: %w",
			p.SpecificEvaporatorHeat, ErrNonPositiveSpecificHeat)
	}

	p.ThermalEfficiency = (p.SpecificExpanderWork - p.SpecificPumpWork) / p.SpecificEvaporatorHeat

	p.MassFlowKgPerS = p.EvaporatorHeatKW / p.SpecificEvaporatorHeat * wattsPerKW
	p.ExpanderPowerKW = p.MassFlowKgPerS * p.SpecificExpanderWork / wattsPerKW
	p.PumpPowerKW = p.MassFlowKgPerS * p.SpecificPumpWork / wattsPerKW

	p.EvaporatorAreaM2 = EvaporatorAreaCoeff * math.Pow(p.EvaporatorHeatKW, EvaporatorAreaExp)

	p.CondenserHeatKW = p.EvaporatorHeatKW * (1 - p.ThermalEfficiency)
	if p.CondenserHeatKW < 0 {
		return Performance{}, fmt.Errorf("condenser duty %.4g kW: %w", p.CondenserHeatKW, ErrNegativeHeat)
	}
	p.CondenserAreaM2 = CondenserAreaCoeff * math.Pow(p.CondenserHeatKW, CondenserAreaExp)

	if err := p.checkFinite(); err != nil {
		return Performance{}, err
	}
	return p, nil
}

func (p Performance) checkFinite() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"specific_evaporator_heat", p.SpecificEvaporatorHeat},
		{"specific_expander_work", p.SpecificExpanderWork},
		{"specific_pump_work", p.SpecificPumpWork},
		{"thermal_efficiency", p.ThermalEfficiency},
		{"mass_flow", p.MassFlowKgPerS},
		{"expander_power", p.ExpanderPowerKW},
		{"pump_power", p.PumpPowerKW},
		{"evaporator_area", p.EvaporatorAreaM2},
		{"condenser_heat", p.CondenserHeatKW},
		{"condenser_area", p.CondenserAreaM2},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s = %v: %w", f.name, f.value, ErrNonFinite)
		}
	}
	return nil
}
