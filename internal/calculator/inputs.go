package calculator

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// CoolingTechnology is the data-center cooling scheme, which sets the
// temperature of the recoverable heat.
type CoolingTechnology string

// Supported cooling technologies.
const (
	CoolingAir      CoolingTechnology = "air"
	CoolingWater    CoolingTechnology = "water"
	CoolingTwoPhase CoolingTechnology = "two-phase"
)

// Default source temperatures (°C) by cooling technology.
const (
	AirSourceTempC      = 50.0
	WaterSourceTempC    = 65.0
	TwoPhaseSourceTempC = 80.0
)

// Defaults used by DefaultInputParameters.
const (
	DefaultITLoadKW   = 10000.0
	DefaultEfficiency = 0.60
	DefaultLocation   = "CT"
)

// CoolingTechnologies lists the technologies in presentation order.
var CoolingTechnologies = []CoolingTechnology{CoolingAir, CoolingWater, CoolingTwoPhase}

// ParseCoolingTechnology accepts the display labels and common spellings
// ("Air", "water", "Two-phase", "two_phase", "twophase").
func ParseCoolingTechnology(s string) (CoolingTechnology, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	switch norm {
	case "air":
		return CoolingAir, nil
	case "water":
		return CoolingWater, nil
	case "two-phase", "twophase":
		return CoolingTwoPhase, nil
	default:
		return "", fmt.Errorf("unknown cooling technology %q (want air, water or two-phase)", s)
	}
}

// Valid reports whether c is a supported technology.
func (c CoolingTechnology) Valid() bool {
	switch c {
	case CoolingAir, CoolingWater, CoolingTwoPhase:
		return true
	default:
		return false
	}
}

// Label returns the display name.
func (c CoolingTechnology) Label() string {
	switch c {
	case CoolingAir:
		return "Air"
	case CoolingWater:
		return "Water"
	case CoolingTwoPhase:
		return "Two-phase"
	default:
		return string(c)
	}
}

// DefaultSourceTempC returns the typical recoverable heat temperature for
// the technology, falling back to the air-cooled value.
func (c CoolingTechnology) DefaultSourceTempC() float64 {
	switch c {
	case CoolingWater:
		return WaterSourceTempC
	case CoolingTwoPhase:
		return TwoPhaseSourceTempC
	default:
		return AirSourceTempC
	}
}

// InputParameters is one retrofit scenario. Fractions are 0.0 to 1.0.
type InputParameters struct {
	// ITLoadKW is the data-center IT load; all of it is assumed to become heat.
	ITLoadKW float64

	// Cooling selects the default source temperature.
	Cooling CoolingTechnology

	// SourceTempC overrides the technology default when non-nil.
	SourceTempC *float64

	// HeatLossFraction is the share of IT heat not delivered to the evaporator.
	HeatLossFraction float64

	// Location is a two-letter US state code. Unknown codes fall back to
	// default tariff and grid factor.
	Location string

	// ElectricityCentsPerKWh overrides the state tariff when non-nil.
	ElectricityCentsPerKWh *float64

	// PowerLossFraction is the share of generated power lost before use.
	PowerLossFraction float64

	// PumpEfficiency is the pump isentropic efficiency.
	PumpEfficiency float64

	// ExpanderEfficiency is the expander isentropic efficiency.
	ExpanderEfficiency float64
}

// DefaultInputParameters returns the calculator's initial form values.
func DefaultInputParameters() InputParameters {
	return InputParameters{
		ITLoadKW:           DefaultITLoadKW,
		Cooling:            CoolingAir,
		Location:           DefaultLocation,
		PumpEfficiency:     DefaultEfficiency,
		ExpanderEfficiency: DefaultEfficiency,
	}
}

// EffectiveSourceTempC returns SourceTempC, or the technology default.
func (in InputParameters) EffectiveSourceTempC() float64 {
	if in.SourceTempC != nil {
		return *in.SourceTempC
	}
	return in.Cooling.DefaultSourceTempC()
}

// Validate checks every field and returns all problems joined. Each problem is
// an *InputError, and the joined error matches ErrInvalidInput.
func (in InputParameters) Validate() error {
	var errs []error

	if !isFinite(in.ITLoadKW) || in.ITLoadKW <= 0 {
		errs = append(errs, invalid("it_load_kw", in.ITLoadKW, "must be a positive number"))
	}
	if !in.Cooling.Valid() {
		errs = append(errs, invalid("cooling", string(in.Cooling), "must be air, water or two-phase"))
	}
	if in.SourceTempC != nil && !isFinite(*in.SourceTempC) {
		errs = append(errs, invalid("source_temp_c", *in.SourceTempC, "must be a finite number"))
	}
	if err := checkFraction("heat_loss_fraction", in.HeatLossFraction); err != nil {
		errs = append(errs, err)
	}
	if err := checkFraction("power_loss_fraction", in.PowerLossFraction); err != nil {
		errs = append(errs, err)
	}
	if err := checkEfficiency("pump_efficiency", in.PumpEfficiency); err != nil {
		errs = append(errs, err)
	}
	if err := checkEfficiency("expander_efficiency", in.ExpanderEfficiency); err != nil {
		errs = append(errs, err)
	}
	if in.ElectricityCentsPerKWh != nil {
		if ec := *in.ElectricityCentsPerKWh; !isFinite(ec) || ec < 0 {
			errs = append(errs, invalid("electricity_cents_per_kwh", ec, "must be zero or positive"))
		}
	}

	return errors.Join(errs...)
}

func checkFraction(field string, v float64) error {
	if !isFinite(v) || v < 0 || v > 1 {
		return invalid(field, v, "must be between 0 and 1")
	}
	return nil
}

func checkEfficiency(field string, v float64) error {
	if !isFinite(v) || v <= 0 || v > 1 {
		return invalid(field, v, "must be greater than 0 and at most 1")
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
