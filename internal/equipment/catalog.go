package equipment

import (
	"fmt"
	"math"
)

// Shared shell-and-tube heat exchanger coefficients, used for both the
// evaporator and the condenser.
const (
	shellTubeK0   = 4.3247
	shellTubeK1   = -0.3030
	shellTubeK2   = 0.1634
	shellTubeFbm  = 6.27
	shellTubeFbm0 = 3.29
	shellTubeMin  = 10.0
	shellTubeMax  = 1000.0
	shellTubeN    = 0.6
)

var (
	// Pump is a centrifugal pump, sized by shaft power in kW.
	Pump = Correlation{
		Item: ItemPump,
		K0:   3.4771,
		K1:   0.1350,
		K2:   0.1438,
		Fbm:  5.535,
		Fbm0: 3.240,
		Min:  1,
		Max:  100,
		N:    0.7,
		Unit: "kW",
	}

	// Expander is an axial turbine, sized by shaft power in kW.
	Expander = Correlation{
		Item: ItemExpander,
		K0:   2.2476,
		K1:   1.4965,
		K2:   -0.1618,
		Fbm:  11.6,
		Fbm0: 1.0,
		Min:  100,
		Max:  1500,
		N:    0.6,
		Unit: "kW",
	}

	// Evaporator is a shell-and-tube exchanger, sized by area in m².
	Evaporator = shellAndTube(ItemEvaporator)

	// Condenser is a shell-and-tube exchanger, sized by area in m².
	Condenser = shellAndTube(ItemCondenser)
)

func shellAndTube(item Item) Correlation {
	return Correlation{
		Item: item,
		K0:   shellTubeK0,
		K1:   shellTubeK1,
		K2:   shellTubeK2,
		Fbm:  shellTubeFbm,
		Fbm0: shellTubeFbm0,
		Min:  shellTubeMin,
		Max:  shellTubeMax,
		N:    shellTubeN,
		Unit: "m²",
	}
}

// Generator cost model: Cp0 = GeneratorCoeff × W(kW)^GeneratorExp.
const (
	GeneratorCoeff = 2447.0
	GeneratorExp   = 0.49
	GeneratorFbm   = 3.5
	GeneratorFbm0  = 1.0
)

// Working-fluid inventory charge: the fill mass is WorkingFluidChargeFactor
// seconds of design mass flow, priced at WorkingFluidPricePerKg.
const (
	WorkingFluidChargeFactor = 300.0
	WorkingFluidPricePerKg   = 12.4
)

// Generator prices the electrical generator for the expander output. It uses a
// direct power law with no fitted range; zero output costs nothing.
func Generator(expanderKW float64) (Cost, error) {
	if expanderKW < 0 || math.IsNaN(expanderKW) || math.IsInf(expanderKW, 0) {
		return Cost{}, fmt.Errorf("%s size %v: %w", ItemGenerator, expanderKW, ErrNonPositiveSize)
	}
	cp0 := GeneratorCoeff * math.Pow(expanderKW, GeneratorExp)
	return Cost{
		Item:           ItemGenerator,
		Size:           expanderKW,
		Unit:           "kW",
		Regime:         RegimePowerLaw,
		Purchase:       cp0,
		BareModule:     cp0 * GeneratorFbm,
		BareModuleBase: cp0 * GeneratorFbm0,
	}, nil
}

// WorkingFluid returns the cost of the initial working-fluid charge for a
// design mass flow in kg/s.
func WorkingFluid(massFlowKgPerS float64) (float64, error) {
	if massFlowKgPerS < 0 || math.IsNaN(massFlowKgPerS) || math.IsInf(massFlowKgPerS, 0) {
		return 0, fmt.Errorf("working fluid mass flow %v: %w", massFlowKgPerS, ErrNonPositiveSize)
	}
	return WorkingFluidChargeFactor * massFlowKgPerS * WorkingFluidPricePerKg, nil
}
