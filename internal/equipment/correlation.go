// Package equipment estimates ORC equipment purchase and bare-module costs
// from capacity using Turton-style log-quadratic cost correlations.
package equipment

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonPositiveSize is returned when a correlation is asked to price a zero,
// negative or non-finite capacity.
var ErrNonPositiveSize = errors.New("equipment size must be positive and finite")

// Item identifies a piece of ORC equipment.
type Item string

// Equipment items priced by the estimator.
const (
	ItemPump       Item = "pump"
	ItemExpander   Item = "expander"
	ItemEvaporator Item = "evaporator"
	ItemCondenser  Item = "condenser"
	ItemGenerator  Item = "generator"
)

// Regime says which branch of a correlation priced a given size.
type Regime int

// Correlation branches.
const (
	// RegimeInRange uses the log-quadratic fit directly.
	RegimeInRange Regime = iota
	// RegimeBelow scales the fit at Min down by (size/Min)^N.
	RegimeBelow
	// RegimeAbove scales the fit at Max up by (size/Max)^N.
	RegimeAbove
	// RegimePowerLaw marks items priced by a direct power law with no range.
	RegimePowerLaw
)

// String returns the lower-case regime name.
func (r Regime) String() string {
	switch r {
	case RegimeInRange:
		return "in_range"
	case RegimeBelow:
		return "below_min"
	case RegimeAbove:
		return "above_max"
	case RegimePowerLaw:
		return "power_law"
	default:
		return fmt.Sprintf("regime(%d)", int(r))
	}
}

// MarshalText encodes the regime by name for JSON and YAML reports.
func (r Regime) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Correlation is the cost model for one equipment item:
//
//	log10(Cp0) = K0 + K1·log10(S) + K2·log10(S)²   for Min ≤ S ≤ Max
//
// with power-law extrapolation outside the fitted range.
type Correlation struct {
	Item Item

	// K0, K1, K2 are the log-quadratic fit coefficients.
	K0, K1, K2 float64

	// Fbm is the bare-module factor (installation, material and pressure).
	Fbm float64

	// Fbm0 is the bare-module factor at base material and ambient pressure.
	Fbm0 float64

	// Min and Max bound the fitted capacity range, in the item's size unit.
	Min, Max float64

	// N is the extrapolation exponent applied outside [Min, Max].
	N float64

	// Unit names the capacity unit (kW or m²) for reports.
	Unit string
}

// Cost is a priced equipment item.
type Cost struct {
	Item   Item    `json:"item" yaml:"item"`
	Size   float64 `json:"size" yaml:"size"`
	Unit   string  `json:"unit" yaml:"unit"`
	Regime Regime  `json:"regime" yaml:"regime"`

	// Purchase is the purchase cost Cp0 in base-year dollars.
	Purchase float64 `json:"purchase_cost" yaml:"purchase_cost"`

	// BareModule is Cp0 × Fbm.
	BareModule float64 `json:"bare_module_cost" yaml:"bare_module_cost"`

	// BareModuleBase is Cp0 × Fbm0.
	BareModuleBase float64 `json:"bare_module_base_cost" yaml:"bare_module_base_cost"`
}

// Classify returns the branch that prices size. The range is closed, so a size
// exactly on either bound is in range.
func (c Correlation) Classify(size float64) Regime {
	switch {
	case size < c.Min:
		return RegimeBelow
	case size > c.Max:
		return RegimeAbove
	default:
		return RegimeInRange
	}
}

// PurchaseCost returns Cp0 for size along with the branch used.
func (c Correlation) PurchaseCost(size float64) (float64, Regime, error) {
	if !(size > 0) || math.IsInf(size, 1) {
		return 0, 0, fmt.Errorf("%s size %v: %w", c.Item, size, ErrNonPositiveSize)
	}

	regime := c.Classify(size)
	switch regime {
	case RegimeBelow:
		return c.fit(c.Min) * math.Pow(size/c.Min, c.N), regime, nil
	case RegimeAbove:
		return c.fit(c.Max) * math.Pow(size/c.Max, c.N), regime, nil
	default:
		return c.fit(size), regime, nil
	}
}

// Estimate prices size and applies both bare-module factors.
func (c Correlation) Estimate(size float64) (Cost, error) {
	cp0, regime, err := c.PurchaseCost(size)
	if err != nil {
		return Cost{}, err
	}
	return Cost{
		Item:           c.Item,
		Size:           size,
		Unit:           c.Unit,
		Regime:         regime,
		Purchase:       cp0,
		BareModule:     cp0 * c.Fbm,
		BareModuleBase: cp0 * c.Fbm0,
	}, nil
}

// fit evaluates the log-quadratic inside the fitted range.
func (c Correlation) fit(size float64) float64 {
	l := math.Log10(size)
	return math.Pow(10, c.K0+c.K1*l+c.K2*(l*l))
}
