// Package carbon provides grid carbon intensity data for US states and the
// avoided-emission arithmetic used to credit on-site ORC generation.
package carbon

const (
	// HoursPerYear assumes continuous year-round operation (24 × 365).
	HoursPerYear = 24.0 * 365.0

	// TonnesPerKg converts kilograms CO2e to metric tons CO2e.
	TonnesPerKg = 0.001

	// MaxPlausibleGridFactor is the upper bound for a state grid factor in
	// kg CO2e/kWh. Coal-only generation sits near 1.0; nothing real exceeds 2.0.
	MaxPlausibleGridFactor = 2.0
)
