package carbon

// CalculateAvoidedTonnes converts displaced power into avoided emissions.
//
// Parameters:
//   - energyKW: Average displaced electrical power (kW)
//   - gridFactor: Grid carbon intensity (kg CO2e/kWh)
//   - hours: Operating hours
//
// Returns metric tons CO2e. The result is unrounded.
func CalculateAvoidedTonnes(energyKW, gridFactor, hours float64) float64 {
	// kW × kg/kWh × h = kg
	carbonKg := energyKW * gridFactor * hours

	return carbonKg * TonnesPerKg
}
