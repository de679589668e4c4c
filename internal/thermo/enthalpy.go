// Package thermo evaluates the ORC working-fluid state points and the cycle
// mass and power balance from regression fits against source temperature.
package thermo

// Regression coefficients for the working-fluid enthalpies (J/kg) as a
// quadratic in source temperature (°C): h = A·T² + B·T + C.
const (
	// H1 is the pump-inlet (saturated liquid) enthalpy. It is fixed by the
	// condensing temperature and does not depend on the source.
	H1 = 226989.0315067

	h2sA = 0.1026089
	h2sB = -3.3466673
	h2sC = 227006.0865709

	h3A = -0.7999140
	h3B = 826.8497709
	h3C = 402857.1775530

	h4sA = 0.6419351
	h4sB = 93.0035927
	h4sC = 423522.4435321
)

// State holds the four cycle state-point enthalpies in J/kg.
type State struct {
	// H1 is the pump inlet.
	H1 float64 `json:"h1" yaml:"h1"`
	// H2s is the isentropic pump outlet.
	H2s float64 `json:"h2s" yaml:"h2s"`
	// H3 is the expander inlet (evaporator outlet).
	H3 float64 `json:"h3" yaml:"h3"`
	// H4s is the isentropic expander outlet.
	H4s float64 `json:"h4s" yaml:"h4s"`
}

// StateAt returns the state-point enthalpies for a heat source at tempC.
// No bounds are enforced; the fits were made over roughly 20–100 °C and
// extrapolate poorly outside it.
func StateAt(tempC float64) State {
	return State{
		H1:  H1,
		H2s: quadratic(h2sA, h2sB, h2sC, tempC),
		H3:  quadratic(h3A, h3B, h3C, tempC),
		H4s: quadratic(h4sA, h4sB, h4sC, tempC),
	}
}

func quadratic(a, b, c, x float64) float64 {
	return a*(x*x) + b*x + c
}
