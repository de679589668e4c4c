package carbon

import "strings"

// GridEmissionFactors maps two-letter US state codes to grid carbon intensity.
// Values are in kg CO2e per kWh of delivered electricity.
//
// Source: EPA eGRID state output emission rates
// To regenerate from a CSV export, run: go run ./tools/update-grid-factors
var GridEmissionFactors = map[string]float64{
	"AL": 0.409, // Alabama
	"AK": 0.418, // Alaska
	"AZ": 0.388, // Arizona
	"AR": 0.485, // Arkansas
	"CA": 0.256, // California
	"CO": 0.563, // Colorado
	"CT": 0.254, // Connecticut
	"DE": 0.504, // Delaware
	"FL": 0.482, // Florida
	"GA": 0.442, // Georgia
	"HI": 0.629, // Hawaii
	"ID": 0.122, // Idaho
	"IL": 0.309, // Illinois
	"IN": 0.707, // Indiana
	"IA": 0.403, // Iowa
	"KS": 0.425, // Kansas
	"KY": 0.750, // Kentucky
	"LA": 0.421, // Louisiana
	"ME": 0.228, // Maine
	"MD": 0.386, // Maryland
	"MA": 0.383, // Massachusetts
	"MI": 0.443, // Michigan
	"MN": 0.409, // Minnesota
	"MS": 0.473, // Mississippi
	"MO": 0.671, // Missouri
	"MT": 0.452, // Montana
	"NE": 0.501, // Nebraska
	"NV": 0.442, // Nevada
	"NH": 0.167, // New Hampshire
	"NJ": 0.296, // New Jersey
	"NM": 0.608, // New Mexico
	"NY": 0.230, // New York
	"NC": 0.396, // North Carolina
	"ND": 0.595, // North Dakota
	"OH": 0.607, // Ohio
	"OK": 0.431, // Oklahoma
	"OR": 0.169, // Oregon
	"PA": 0.372, // Pennsylvania
	"RI": 0.478, // Rhode Island
	"SC": 0.271, // South Carolina
	"SD": 0.201, // South Dakota
	"TN": 0.395, // Tennessee
	"TX": 0.468, // Texas
	"UT": 0.685, // Utah
	"VT": 0.075, // Vermont
	"VA": 0.379, // Virginia
	"WA": 0.101, // Washington
	"WV": 0.788, // West Virginia
	"WI": 0.551, // Wisconsin
	"WY": 0.723, // Wyoming
}

// DefaultGridFactor is used when a state doesn't have a specific factor.
// This is the Pennsylvania value.
const DefaultGridFactor = 0.372

// GetGridFactor returns the grid carbon emission factor for the given state
// code in kg CO2e per kWh. Codes are matched case-insensitively. If the state
// is not listed in GridEmissionFactors, DefaultGridFactor is returned.
func GetGridFactor(state string) float64 {
	factor, _ := LookupGridFactor(state)
	return factor
}

// LookupGridFactor is GetGridFactor that also reports whether the state was
// found. The returned factor is DefaultGridFactor when found is false.
func LookupGridFactor(state string) (factor float64, found bool) {
	if factor, ok := GridEmissionFactors[normalizeState(state)]; ok {
		return factor, true
	}
	return DefaultGridFactor, false
}

func normalizeState(state string) string {
	return strings.ToUpper(strings.TrimSpace(state))
}
