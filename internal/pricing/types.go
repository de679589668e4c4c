package pricing

// tariffTable represents the embedded electricity tariff file.
// Tariffs are listed in the order the calculator presents states.
type tariffTable struct {
	Currency string        `json:"currency"`
	Unit     string        `json:"unit"`
	Tariffs  []tariffEntry `json:"tariffs"`
}

// tariffEntry is one state row in the tariff file.
type tariffEntry struct {
	State       string  `json:"state"`
	Name        string  `json:"name"`
	CentsPerKWh float64 `json:"cents_per_kwh"`
}

// tariff is the distilled in-memory form of a tariffEntry.
type tariff struct {
	Name        string
	CentsPerKWh float64
}
