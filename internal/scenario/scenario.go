// Package scenario loads retrofit scenarios from YAML. Values use the same
// units as the calculator form: losses and efficiencies are percentages.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/louisconnoni/orc-calc/internal/calculator"
)

// ErrNoScenarios is returned when a file defines no scenarios.
var ErrNoScenarios = errors.New("no scenarios defined")

// File is the top-level document.
type File struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is one named evaluation. Nil fields take the form defaults.
type Scenario struct {
	Name                      string   `yaml:"name"`
	ITLoadKW                  *float64 `yaml:"it_load_kw,omitempty"`
	Cooling                   string   `yaml:"cooling,omitempty"`
	SourceTempC               *float64 `yaml:"source_temp_c,omitempty"`
	HeatLossPercent           *float64 `yaml:"heat_loss_percent,omitempty"`
	Location                  string   `yaml:"location,omitempty"`
	ElectricityCentsPerKWh    *float64 `yaml:"electricity_cents_per_kwh,omitempty"`
	PowerLossPercent          *float64 `yaml:"power_loss_percent,omitempty"`
	PumpEfficiencyPercent     *float64 `yaml:"pump_efficiency_percent,omitempty"`
	ExpanderEfficiencyPercent *float64 `yaml:"expander_efficiency_percent,omitempty"`
}

// Load reads scenarios from a YAML file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a scenario document. Unknown keys are rejected so typos do
// not silently fall back to defaults.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoScenarios
		}
		return nil, fmt.Errorf("parsing scenario YAML: %w", err)
	}
	if len(f.Scenarios) == 0 {
		return nil, ErrNoScenarios
	}

	seen := make(map[string]int, len(f.Scenarios))
	for i := range f.Scenarios {
		s := &f.Scenarios[i]
		s.Name = strings.TrimSpace(s.Name)
		if s.Name == "" {
			s.Name = fmt.Sprintf("scenario-%d", i+1)
		}
		if prev, ok := seen[s.Name]; ok {
			return nil, fmt.Errorf("scenario %q defined twice (entries %d and %d)", s.Name, prev+1, i+1)
		}
		seen[s.Name] = i
	}

	return &f, nil
}

// Inputs converts the scenario to calculator inputs. Range checks are left
// to the calculator; only the cooling label is parsed here.
func (s Scenario) Inputs() (calculator.InputParameters, error) {
	in := calculator.DefaultInputParameters()

	if s.ITLoadKW != nil {
		in.ITLoadKW = *s.ITLoadKW
	}
	if s.Cooling != "" {
		cooling, err := calculator.ParseCoolingTechnology(s.Cooling)
		if err != nil {
			return calculator.InputParameters{}, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		in.Cooling = cooling
	}
	if s.SourceTempC != nil {
		t := *s.SourceTempC
		in.SourceTempC = &t
	}
	if s.HeatLossPercent != nil {
		in.HeatLossFraction = Fraction(*s.HeatLossPercent)
	}
	if s.Location != "" {
		in.Location = strings.ToUpper(strings.TrimSpace(s.Location))
	}
	if s.ElectricityCentsPerKWh != nil {
		ec := *s.ElectricityCentsPerKWh
		in.ElectricityCentsPerKWh = &ec
	}
	if s.PowerLossPercent != nil {
		in.PowerLossFraction = Fraction(*s.PowerLossPercent)
	}
	if s.PumpEfficiencyPercent != nil {
		in.PumpEfficiency = Fraction(*s.PumpEfficiencyPercent)
	}
	if s.ExpanderEfficiencyPercent != nil {
		in.ExpanderEfficiency = Fraction(*s.ExpanderEfficiencyPercent)
	}

	return in, nil
}

// Fraction converts a percentage to a 0-1 fraction.
func Fraction(percent float64) float64 {
	return percent / 100
}
