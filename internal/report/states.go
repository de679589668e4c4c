package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// StateRow is one location choice with its lookup values.
type StateRow struct {
	Code        string  `json:"code" yaml:"code"`
	Name        string  `json:"name" yaml:"name"`
	CentsPerKWh float64 `json:"cents_per_kwh" yaml:"cents_per_kwh"`
	GridFactor  float64 `json:"grid_factor_kg_per_kwh" yaml:"grid_factor_kg_per_kwh"`
}

// RenderStates writes the location table in the given format.
func RenderStates(w io.Writer, format Format, rows []StateRow) error {
	switch format {
	case FormatText:
		p := message.NewPrinter(language.English)
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "Code\tState\tTariff (¢/kWh)\tGrid factor (kg CO2/kWh)")
		for _, r := range rows {
			fmt.Fprint(tw, p.Sprintf("%s\t%s\t%.2f\t%.3f\n", r.Code, r.Name, r.CentsPerKWh, r.GridFactor))
		}
		return tw.Flush()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("encoding YAML states: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
