// Package report renders calculator results as text, JSON or YAML.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/louisconnoni/orc-calc/internal/calculator"
)

// Format selects the output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Result labels, as shown on the calculator form.
const (
	LabelPayback    = "Payback Period (years)"
	LabelInvestment = "Initial Investment"
	LabelEnergy     = "Energy Savings (kW)"
	LabelCarbon     = "Carbon Savings (Metric Tons CO2/year)"
)

// Entry is one named result.
type Entry struct {
	Name   string             `json:"name" yaml:"name"`
	Result *calculator.Result `json:"result" yaml:"result"`
}

// ParseFormat accepts text, json or yaml (case-insensitive, "yml" allowed).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// Render writes entries to w in the given format.
func Render(w io.Writer, format Format, entries []Entry) error {
	switch format {
	case FormatText:
		return renderText(w, entries)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encoding JSON report: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encoding YAML report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func renderText(w io.Writer, entries []Entry) error {
	p := message.NewPrinter(language.English)

	for i, e := range entries {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := renderEntry(w, p, e); err != nil {
			return fmt.Errorf("rendering %q: %w", e.Name, err)
		}
	}
	return nil
}

func renderEntry(w io.Writer, p *message.Printer, e Entry) error {
	r := e.Result
	if r == nil {
		return fmt.Errorf("missing result")
	}
	in := r.Inputs

	var b strings.Builder
	if e.Name != "" {
		fmt.Fprintf(&b, "== %s ==\n", e.Name)
	}
	b.WriteString(p.Sprintf("IT load %.0f kW, %s cooling at %.1f °C, %s (%.2f ¢/kWh, %.3f kg CO2/kWh)\n",
		in.ITLoadKW, calculator.CoolingTechnology(in.Cooling).Label(), in.SourceTempC,
		in.Location, in.ElectricityCentsPerKWh, in.GridFactor))
	b.WriteString("\n")

	payback := fmt.Sprintf("%.2f", r.Economics.PaybackYears)
	if r.Economics.DegeneratePayback {
		payback += " (net savings not positive)"
	}
	fmt.Fprintf(&b, "%s: %s\n", LabelPayback, payback)
	b.WriteString(p.Sprintf("%s: $%.2f\n", LabelInvestment, r.Economics.InitialInvestment))
	b.WriteString(p.Sprintf("%s: %.2f\n", LabelEnergy, r.Economics.EnergySavingsKW))
	b.WriteString(p.Sprintf("%s: %.2f\n", LabelCarbon, r.Economics.CarbonSavingsTonnes))
	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Equipment\tSize\tRegime\tPurchase ($)\tBare module ($)\t")
	for _, c := range r.Costs.Items {
		fmt.Fprint(tw, p.Sprintf("%s\t%.2f %s\t%s\t%.2f\t%.2f\t\n",
			c.Item, c.Size, c.Unit, c.Regime, c.Purchase, c.BareModule))
	}
	fmt.Fprint(tw, p.Sprintf("working fluid\t\t\t%.2f\t\t\n", r.Costs.WorkingFluid))
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := io.WriteString(w, p.Sprintf("\nNet cycle output: %.2f kW\nTotal installed cost: $%.2f (%s)\n",
		r.Cycle.NetPowerKW(), r.Costs.Total, r.Inputs.Currency))
	return err
}
