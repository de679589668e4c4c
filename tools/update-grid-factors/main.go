// Package main regenerates internal/carbon/grid_factors.go from a state-level
// grid emission factor CSV (for example an EPA eGRID state table export).
//
// The CSV needs a header row with the columns state, name and kg_per_kwh.
// Rows keep their file order in the generated map.
//
// Usage:
//
//	go run ./tools/update-grid-factors --input egrid_states.csv [--dry-run]
//
// Flags:
//
//	--input          Path to the CSV export (required)
//	--output         Path to grid_factors.go (default: ./internal/carbon/grid_factors.go)
//	--default-state  State whose factor becomes DefaultGridFactor (default: PA)
//	--dry-run        Print the generated file instead of writing it
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/louisconnoni/orc-calc/internal/carbon"
)

const (
	minValidFactor = 0.0
	maxValidFactor = carbon.MaxPlausibleGridFactor

	// Template for generating grid_factors.go
	fileTemplate = `package carbon

import "strings"

// GridEmissionFactors maps two-letter US state codes to grid carbon intensity.
// Values are in kg CO2e per kWh of delivered electricity.
//
// Source: EPA eGRID state output emission rates
// To regenerate from a CSV export, run: go run ./tools/update-grid-factors
var GridEmissionFactors = map[string]float64{
%s}

// DefaultGridFactor is used when a state doesn't have a specific factor.
// This is the %s value.
const DefaultGridFactor = %s

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
`
)

// GridFactor is one state row.
type GridFactor struct {
	State  string
	Name   string
	Factor float64
}

func main() {
	input := pflag.String("input", "", "Path to the state grid factor CSV")
	output := pflag.String("output", "./internal/carbon/grid_factors.go", "Path to grid_factors.go")
	defaultState := pflag.String("default-state", "PA", "State whose factor becomes DefaultGridFactor")
	dryRun := pflag.Bool("dry-run", false, "Print the generated file instead of writing it")
	pflag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Error: --input is required")
		pflag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening input: %v\n", err)
		os.Exit(1)
	}
	factors, err := parseFactors(f)
	_ = f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", *input, err)
		os.Exit(1)
	}

	if err := validateFactors(factors); err != nil {
		fmt.Fprintf(os.Stderr, "Validation error: %v\n", err)
		os.Exit(1)
	}

	content, err := generateGridFactorsFile(factors, *defaultState)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating file: %v\n", err)
		os.Exit(1)
	}

	if *dryRun {
		fmt.Println("--- Dry run output ---")
		fmt.Print(string(content))
		return
	}

	if err := os.WriteFile(*output, content, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Updated %s with %d states\n", *output, len(factors))
	fmt.Println("Run 'go test ./internal/carbon/...' to verify the changes")
}

// parseFactors reads state,name,kg_per_kwh rows. Column order is taken from
// the header.
func parseFactors(r io.Reader) ([]GridFactor, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty CSV")
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, want := range []string{"state", "name", "kg_per_kwh"} {
		if _, ok := cols[want]; !ok {
			return nil, fmt.Errorf("missing column %q", want)
		}
	}

	var factors []GridFactor
	seen := make(map[string]bool)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		line, _ := cr.FieldPos(0)

		state := strings.ToUpper(strings.TrimSpace(rec[cols["state"]]))
		if len(state) != 2 {
			return nil, fmt.Errorf("line %d: state code %q is not two letters", line, state)
		}
		if seen[state] {
			return nil, fmt.Errorf("line %d: duplicate state %s", line, state)
		}
		seen[state] = true

		factor, err := strconv.ParseFloat(strings.TrimSpace(rec[cols["kg_per_kwh"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad factor for %s: %w", line, state, err)
		}

		factors = append(factors, GridFactor{
			State:  state,
			Name:   strings.TrimSpace(rec[cols["name"]]),
			Factor: factor,
		})
	}

	if len(factors) == 0 {
		return nil, fmt.Errorf("no state rows")
	}
	return factors, nil
}

// validateFactors validates that all factors are within expected range.
func validateFactors(factors []GridFactor) error {
	var problems []string

	for _, f := range factors {
		if f.Factor < minValidFactor || f.Factor > maxValidFactor {
			problems = append(problems, fmt.Sprintf(
				"%s: factor %.4f is outside valid range [%.1f, %.1f]",
				f.State, f.Factor, minValidFactor, maxValidFactor,
			))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("validation failed:\n%s", strings.Join(problems, "\n"))
	}

	return nil
}

// generateGridFactorsFile renders and gofmts grid_factors.go.
func generateGridFactorsFile(factors []GridFactor, defaultState string) ([]byte, error) {
	defaultState = strings.ToUpper(strings.TrimSpace(defaultState))

	var def *GridFactor
	var entries strings.Builder
	for i, f := range factors {
		if f.State == defaultState {
			def = &factors[i]
		}
		fmt.Fprintf(&entries, "\t%q: %s, // %s\n", f.State, formatFactor(f.Factor), f.Name)
	}
	if def == nil {
		return nil, fmt.Errorf("default state %s not in input", defaultState)
	}

	src := fmt.Sprintf(fileTemplate, entries.String(), def.Name, formatFactor(def.Factor))
	out, err := format.Source([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return out, nil
}

// formatFactor writes factors with the three decimals eGRID publishes.
func formatFactor(f float64) string {
	return strconv.FormatFloat(f, 'f', 3, 64)
}
