// Package calculator runs one ORC retrofit evaluation end to end: input
// validation, thermodynamic state, cycle balance, equipment costing and
// project economics.
package calculator

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/louisconnoni/orc-calc/internal/carbon"
	"github.com/louisconnoni/orc-calc/internal/costing"
	"github.com/louisconnoni/orc-calc/internal/economics"
	"github.com/louisconnoni/orc-calc/internal/pricing"
	"github.com/louisconnoni/orc-calc/internal/thermo"
)

// Log field names.
const (
	FieldEvaluationID = "evaluation_id"
	FieldStage        = "stage"
)

// DefaultCurrency is reported when no tariff client is configured.
const DefaultCurrency = "USD"

// Sources recorded in ResolvedInputs.
const (
	SourceInput   = "input"
	SourceTariff  = "state_tariff"
	SourceGrid    = "state_grid"
	SourceDefault = "default"
)

// ResolvedInputs are the inputs after defaults and lookups were applied.
type ResolvedInputs struct {
	ITLoadKW               float64 `json:"it_load_kw" yaml:"it_load_kw"`
	Cooling                string  `json:"cooling" yaml:"cooling"`
	SourceTempC            float64 `json:"source_temp_c" yaml:"source_temp_c"`
	HeatLossFraction       float64 `json:"heat_loss_fraction" yaml:"heat_loss_fraction"`
	Location               string  `json:"location" yaml:"location"`
	ElectricityCentsPerKWh float64 `json:"electricity_cents_per_kwh" yaml:"electricity_cents_per_kwh"`
	ElectricitySource      string  `json:"electricity_source" yaml:"electricity_source"`
	Currency               string  `json:"currency" yaml:"currency"`
	GridFactor             float64 `json:"grid_factor_kg_per_kwh" yaml:"grid_factor_kg_per_kwh"`
	GridFactorSource       string  `json:"grid_factor_source" yaml:"grid_factor_source"`
	PowerLossFraction      float64 `json:"power_loss_fraction" yaml:"power_loss_fraction"`
	PumpEfficiency         float64 `json:"pump_efficiency" yaml:"pump_efficiency"`
	ExpanderEfficiency     float64 `json:"expander_efficiency" yaml:"expander_efficiency"`
}

// Result is one full evaluation. It holds no IDs or timestamps, so equal
// inputs give equal results.
type Result struct {
	Inputs    ResolvedInputs     `json:"inputs" yaml:"inputs"`
	State     thermo.State       `json:"state" yaml:"state"`
	Cycle     thermo.Performance `json:"cycle" yaml:"cycle"`
	Costs     costing.Summary    `json:"costs" yaml:"costs"`
	Economics economics.Project  `json:"economics" yaml:"economics"`
}

// Calculator evaluates retrofit scenarios. It is safe for concurrent use.
type Calculator struct {
	tariffs pricing.TariffClient
	logger  zerolog.Logger
}

// New returns a Calculator that resolves state tariffs through tariffs.
// A nil tariffs client means every location uses the default tariff.
func New(tariffs pricing.TariffClient, logger zerolog.Logger) *Calculator {
	return &Calculator{
		tariffs: tariffs,
		logger:  logger,
	}
}

// Compute validates in and runs the full pipeline. Every rejection matches
// ErrInvalidInput; no partial result is returned on error.
func (c *Calculator) Compute(in InputParameters) (*Result, error) {
	log := c.logger.With().Str(FieldEvaluationID, uuid.New().String()).Logger()

	if err := in.Validate(); err != nil {
		log.Debug().Err(err).Msg("inputs rejected")
		return nil, err
	}

	resolved := c.resolve(in, log)

	state := thermo.StateAt(resolved.SourceTempC)
	log.Debug().
		Str(FieldStage, "state").
		Float64("source_temp_c", resolved.SourceTempC).
		Float64("h2s", state.H2s).
		Float64("h3", state.H3).
		Float64("h4s", state.H4s).
		Msg("enthalpies computed")

	perf, err := thermo.Solve(thermo.CycleInputs{
		ITLoadKW:           resolved.ITLoadKW,
		HeatLossFraction:   resolved.HeatLossFraction,
		PumpEfficiency:     resolved.PumpEfficiency,
		ExpanderEfficiency: resolved.ExpanderEfficiency,
	}, state)
	if err != nil {
		log.Debug().Str(FieldStage, "cycle").Err(err).Msg("cycle rejected")
		return nil, stageError("cycle", err)
	}
	log.Debug().
		Str(FieldStage, "cycle").
		Float64("thermal_efficiency", perf.ThermalEfficiency).
		Float64("mass_flow_kg_per_s", perf.MassFlowKgPerS).
		Float64("expander_kw", perf.ExpanderPowerKW).
		Float64("pump_kw", perf.PumpPowerKW).
		Float64("net_kw", perf.NetPowerKW()).
		Msg("cycle solved")

	costs, err := costing.Estimate(perf)
	if err != nil {
		log.Debug().Str(FieldStage, "costing").Err(err).Msg("costing rejected")
		return nil, stageError("equipment", err)
	}
	for _, item := range costs.Items {
		log.Debug().
			Str(FieldStage, "costing").
			Str("item", string(item.Item)).
			Str("regime", item.Regime.String()).
			Float64("size", item.Size).
			Float64("purchase", item.Purchase).
			Msg("equipment priced")
	}

	project := economics.Evaluate(economics.Inputs{
		PowerLossFraction:      resolved.PowerLossFraction,
		ElectricityCentsPerKWh: resolved.ElectricityCentsPerKWh,
		ExpanderPowerKW:        perf.ExpanderPowerKW,
		PumpPowerKW:            perf.PumpPowerKW,
		TotalCost:              costs.Total,
		GridFactor:             resolved.GridFactor,
	})
	if project.DegeneratePayback {
		log.Warn().
			Float64("annual_savings", project.AnnualSavings).
			Msg("annual savings not positive, payback reported as 0")
	}

	log.Info().
		Str("location", resolved.Location).
		Float64("it_load_kw", resolved.ITLoadKW).
		Float64("initial_investment", project.InitialInvestment).
		Float64("payback_years", project.PaybackYears).
		Float64("carbon_savings_tonnes", project.CarbonSavingsTonnes).
		Msg("evaluation complete")

	return &Result{
		Inputs:    resolved,
		State:     state,
		Cycle:     perf,
		Costs:     costs,
		Economics: project,
	}, nil
}

// resolve applies temperature, tariff and grid factor defaults.
func (c *Calculator) resolve(in InputParameters, log zerolog.Logger) ResolvedInputs {
	r := ResolvedInputs{
		ITLoadKW:           in.ITLoadKW,
		Cooling:            string(in.Cooling),
		SourceTempC:        in.EffectiveSourceTempC(),
		HeatLossFraction:   in.HeatLossFraction,
		Location:           in.Location,
		PowerLossFraction:  in.PowerLossFraction,
		PumpEfficiency:     in.PumpEfficiency,
		ExpanderEfficiency: in.ExpanderEfficiency,
		Currency:           DefaultCurrency,
	}
	if c.tariffs != nil {
		r.Currency = c.tariffs.Currency()
	}

	switch {
	case in.ElectricityCentsPerKWh != nil:
		r.ElectricityCentsPerKWh = *in.ElectricityCentsPerKWh
		r.ElectricitySource = SourceInput
	case c.tariffs == nil:
		r.ElectricityCentsPerKWh = pricing.DefaultElectricityCentsPerKWh
		r.ElectricitySource = SourceDefault
	default:
		r.ElectricityCentsPerKWh = pricing.CentsOrDefault(c.tariffs, in.Location)
		r.ElectricitySource = SourceTariff
		if _, ok := c.tariffs.ElectricityCentsPerKWh(in.Location); !ok {
			r.ElectricitySource = SourceDefault
		}
	}
	if r.ElectricitySource == SourceDefault {
		log.Warn().
			Str("location", in.Location).
			Float64("cents_per_kwh", r.ElectricityCentsPerKWh).
			Msg("no tariff for location, using default")
	}

	if factor, ok := carbon.LookupGridFactor(in.Location); ok {
		r.GridFactor = factor
		r.GridFactorSource = SourceGrid
	} else {
		r.GridFactor = carbon.DefaultGridFactor
		r.GridFactorSource = SourceDefault
		log.Warn().
			Str("location", in.Location).
			Float64("grid_factor", r.GridFactor).
			Msg("no grid factor for location, using default")
	}

	return r
}

// IsInvalidInput reports whether err is a calculator rejection.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
