package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/louisconnoni/orc-calc/internal/calculator"
	"github.com/louisconnoni/orc-calc/internal/pricing"
	"github.com/louisconnoni/orc-calc/internal/report"
	"github.com/louisconnoni/orc-calc/internal/scenario"
)

// EnvPrefix prefixes every environment override, e.g. ORC_IT_LOAD_KW.
const EnvPrefix = "ORC"

// Config keys. Flags, env vars and config-file keys share these names.
const (
	keyConfig    = "config"
	keyLogLevel  = "log-level"
	keyLogFormat = "log-format"
	keyOutput    = "output"

	keyName               = "name"
	keyITLoad             = "it-load-kw"
	keyCooling            = "cooling"
	keySourceTemp         = "source-temp-c"
	keyHeatLoss           = "heat-loss-percent"
	keyLocation           = "location"
	keyElectricity        = "electricity-cents-per-kwh"
	keyPowerLoss          = "power-loss-percent"
	keyPumpEfficiency     = "pump-efficiency-percent"
	keyExpanderEfficiency = "expander-efficiency-percent"
)

// app is the per-invocation wiring shared by all commands.
type app struct {
	v       *viper.Viper
	logger  zerolog.Logger
	format  report.Format
	tariffs *pricing.Client
	out     io.Writer
}

func newApp(cmd *cobra.Command) (*app, error) {
	v, err := newViper(cmd.Flags())
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), v.GetString(keyLogLevel), v.GetString(keyLogFormat))
	if err != nil {
		return nil, err
	}

	format, err := report.ParseFormat(v.GetString(keyOutput))
	if err != nil {
		return nil, err
	}

	tariffs, err := pricing.NewClient(logger)
	if err != nil {
		return nil, fmt.Errorf("loading state tariffs: %w", err)
	}

	if path := v.ConfigFileUsed(); path != "" {
		logger.Debug().Str("path", path).Msg("config file loaded")
	}

	return &app{
		v:       v,
		logger:  logger,
		format:  format,
		tariffs: tariffs,
		out:     cmd.OutOrStdout(),
	}, nil
}

// newViper binds flags, ORC_* environment variables and the optional
// config file, in that order of precedence.
func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	return v, nil
}

// newLogger builds the root logger. Console output is human-readable;
// json emits one object per line.
func newLogger(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "console":
		w = zerolog.ConsoleWriter{Out: w}
	case "json":
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q (want console or json)", format)
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// addInputFlags registers the calculator form fields on cmd.
func addInputFlags(cmd *cobra.Command) {
	defaults := calculator.DefaultInputParameters()
	f := cmd.Flags()

	f.String(keyName, "", "Label for this evaluation in the report")
	f.Float64(keyITLoad, defaults.ITLoadKW, "Data center IT load (kW)")
	f.String(keyCooling, string(defaults.Cooling), "Cooling technology (air, water, two-phase)")
	f.Float64(keySourceTemp, 0, "Source temperature (°C); defaults by cooling technology")
	f.Float64(keyHeatLoss, 0, "Heat loss (%)")
	f.String(keyLocation, defaults.Location, "Two-letter US state code")
	f.Float64(keyElectricity, 0, "Electricity cost (cents/kWh); defaults to the state tariff")
	f.Float64(keyPowerLoss, 0, "Power loss (%)")
	f.Float64(keyPumpEfficiency, defaults.PumpEfficiency*100, "Pump isentropic efficiency (%)")
	f.Float64(keyExpanderEfficiency, defaults.ExpanderEfficiency*100, "Expander isentropic efficiency (%)")
}

// inputsFromConfig reads the form fields from v. Percentages are converted
// to fractions; optional overrides are only applied when explicitly set.
func inputsFromConfig(v *viper.Viper) (calculator.InputParameters, error) {
	in := calculator.DefaultInputParameters()
	var err error

	if in.ITLoadKW, err = floatValue(v, keyITLoad); err != nil {
		return in, err
	}
	if in.Cooling, err = calculator.ParseCoolingTechnology(v.GetString(keyCooling)); err != nil {
		return in, err
	}
	if v.IsSet(keySourceTemp) {
		t, err := floatValue(v, keySourceTemp)
		if err != nil {
			return in, err
		}
		in.SourceTempC = &t
	}
	in.Location = strings.ToUpper(strings.TrimSpace(v.GetString(keyLocation)))
	if v.IsSet(keyElectricity) {
		ec, err := floatValue(v, keyElectricity)
		if err != nil {
			return in, err
		}
		in.ElectricityCentsPerKWh = &ec
	}

	percents := []struct {
		key string
		dst *float64
	}{
		{keyHeatLoss, &in.HeatLossFraction},
		{keyPowerLoss, &in.PowerLossFraction},
		{keyPumpEfficiency, &in.PumpEfficiency},
		{keyExpanderEfficiency, &in.ExpanderEfficiency},
	}
	for _, p := range percents {
		pct, err := floatValue(v, p.key)
		if err != nil {
			return in, err
		}
		*p.dst = scenario.Fraction(pct)
	}

	return in, nil
}

func floatValue(v *viper.Viper, key string) (float64, error) {
	raw := strings.TrimSpace(v.GetString(key))
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", key, raw)
	}
	return f, nil
}
