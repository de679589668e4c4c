package main

import (
	"github.com/spf13/cobra"

	"github.com/louisconnoni/orc-calc/internal/carbon"
	"github.com/louisconnoni/orc-calc/internal/pricing"
	"github.com/louisconnoni/orc-calc/internal/report"
)

func statesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "states",
		Short: "List state codes with electricity tariff and grid emission factor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return report.RenderStates(a.out, a.format, stateRows(a))
		},
	}
}

func stateRows(a *app) []report.StateRow {
	codes := a.tariffs.States()
	rows := make([]report.StateRow, 0, len(codes))
	for _, code := range codes {
		name, _ := a.tariffs.StateName(code)
		cents := pricing.CentsOrDefault(a.tariffs, code)
		factor, ok := carbon.LookupGridFactor(code)
		if !ok {
			a.logger.Warn().Str("state", code).Msg("no grid factor for tariff state, using default")
			factor = carbon.DefaultGridFactor
		}
		rows = append(rows, report.StateRow{
			Code:        code,
			Name:        name,
			CentsPerKWh: cents,
			GridFactor:  factor,
		})
	}
	return rows
}
