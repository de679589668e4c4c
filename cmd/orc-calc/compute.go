package main

import (
	"github.com/spf13/cobra"

	"github.com/louisconnoni/orc-calc/internal/calculator"
	"github.com/louisconnoni/orc-calc/internal/report"
)

func computeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Evaluate one retrofit from flags, ORC_* environment or config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return runCompute(a)
		},
	}
	addInputFlags(cmd)
	return cmd
}

func runCompute(a *app) error {
	in, err := inputsFromConfig(a.v)
	if err != nil {
		return err
	}

	res, err := calculator.New(a.tariffs, a.logger).Compute(in)
	if err != nil {
		return err
	}

	return report.Render(a.out, a.format, []report.Entry{{
		Name:   a.v.GetString(keyName),
		Result: res,
	}})
}
