package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/louisconnoni/orc-calc/internal/calculator"
	"github.com/louisconnoni/orc-calc/internal/report"
	"github.com/louisconnoni/orc-calc/internal/scenario"
)

const keyWatch = "watch"

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [scenario-file]",
		Short: "Evaluate every scenario in a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			if a.v.GetBool(keyWatch) {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return watchScenarios(ctx, a, args[0])
			}
			return runScenarios(a, args[0])
		},
	}
	cmd.Flags().BoolP(keyWatch, "w", false, "Re-evaluate whenever the scenario file changes")
	return cmd
}

// runScenarios renders every scenario that evaluates and returns the
// failures joined.
func runScenarios(a *app, path string) error {
	f, err := scenario.Load(path)
	if err != nil {
		return err
	}

	calc := calculator.New(a.tariffs, a.logger)
	entries := make([]report.Entry, 0, len(f.Scenarios))
	var errs []error

	for _, s := range f.Scenarios {
		in, err := s.Inputs()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		res, err := calc.Compute(in)
		if err != nil {
			errs = append(errs, fmt.Errorf("scenario %q: %w", s.Name, err))
			continue
		}
		entries = append(entries, report.Entry{Name: s.Name, Result: res})
	}

	a.logger.Info().
		Str("path", path).
		Int("evaluated", len(entries)).
		Int("failed", len(errs)).
		Msg("scenarios processed")

	if len(entries) > 0 {
		if err := report.Render(a.out, a.format, entries); err != nil {
			return err
		}
	}
	return errors.Join(errs...)
}

// watchScenarios evaluates path once and again after every change until ctx
// is done. Evaluation errors are logged and do not stop the loop.
func watchScenarios(ctx context.Context, a *app, path string) error {
	changes, err := scenario.Watch(ctx, path, a.logger)
	if err != nil {
		return err
	}

	for {
		if err := runScenarios(a, path); err != nil {
			a.logger.Error().Err(err).Str("path", path).Msg("scenario evaluation failed")
		}

		if _, ok := <-changes; !ok {
			return nil
		}
		fmt.Fprintln(a.out)
	}
}
