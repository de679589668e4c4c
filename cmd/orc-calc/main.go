// Command orc-calc estimates the payback and carbon savings of retrofitting a
// data center with an organic Rankine cycle that recovers IT waste heat.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "orc-calc",
		Short:        "Data center ORC waste-heat payback calculator",
		SilenceUsage: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.String(keyConfig, "", "YAML config file with flag values")
	pf.String(keyLogLevel, "warn", "Log level (trace, debug, info, warn, error)")
	pf.String(keyLogFormat, "console", "Log format (console, json)")
	pf.StringP(keyOutput, "o", "text", "Output format (text, json, yaml)")

	rootCmd.AddCommand(computeCmd())
	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(statesCmd())

	return rootCmd
}
