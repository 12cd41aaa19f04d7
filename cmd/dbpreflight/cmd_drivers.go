package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/dbpreflight/pkg/dbcheck"
	"github.com/vertti/dbpreflight/pkg/output"
)

var driversCmd = &cobra.Command{
	Use:   "drivers",
	Short: "List the database/sql drivers registered in this binary",
	Args:  cobra.NoArgs,
	RunE:  runDriversCheck,
}

func init() {
	rootCmd.AddCommand(driversCmd)
}

func runDriversCheck(cmd *cobra.Command, _ []string) error {
	if noColor {
		output.DisableColor()
	}
	return runCheck(cmd.OutOrStdout(), &dbcheck.DriversCheck{Inspector: newInspector()})
}
