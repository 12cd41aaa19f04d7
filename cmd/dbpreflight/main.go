package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/vertti/dbpreflight/pkg/drivers"
	pexec "github.com/vertti/dbpreflight/pkg/exec"
)

// Version is set at build time via ldflags
var Version = "dev"

func init() {
	// Link the selected database/sql drivers before any check runs.
	drivers.Ready()
}

func main() {
	var execArgs []string
	os.Args, execArgs = pexec.Split(os.Args)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, ErrCheckFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	// Checks passed - exec into command if args were provided
	if err := pexec.Run(executor, execArgs); err != nil {
		fmt.Fprintf(os.Stderr, "exec: %v\n", err)
		os.Exit(1)
	}
}

var executor pexec.Executor = &pexec.RealExecutor{}

var rootCmd = &cobra.Command{
	Use:   "dbpreflight [-- command [args...]]",
	Short: "Verify database driver support linked into this binary",
	Long: `dbpreflight inspects the database/sql drivers linked into the binary and
reports whether MySQL support is present and usable. It never connects to a
database.

Exit code 0 means every required check passed, 1 means at least one failed.
Anything after "--" is exec'd once all required checks pass.

Examples:
  dbpreflight
  dbpreflight --format json
  dbpreflight --min-driver-version ">= 1.8"
  dbpreflight -- /app/server --port 8080`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runVerify,
}
