package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vertti/dbpreflight/pkg/dbcheck"
	"github.com/vertti/dbpreflight/pkg/output"
)

var (
	configFile       string
	format           string
	noColor          bool
	verbose          bool
	minDriverVersion string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ./.dbpreflight.yaml or /etc/dbpreflight/.dbpreflight.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each probe to stderr")
	rootCmd.Flags().StringVar(&format, "format", formatText, "report format: text or json")
	rootCmd.Flags().StringVar(&minDriverVersion, "min-driver-version", "", `semver constraint for the primary driver, e.g. ">= 1.8"`)
}

func runVerify(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if s.NoColor {
		output.DisableColor()
	}

	logger := newLogger(cmd.ErrOrStderr(), s.Verbose)
	defer func() { _ = logger.Sync() }()
	if s.File != "" {
		logger.Debug("loaded config", zap.String("file", s.File))
	}

	c := &dbcheck.Check{
		Profile:   s.Profile,
		Inspector: newInspector(),
		Logger:    logger,
	}
	report := c.Run()

	switch s.Format {
	case formatJSON:
		if err := output.WriteJSON(cmd.OutOrStdout(), report); err != nil {
			return err
		}
	default:
		output.PrintReport(cmd.OutOrStdout(), report)
	}

	if !report.Passed {
		logger.Debug("verification failed", zap.Int("failures", report.Failures()))
		return ErrCheckFailed
	}
	return nil
}
