package main

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sagarc03/cucable"
	"github.com/sagarc03/cucable/config"
)

// reportedError is an error that was already printed to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and report the effective properties",
		Long: `Validate the configuration of a generation run.

The check fails when:
  - the parallelization mode is not 'features' or 'scenarios'
  - an include or exclude tag does not start with '@'
  - a mandatory property is missing (source runner template file,
    generated runner directory, source features, generated feature directory)

On success the effective properties are logged in every log level except off.`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.FromContext(ctx)
	if err != nil {
		return err
	}
	logger, err := loggerFromContext(ctx)
	if err != nil {
		return err
	}
	noColor, _ := cmd.Flags().GetBool("no-color")
	p := newPrinter(cmd.OutOrStdout(), noColor)

	runID := uuid.New()
	if logger.Enabled(cucable.LogLevelDefault) {
		logger.Slog().Info("checking configuration", "run_id", runID.String())
	}

	pm, err := cfg.NewPropertyManager(logger)
	if err != nil {
		p.Failure(err)
		return &reportedError{err: err}
	}

	if err := pm.CheckForMissingMandatoryProperties(); err != nil {
		p.Failure(err)
		return &reportedError{err: err}
	}

	pm.LogProperties()

	p.Success("Configuration is valid")
	p.Detail("run:", runID.String())
	p.Detail("parallelization mode:", pm.ParallelizationMode().String())
	p.Detail("runners:", runnersSummary(pm))
	return nil
}

func runnersSummary(pm *cucable.PropertyManager) string {
	if pm.DesiredNumberOfRunners() == 0 {
		return fmt.Sprintf("one per generated %s", unit(pm.ParallelizationMode()))
	}
	return strconv.Itoa(pm.DesiredNumberOfRunners())
}

func unit(mode cucable.ParallelizationMode) string {
	if mode == cucable.ModeScenarios {
		return "scenario"
	}
	return "feature"
}
