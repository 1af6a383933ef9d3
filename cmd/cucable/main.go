package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sagarc03/cucable/config"
)

var version = "dev"

func newRootCmd(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Version: version,
		Use:     "cucable",
		Short:   "Prepare parallel test runners from feature files",
		Long: `Cucable validates the configuration of a runner generation run and
reports the effective properties before any runner is generated.

Properties are read from cucable.yaml (or --config files), CUCABLE_*
environment variables and flags, in increasing order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configFiles, _ := cmd.Flags().GetStringArray("config")
			cfg, err := config.Load(configFiles, cmd.Flags())
			if err != nil {
				return err
			}
			noColor, _ := cmd.Flags().GetBool("no-color")
			logger := setupLogging(cmd.OutOrStdout(), cfg.Log, noColor)

			ctx := config.WithContext(cmd.Context(), cfg)
			cmd.SetContext(withLogger(ctx, logger))
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)

	flags := rootCmd.PersistentFlags()
	flags.StringArrayP("config", "c", nil, "config file path, repeatable (default: ./cucable.yaml)")
	flags.String("source-runner-template-file", "", "runner template file (env: CUCABLE_SOURCE_RUNNER_TEMPLATE_FILE)")
	flags.String("generated-runner-directory", "", "directory for generated runners (env: CUCABLE_GENERATED_RUNNER_DIRECTORY)")
	flags.String("source-features", "", "feature file or directory, optionally with :<line> (env: CUCABLE_SOURCE_FEATURES)")
	flags.String("generated-feature-directory", "", "directory for generated features (env: CUCABLE_GENERATED_FEATURE_DIRECTORY)")
	flags.String("parallelization-mode", "", "features or scenarios (default: features, env: CUCABLE_PARALLELIZATION_MODE)")
	flags.StringSlice("include-tags", nil, "scenario tags to include, each starting with @")
	flags.StringSlice("exclude-tags", nil, "scenario tags to exclude, each starting with @")
	flags.Int("runners", 0, "desired number of runners (default: one per generated feature)")
	flags.Bool("strict", false, "treat empty mandatory properties as missing")
	flags.String("log-level", "", "default, compact, minimal or off (env: CUCABLE_LOG_LEVEL)")
	flags.String("log-format", "", "text or json (env: CUCABLE_LOG_FORMAT)")
	flags.Bool("no-color", false, "disable colored output")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newInitCmd())

	return rootCmd
}

func run(out io.Writer, args []string) error {
	rootCmd := newRootCmd(out)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
