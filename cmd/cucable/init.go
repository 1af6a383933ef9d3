package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/sagarc03/cucable"
	"github.com/sagarc03/cucable/config"
)

const (
	defaultRunnerDirectory  = "target/parallel/runners"
	defaultFeatureDirectory = "target/parallel/features"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file interactively",
		Long: `Create a configuration file interactively.

You will be prompted for:
  - Source runner template file
  - Source features (optionally with :<line>)
  - Generated runner and feature directories
  - Parallelization mode
  - Include and exclude scenario tags
  - Desired number of runners

The answers are validated before the file is written.`,
		Args: cobra.NoArgs,
		// The configuration may not exist yet, so it is not loaded.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: runInit,
	}
	cmd.Flags().StringP("output", "o", config.DefaultConfigName, "path of the configuration file to write")
	return cmd
}

// answers holds the raw wizard input.
type answers struct {
	template         string
	features         string
	runnerDirectory  string
	featureDirectory string
	mode             string
	includeTags      string
	excludeTags      string
	runners          string
}

func runInit(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("output")
	out := cmd.OutOrStdout()

	if _, err := os.Stat(path); err == nil {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("'%s' already exists. Overwrite it", path),
			IsConfirm: true,
		}
		if _, promptErr := prompt.Run(); promptErr != nil {
			_, _ = fmt.Fprintln(out, "Cancelled.")
			return nil //nolint:nilerr // User cancelled, not an error
		}
	}

	a, err := ask()
	if err != nil {
		return handlePromptError(out, err)
	}

	cfg, err := buildConfig(a)
	if err != nil {
		return err
	}

	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	_, _ = fmt.Fprintf(out, "Configuration written to '%s'.\n", path)
	_, _ = fmt.Fprintln(out, "Run 'cucable check' to validate it.")
	return nil
}

func ask() (answers, error) {
	var a answers
	var err error

	required := func(input string) error {
		if strings.TrimSpace(input) == "" {
			return errors.New("value is required")
		}
		return nil
	}

	steps := []struct {
		prompt promptui.Prompt
		target *string
	}{
		{promptui.Prompt{Label: "Source runner template file", Validate: required}, &a.template},
		{promptui.Prompt{Label: "Source features", Validate: required}, &a.features},
		{promptui.Prompt{Label: "Generated runner directory", Default: defaultRunnerDirectory, Validate: required}, &a.runnerDirectory},
		{promptui.Prompt{Label: "Generated feature directory", Default: defaultFeatureDirectory, Validate: required}, &a.featureDirectory},
	}
	for i := range steps {
		if *steps[i].target, err = steps[i].prompt.Run(); err != nil {
			return a, err
		}
	}

	modeSelect := promptui.Select{
		Label: "Parallelization mode",
		Items: []string{string(cucable.ModeFeatures), string(cucable.ModeScenarios)},
	}
	if _, a.mode, err = modeSelect.Run(); err != nil {
		return a, err
	}

	tagSteps := []struct {
		label   string
		tagType cucable.TagType
		target  *string
	}{
		{"Include scenario tags (comma separated)", cucable.TagInclude, &a.includeTags},
		{"Exclude scenario tags (comma separated)", cucable.TagExclude, &a.excludeTags},
	}
	for _, s := range tagSteps {
		tagType := s.tagType
		prompt := promptui.Prompt{
			Label: s.label,
			Validate: func(input string) error {
				return cucable.ValidateTags(splitTags(input), tagType)
			},
		}
		if *s.target, err = prompt.Run(); err != nil {
			return a, err
		}
	}

	runnersPrompt := promptui.Prompt{
		Label:    "Desired number of runners (0 = one per generated feature)",
		Default:  "0",
		Validate: validateRunners,
	}
	if a.runners, err = runnersPrompt.Run(); err != nil {
		return a, err
	}

	return a, nil
}

// buildConfig turns wizard answers into a Config and checks it the same
// way 'cucable check' does.
func buildConfig(a answers) (*config.Config, error) {
	runners, err := parseRunners(a.runners)
	if err != nil {
		return nil, err
	}

	template := strings.TrimSpace(a.template)
	features := strings.TrimSpace(a.features)
	runnerDirectory := strings.TrimSpace(a.runnerDirectory)
	featureDirectory := strings.TrimSpace(a.featureDirectory)

	cfg := &config.Config{
		SourceRunnerTemplateFile:  &template,
		GeneratedRunnerDirectory:  &runnerDirectory,
		SourceFeatures:            &features,
		GeneratedFeatureDirectory: &featureDirectory,
		ParallelizationMode:       a.mode,
		IncludeScenarioTags:       splitTags(a.includeTags),
		ExcludeScenarioTags:       splitTags(a.excludeTags),
		DesiredNumberOfRunners:    runners,
		Strict:                    true,
		Log:                       config.LogConfig{Level: string(cucable.LogLevelDefault), Format: "text"},
	}

	pm, err := cfg.NewPropertyManager(nil)
	if err != nil {
		return nil, err
	}
	if err := pm.CheckForMissingMandatoryProperties(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// splitTags splits a comma separated tag list, dropping empty entries.
func splitTags(input string) []string {
	var tags []string
	for _, tag := range strings.Split(input, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func validateRunners(input string) error {
	_, err := parseRunners(input)
	return err
}

func parseRunners(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid number of runners: %s (must be 0 or more)", input)
	}
	return n, nil
}

// handlePromptError handles promptui errors. Interrupt and abort cancel the
// wizard without an error.
func handlePromptError(w io.Writer, err error) error {
	if errors.Is(err, promptui.ErrInterrupt) {
		_, _ = fmt.Fprintln(w, "\nCancelled.")
		return nil
	}
	if errors.Is(err, promptui.ErrAbort) {
		_, _ = fmt.Fprintln(w, "Cancelled.")
		return nil
	}
	return err
}
