package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/cucable"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cucable.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
source_runner_template_file: Template.java
generated_runner_directory: target/runners
source_features: features/login.feature:3
generated_feature_directory: target/features
include_scenario_tags:
  - "@include1"
  - "@include2"
desired_number_of_runners: 2
`

func TestRun_CheckValidConfig(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, []string{"check", "--config", writeConfig(t, validConfig)})
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "- sourceRunnerTemplateFile  : Template.java")
	assert.Contains(t, output, "- sourceFeature(s)          : features/login.feature")
	assert.Contains(t, output, "                              with line number(s) 3")
	assert.Contains(t, output, "- include scenario tag(s)   : @include1, @include2")
	assert.Contains(t, output, "- desiredNumberOfRunners    : 2")
	assert.Contains(t, output, "✓ Configuration is valid")
	assert.Contains(t, output, "runners: 2")
	assert.Contains(t, output, "checking configuration")
	assert.Contains(t, output, "run_id=")
}

func TestRun_CheckFlagsOverrideConfig(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, []string{
		"check",
		"--config", writeConfig(t, validConfig),
		"--parallelization-mode", "scenarios",
		"--runners", "0",
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "parallelization mode: scenarios")
	assert.Contains(t, out.String(), "runners: one per generated scenario")
	assert.Contains(t, out.String(), "- numberOfTestRuns          : 0")
}

func TestRun_CheckMinimalLogLevelShowsReport(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, []string{"check", "--config", writeConfig(t, validConfig), "--log-level", "minimal"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "- sourceRunnerTemplateFile  : Template.java")
	assert.NotContains(t, out.String(), "checking configuration")
	assert.Contains(t, out.String(), "✓ Configuration is valid")
}

func TestRun_CheckOffLogLevelHidesReport(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, []string{"check", "--config", writeConfig(t, validConfig), "--log-level", "off"})
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "sourceRunnerTemplateFile")
	assert.Contains(t, out.String(), "✓ Configuration is valid")
}

func TestRun_CheckMissingProperties(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, []string{"check", "--config", writeConfig(t, "source_features: my.feature\n")})
	require.Error(t, err)

	var reported *reportedError
	require.True(t, errors.As(err, &reported))
	assert.ErrorIs(t, err, cucable.ErrMissingProperties)
	assert.Contains(t, out.String(), "✗ Properties not specified correctly in the configuration section of your pom file: "+
		"[<sourceRunnerTemplateFile>, <generatedRunnerDirectory>, <generatedFeatureDirectory>]")
}

func TestRun_CheckInvalidMode(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, []string{"check", "--config", writeConfig(t, validConfig), "--parallelization-mode", "unknown"})
	require.Error(t, err)
	assert.EqualError(t, err, "Unknown parallelizationMode 'unknown'. Please use 'scenarios' or 'features'.")
}

func TestRun_CheckInvalidTag(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, []string{"check", "--config", writeConfig(t, validConfig), "--exclude-tags", "wip"})
	require.Error(t, err)
	assert.EqualError(t, err, "Tag 'wip' of type 'exclude' does not start with '@'.")
}

func TestRun_CheckSchemaError(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, []string{"check", "--config", writeConfig(t, "unknown_key: 1\n")})
	require.Error(t, err)

	var reported *reportedError
	assert.False(t, errors.As(err, &reported))
	assert.Contains(t, err.Error(), "does not match schema")
}

func TestRun_Help(t *testing.T) {
	out := &bytes.Buffer{}

	require.NoError(t, run(out, []string{"--help"}))
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "check")
	assert.Contains(t, out.String(), "init")
}

func TestRun_UnknownFlag(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, []string{"check", "--not-a-flag"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag")
}
