package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/manifoldco/promptui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/cucable"
)

func TestSplitTags(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{input: "", want: nil},
		{input: "@a", want: []string{"@a"}},
		{input: " @a , @b ,, ", want: []string{"@a", "@b"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, splitTags(tt.input))
		})
	}
}

func TestParseRunners(t *testing.T) {
	n, err := parseRunners("")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = parseRunners(" 4 ")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	assert.Error(t, validateRunners("-1"))
	assert.Error(t, validateRunners("four"))
}

func validAnswers() answers {
	return answers{
		template:         "Template.java",
		features:         "features/login.feature:8",
		runnerDirectory:  defaultRunnerDirectory,
		featureDirectory: defaultFeatureDirectory,
		mode:             "scenarios",
		includeTags:      "@smoke, @login",
		runners:          "3",
	}
}

func TestBuildConfig(t *testing.T) {
	cfg, err := buildConfig(validAnswers())
	require.NoError(t, err)

	assert.Equal(t, "Template.java", *cfg.SourceRunnerTemplateFile)
	assert.Equal(t, "features/login.feature:8", *cfg.SourceFeatures)
	assert.Equal(t, defaultRunnerDirectory, *cfg.GeneratedRunnerDirectory)
	assert.Equal(t, defaultFeatureDirectory, *cfg.GeneratedFeatureDirectory)
	assert.Equal(t, "scenarios", cfg.ParallelizationMode)
	assert.Equal(t, []string{"@smoke", "@login"}, cfg.IncludeScenarioTags)
	assert.Empty(t, cfg.ExcludeScenarioTags)
	assert.Equal(t, 3, cfg.DesiredNumberOfRunners)
	assert.True(t, cfg.Strict)
}

func TestBuildConfig_Errors(t *testing.T) {
	t.Run("blank template is missing", func(t *testing.T) {
		a := validAnswers()
		a.template = "   "
		_, err := buildConfig(a)
		assert.ErrorIs(t, err, cucable.ErrMissingProperties)
	})

	t.Run("invalid tag", func(t *testing.T) {
		a := validAnswers()
		a.excludeTags = "wip"
		_, err := buildConfig(a)
		assert.EqualError(t, err, "Tag 'wip' of type 'exclude' does not start with '@'.")
	})

	t.Run("invalid runners", func(t *testing.T) {
		a := validAnswers()
		a.runners = "-2"
		_, err := buildConfig(a)
		assert.Error(t, err)
	})
}

func TestHandlePromptError(t *testing.T) {
	other := errors.New("boom")

	tests := []struct {
		name    string
		err     error
		wantErr error
		wantOut string
	}{
		{name: "interrupt", err: promptui.ErrInterrupt, wantOut: "\nCancelled.\n"},
		{name: "abort", err: promptui.ErrAbort, wantOut: "Cancelled.\n"},
		{name: "other error", err: other, wantErr: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}

			err := handlePromptError(buf, tt.err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantOut, buf.String())
		})
	}
}
