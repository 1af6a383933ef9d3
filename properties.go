package cucable

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Names of the mandatory properties, in the order they are checked and reported.
const (
	PropSourceRunnerTemplateFile  = "sourceRunnerTemplateFile"
	PropGeneratedRunnerDirectory  = "generatedRunnerDirectory"
	PropSourceFeatures            = "sourceFeatures"
	PropGeneratedFeatureDirectory = "generatedFeatureDirectory"
)

// PropertyManager holds the configuration of one generation run.
//
// Setters validate eagerly and leave the manager unchanged on error.
// Mandatory properties are only checked by CheckForMissingMandatoryProperties.
// A PropertyManager is not safe for concurrent mutation.
type PropertyManager struct {
	logger Logger
	policy MandatoryPolicy

	// nil means the property was never set; an empty string is a set value.
	sourceRunnerTemplateFile  *string
	generatedRunnerDirectory  *string
	sourceFeatures            *string
	generatedFeatureDirectory *string

	scenarioLineNumbers    []int
	parallelizationMode    ParallelizationMode
	includeScenarioTags    []string
	excludeScenarioTags    []string
	customPlaceholders     map[string]string
	desiredNumberOfRunners int
}

// Option configures a PropertyManager.
type Option func(*PropertyManager)

// WithMandatoryPolicy selects whether empty strings count as missing.
// The default is UnsetOnly.
func WithMandatoryPolicy(policy MandatoryPolicy) Option {
	return func(pm *PropertyManager) {
		pm.policy = policy
	}
}

// NewPropertyManager creates a manager that reports through logger.
func NewPropertyManager(logger Logger, opts ...Option) *PropertyManager {
	pm := &PropertyManager{
		logger:              logger,
		policy:              UnsetOnly,
		scenarioLineNumbers: []int{},
		parallelizationMode: ModeFeatures,
		includeScenarioTags: []string{},
		excludeScenarioTags: []string{},
		customPlaceholders:  map[string]string{},
	}
	for _, opt := range opts {
		opt(pm)
	}
	return pm
}

func (pm *PropertyManager) SourceRunnerTemplateFile() string {
	return deref(pm.sourceRunnerTemplateFile)
}

func (pm *PropertyManager) SetSourceRunnerTemplateFile(path string) {
	pm.sourceRunnerTemplateFile = &path
}

func (pm *PropertyManager) GeneratedRunnerDirectory() string {
	return deref(pm.generatedRunnerDirectory)
}

func (pm *PropertyManager) SetGeneratedRunnerDirectory(dir string) {
	pm.generatedRunnerDirectory = &dir
}

func (pm *PropertyManager) GeneratedFeatureDirectory() string {
	return deref(pm.generatedFeatureDirectory)
}

func (pm *PropertyManager) SetGeneratedFeatureDirectory(dir string) {
	pm.generatedFeatureDirectory = &dir
}

func (pm *PropertyManager) SourceFeatures() string {
	return deref(pm.sourceFeatures)
}

// SetSourceFeatures sets the source feature path. A trailing ":<n>" with a
// non-negative integer n is split off into the scenario line numbers. Any
// other suffix is kept as part of the path.
func (pm *PropertyManager) SetSourceFeatures(raw string) {
	path, lineNumbers := splitLineNumbers(raw)
	pm.sourceFeatures = &path
	pm.scenarioLineNumbers = lineNumbers
}

func splitLineNumbers(raw string) (string, []int) {
	idx := strings.LastIndex(raw, ":")
	if idx < 0 {
		return raw, []int{}
	}
	n, err := strconv.Atoi(raw[idx+1:])
	if err != nil || n < 0 {
		return raw, []int{}
	}
	return raw[:idx], []int{n}
}

// ScenarioLineNumbers returns the line numbers parsed from the source
// features. It is never nil.
func (pm *PropertyManager) ScenarioLineNumbers() []int {
	return slices.Clone(pm.scenarioLineNumbers)
}

func (pm *PropertyManager) HasValidScenarioLineNumbers() bool {
	return len(pm.scenarioLineNumbers) > 0
}

func (pm *PropertyManager) ParallelizationMode() ParallelizationMode {
	return pm.parallelizationMode
}

func (pm *PropertyManager) SetParallelizationMode(name string) error {
	mode, err := ParseParallelizationMode(name)
	if err != nil {
		return err
	}
	pm.parallelizationMode = mode
	return nil
}

func (pm *PropertyManager) IncludeScenarioTags() []string {
	return slices.Clone(pm.includeScenarioTags)
}

func (pm *PropertyManager) SetIncludeScenarioTags(tags []string) error {
	if err := ValidateTags(tags, TagInclude); err != nil {
		return err
	}
	pm.includeScenarioTags = cloneTags(tags)
	return nil
}

func (pm *PropertyManager) ExcludeScenarioTags() []string {
	return slices.Clone(pm.excludeScenarioTags)
}

func (pm *PropertyManager) SetExcludeScenarioTags(tags []string) error {
	if err := ValidateTags(tags, TagExclude); err != nil {
		return err
	}
	pm.excludeScenarioTags = cloneTags(tags)
	return nil
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return slices.Clone(tags)
}

func (pm *PropertyManager) CustomPlaceholders() map[string]string {
	return maps.Clone(pm.customPlaceholders)
}

func (pm *PropertyManager) SetCustomPlaceholders(placeholders map[string]string) {
	if placeholders == nil {
		pm.customPlaceholders = map[string]string{}
		return
	}
	pm.customPlaceholders = maps.Clone(placeholders)
}

func (pm *PropertyManager) DesiredNumberOfRunners() int {
	return pm.desiredNumberOfRunners
}

func (pm *PropertyManager) SetDesiredNumberOfRunners(n int) {
	pm.desiredNumberOfRunners = n
}

// CheckForMissingMandatoryProperties returns an ErrMissingProperties error
// naming every mandatory property that is missing under the manager's policy.
func (pm *PropertyManager) CheckForMissingMandatoryProperties() error {
	mandatory := []struct {
		name  string
		value *string
	}{
		{PropSourceRunnerTemplateFile, pm.sourceRunnerTemplateFile},
		{PropGeneratedRunnerDirectory, pm.generatedRunnerDirectory},
		{PropSourceFeatures, pm.sourceFeatures},
		{PropGeneratedFeatureDirectory, pm.generatedFeatureDirectory},
	}

	var missing []string
	for _, p := range mandatory {
		if pm.isMissing(p.value) {
			missing = append(missing, p.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	bracketed := make([]string, len(missing))
	for i, name := range missing {
		bracketed[i] = "<" + name + ">"
	}
	err := newConfigError(ErrMissingProperties,
		"Properties not specified correctly in the configuration section of your pom file: ["+
			strings.Join(bracketed, ", ")+"]")
	err.Properties = missing
	return err
}

func (pm *PropertyManager) isMissing(value *string) bool {
	if value == nil {
		return true
	}
	return pm.policy == UnsetOrEmpty && *value == ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
