package cucable

import (
	"strings"
)

// ParallelizationMode decides how generated runners are split.
type ParallelizationMode string

const (
	// ModeFeatures generates one feature file per source feature.
	ModeFeatures ParallelizationMode = "features"
	// ModeScenarios generates one feature file per scenario.
	ModeScenarios ParallelizationMode = "scenarios"
)

func (m ParallelizationMode) IsValid() bool {
	switch m {
	case ModeFeatures, ModeScenarios:
		return true
	default:
		return false
	}
}

func (m ParallelizationMode) String() string {
	return string(m)
}

// ParseParallelizationMode maps a mode name to a ParallelizationMode.
// Matching ignores case, so "Scenarios" and "SCENARIOS" are accepted.
func ParseParallelizationMode(name string) (ParallelizationMode, error) {
	mode := ParallelizationMode(strings.ToLower(name))
	if !mode.IsValid() {
		return "", newConfigError(ErrUnknownParallelizationMode,
			"Unknown parallelizationMode '"+name+"'. Please use 'scenarios' or 'features'.")
	}
	return mode, nil
}

// TagType names the role of a scenario tag filter.
type TagType string

const (
	TagInclude TagType = "include"
	TagExclude TagType = "exclude"
)

// ValidateTags checks that every tag starts with '@'.
// It stops at the first offending tag.
func ValidateTags(tags []string, tagType TagType) error {
	for _, tag := range tags {
		if !strings.HasPrefix(tag, "@") {
			return newConfigError(ErrInvalidTag,
				"Tag '"+tag+"' of type '"+string(tagType)+"' does not start with '@'.")
		}
	}
	return nil
}

// MandatoryPolicy controls which values count as missing during
// CheckForMissingMandatoryProperties.
type MandatoryPolicy int

const (
	// UnsetOnly treats only never-assigned properties as missing.
	UnsetOnly MandatoryPolicy = iota
	// UnsetOrEmpty additionally treats empty strings as missing.
	UnsetOrEmpty
)
