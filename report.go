package cucable

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const nullValue = "null"

// lineNumberIndent aligns continuation lines with the values above them.
var lineNumberIndent = strings.Repeat(" ", len(reportLine("", "")))

// Report returns the effective configuration as report lines.
// Labels are padded so that the colons line up.
func (pm *PropertyManager) Report() []string {
	lines := []string{
		reportLine("sourceRunnerTemplateFile", orNull(pm.sourceRunnerTemplateFile)),
		reportLine("generatedRunnerDirectory", orNull(pm.generatedRunnerDirectory)),
		reportLine("sourceFeature(s)", orNull(pm.sourceFeatures)),
	}

	if len(pm.scenarioLineNumbers) > 0 {
		numbers := make([]string, len(pm.scenarioLineNumbers))
		for i, n := range pm.scenarioLineNumbers {
			numbers[i] = strconv.Itoa(n)
		}
		lines = append(lines, lineNumberIndent+"with line number(s) "+strings.Join(numbers, ", "))
	}

	if len(pm.includeScenarioTags) > 0 {
		lines = append(lines, reportLine("include scenario tag(s)", strings.Join(pm.includeScenarioTags, ", ")))
	}
	if len(pm.excludeScenarioTags) > 0 {
		lines = append(lines, reportLine("exclude scenario tag(s)", strings.Join(pm.excludeScenarioTags, ", ")))
	}

	lines = append(lines, reportLine("generatedFeatureDirectory", orNull(pm.generatedFeatureDirectory)))

	if len(pm.customPlaceholders) > 0 {
		lines = append(lines, strings.TrimRight(reportLine("custom placeholder(s)", ""), " "))
		keys := make([]string, 0, len(pm.customPlaceholders))
		for k := range pm.customPlaceholders {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			lines = append(lines, "  "+k+" => "+pm.customPlaceholders[k])
		}
	}

	if pm.desiredNumberOfRunners == 0 {
		lines = append(lines, reportLine("numberOfTestRuns", "0"))
	} else {
		lines = append(lines, reportLine("desiredNumberOfRunners", strconv.Itoa(pm.desiredNumberOfRunners)))
	}

	return lines
}

// LogProperties writes the report through the logger. The report is shown
// in every log level except off.
func (pm *PropertyManager) LogProperties() {
	if pm.logger == nil {
		return
	}
	for _, line := range pm.Report() {
		pm.logger.Log(line, SeverityInfo, LogLevelDefault, LogLevelCompact, LogLevelMinimal)
	}
}

func reportLine(label, value string) string {
	return fmt.Sprintf("- %-26s: %s", label, value)
}

func orNull(s *string) string {
	if s == nil {
		return nullValue
	}
	return *s
}
