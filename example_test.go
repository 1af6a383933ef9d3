package cucable_test

import (
	"fmt"

	"github.com/sagarc03/cucable"
)

func ExamplePropertyManager_Report() {
	pm := cucable.NewPropertyManager(nil)
	pm.SetSourceRunnerTemplateFile("RunnerTemplate.java")
	pm.SetGeneratedRunnerDirectory("target/runners")
	pm.SetSourceFeatures("features/login.feature:12")
	pm.SetGeneratedFeatureDirectory("target/features")
	_ = pm.SetIncludeScenarioTags([]string{"@smoke"})

	for _, line := range pm.Report() {
		fmt.Println(line)
	}
	// Output:
	// - sourceRunnerTemplateFile  : RunnerTemplate.java
	// - generatedRunnerDirectory  : target/runners
	// - sourceFeature(s)          : features/login.feature
	//                               with line number(s) 12
	// - include scenario tag(s)   : @smoke
	// - generatedFeatureDirectory : target/features
	// - numberOfTestRuns          : 0
}

func ExamplePropertyManager_CheckForMissingMandatoryProperties() {
	pm := cucable.NewPropertyManager(nil)
	pm.SetSourceFeatures("features")

	if err := pm.CheckForMissingMandatoryProperties(); err != nil {
		fmt.Println(err)
	}
	// Output: Properties not specified correctly in the configuration section of your pom file: [<sourceRunnerTemplateFile>, <generatedRunnerDirectory>, <generatedFeatureDirectory>]
}
