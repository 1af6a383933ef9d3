// Package cucable holds and validates the configuration of a runner
// generation run.
//
// The generator turns feature files into parallelizable test runners. Before
// any file is read or written, every input it was given passes through a
// PropertyManager, which normalizes the values, rejects malformed ones and
// reports the effective configuration.
//
// # Key Components
//
//   - PropertyManager: configuration of one run with validating setters
//   - ParallelizationMode: features (one runner per feature file) or scenarios (one per scenario)
//   - Logger: the collaborator that receives the configuration report
//   - ConfigError: the error returned by every failed validation
//
// # Validation
//
// Setters fail fast and leave the manager unchanged:
//
//   - SetParallelizationMode accepts "features" and "scenarios"
//   - SetIncludeScenarioTags and SetExcludeScenarioTags require every tag to start with '@'
//
// Mandatory properties (source runner template, generated runner directory,
// source features, generated feature directory) are only verified by
// CheckForMissingMandatoryProperties, which lists all missing ones at once.
//
// A source features value such as "login.feature:12" selects the scenario on
// line 12. A suffix that is not a number is kept as part of the path.
//
// # Example Usage
//
//	pm := cucable.NewPropertyManager(logger)
//	pm.SetSourceRunnerTemplateFile("src/test/java/RunnerTemplate.java")
//	pm.SetGeneratedRunnerDirectory("target/parallel/runners")
//	pm.SetSourceFeatures("src/test/resources/features/login.feature:12")
//	pm.SetGeneratedFeatureDirectory("target/parallel/features")
//	if err := pm.SetParallelizationMode("scenarios"); err != nil {
//	    log.Fatal(err)
//	}
//	if err := pm.CheckForMissingMandatoryProperties(); err != nil {
//	    log.Fatal(err)
//	}
//	pm.LogProperties()
//
// See the config package for loading values from files, environment and
// flags, and the logging package for a slog-backed Logger.
package cucable
