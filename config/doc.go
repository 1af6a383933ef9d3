// Package config loads the properties of a generation run and hands them to
// a cucable.PropertyManager.
//
// The package handles YAML configuration files, environment variables, and CLI flags
// with automatic merging. Config files are checked against an embedded JSON schema
// and ambient settings are validated with go-playground/validator.
//
// # Configuration Precedence
//
// Values are loaded in this order (later sources override earlier ones):
//
//  1. Default values
//  2. Configuration file(s) - multiple files merged left-to-right
//  3. Environment variables (CUCABLE_ prefix)
//  4. CLI flags
//
// # Usage
//
//	cfg, err := config.Load([]string{"cucable.yaml"}, cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pm, err := cfg.NewPropertyManager(logger)
//	if err != nil {
//	    log.Fatal(err) // invalid tag or parallelization mode
//	}
//	if err := pm.CheckForMissingMandatoryProperties(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Environment Variables
//
// All config keys map to environment variables with CUCABLE_ prefix:
//   - source_features → CUCABLE_SOURCE_FEATURES
//   - include_scenario_tags → CUCABLE_INCLUDE_SCENARIO_TAGS (comma separated)
//   - log.level → CUCABLE_LOG_LEVEL
//
// # Configuration Structure
//
//   - source_runner_template_file, generated_runner_directory, source_features,
//     generated_feature_directory: mandatory paths, left unset when absent
//   - parallelization_mode: features or scenarios
//   - include_scenario_tags, exclude_scenario_tags: tags starting with '@'
//   - custom_placeholders: list of key/value pairs
//   - desired_number_of_runners: 0 or more
//   - strict: treat empty mandatory paths as missing
//   - log: level (default, compact, minimal, off) and format (text, json)
package config
