package config_test

import (
	"context"
	"fmt"
	"log"

	"github.com/sagarc03/cucable/config"
)

func ExampleConfig_NewPropertyManager() {
	features := "features/login.feature:12"
	cfg := &config.Config{
		SourceFeatures:      &features,
		ParallelizationMode: "scenarios",
	}

	pm, err := cfg.NewPropertyManager(nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Features: %s, Lines: %v, Mode: %s\n", pm.SourceFeatures(), pm.ScenarioLineNumbers(), pm.ParallelizationMode())
	// Output: Features: features/login.feature, Lines: [12], Mode: scenarios
}

func ExampleWithContext() {
	cfg := &config.Config{DesiredNumberOfRunners: 3}

	// Store config in context
	ctx := config.WithContext(context.Background(), cfg)

	// Retrieve later (e.g., in a subcommand)
	retrieved, err := config.FromContext(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Runners: %d\n", retrieved.DesiredNumberOfRunners)
	// Output: Runners: 3
}
