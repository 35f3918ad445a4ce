//go:build integration

// Package integration runs the API feature suite using Godog/Cucumber.
package integration

import (
	"flag"
	"os"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/finance-tracker/ledger/test/integration/steps"
)

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

// TestFeatures runs all feature files.
func TestFeatures(t *testing.T) {
	flag.Parse()

	opts := godog.Options{
		Format:      "pretty",
		Paths:       []string{"features"},
		Output:      colors.Colored(os.Stdout),
		Tags:        tags,
		Concurrency: 1, // Scenarios share one database
		Randomize:   0,
		Strict:      true,
		TestingT:    t,
	}

	// Allow tag filtering via environment variable
	if envTags := os.Getenv("GODOG_TAGS"); envTags != "" {
		opts.Tags = envTags
	}

	suite := godog.TestSuite{
		Name:                 "ledger-api",
		ScenarioInitializer:  steps.InitializeScenario,
		TestSuiteInitializer: steps.InitializeTestSuite,
		Options:              &opts,
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
