package linttest

import (
	"path/filepath"
	"testing"

	"github.com/go-lintpack/girlint"
)

// IntegrationTest runs all given rule sets together over a directory
// of golden archives.
type IntegrationTest struct {
	// Dir holds the *.txtar archives. Defaults to testdata/_integration.
	Dir string

	// RuleSets to run. Defaults to every registered rule set.
	RuleSets []*girlint.RuleSet
}

func defaultIntegrationTest() *IntegrationTest {
	return &IntegrationTest{
		Dir: filepath.Join("testdata", "_integration"),
	}
}

// RunIntegration runs the default integration test configuration.
func RunIntegration(t *testing.T) {
	defaultIntegrationTest().Run(t)
}

// Run executes integration tests.
func (cfg *IntegrationTest) Run(t *testing.T) {
	dir := cfg.Dir
	if dir == "" {
		dir = defaultIntegrationTest().Dir
	}
	ruleSets := cfg.RuleSets
	if ruleSets == nil {
		ruleSets = girlint.RuleSets
	}
	runArchives(t, filepath.Join(dir, "*.txtar"), ruleSets)
}
