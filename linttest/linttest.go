// Package linttest runs golden tests for girlint rule sets.
package linttest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-lintpack/girlint"
)

// TestCheckers runs golden tests over all registered rule sets.
//
// Every rule set is run alone over the archives found in
// testdata/<rule set name>/*.txtar. See goldenFile for the archive format.
func TestCheckers(t *testing.T) {
	for _, rs := range girlint.RuleSets {
		rs := rs
		t.Run(rs.Info.Name, func(t *testing.T) {
			if testing.CoverMode() == "" {
				t.Parallel()
			}
			pattern := filepath.Join("testdata", rs.Info.Name, "*.txtar")
			runArchives(t, pattern, []*girlint.RuleSet{rs})
		})
	}
}

func runArchives(t *testing.T, pattern string, ruleSets []*girlint.RuleSet) {
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("list test files: %v", err)
	}
	if len(files) == 0 {
		t.Fatalf("no test files match %s", pattern)
	}

	for _, filename := range files {
		filename := filename
		t.Run(filepath.Base(filename), func(t *testing.T) {
			golden, err := readGoldenFile(filename)
			if err != nil {
				t.Fatal(err)
			}
			checkGolden(t, golden, ruleSets)
		})
	}
}

func checkGolden(t *testing.T, golden *goldenFile, ruleSets []*girlint.RuleSet) {
	l := &girlint.Linter{
		RuleSets:         ruleSets,
		IgnoreDeprecated: golden.ignoreDeprecated,
	}
	var have []string
	for i := range golden.repo.Namespaces {
		warnings, err := l.Run(context.Background(), &golden.repo.Namespaces[i])
		if err != nil {
			t.Fatalf("run: %v", err)
		}
		for _, w := range warnings {
			have = append(have, w.String())
		}
	}

	if diff := cmp.Diff(golden.want, have); diff != "" {
		t.Errorf("%s: output mismatch (-want +have):\n%s", golden.filename, diff)
	}
}
