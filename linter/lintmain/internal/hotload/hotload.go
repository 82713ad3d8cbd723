package hotload

import (
	"fmt"
	"plugin"

	"github.com/go-lintpack/girlint"
)

// RuleSetsFromDylib loads rule sets provided by a dynamic library found under path.
// The library registers them from its init functions.
//
// The returned slice must replace the caller's rule set list,
// since there will be new entries there.
func RuleSetsFromDylib(ruleSets []*girlint.RuleSet, path string) ([]*girlint.RuleSet, error) {
	if path == "" {
		return ruleSets, nil // Nothing to do
	}
	before := len(ruleSets)
	// Open plugin only for side-effects (init functions).
	if _, err := plugin.Open(path); err != nil {
		return ruleSets, err
	}
	if len(girlint.RuleSets) == before {
		return ruleSets, fmt.Errorf("loaded plugin doesn't provide any girlint rule sets")
	}
	return girlint.RuleSets, nil
}
