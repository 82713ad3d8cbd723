package checkers

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-lintpack/girlint"
	"github.com/go-lintpack/girlint/gir"
)

// wrapExample embeds a documentation snippet of the given kind into a
// repository where every enclosing entity is documented.
func wrapExample(kind girlint.Kind, snippet string) string {
	switch kind {
	case girlint.KindProperty, girlint.KindMethod:
		snippet = `<class name="Demo"><doc>Demo.</doc>` + snippet + `</class>`
	case girlint.KindParameter:
		snippet = `<class name="Demo"><doc>Demo.</doc>` +
			`<method name="run"><doc>Runs.</doc><parameters>` + snippet + `</parameters></method>` +
			`</class>`
	}
	return `<repository version="1.2" xmlns:glib="http://www.gtk.org/introspection/glib/1.0">` +
		`<namespace name="Demo" version="1.0">` + snippet + `</namespace></repository>`
}

func runExample(t *testing.T, rs *girlint.RuleSet, snippet string) girlint.Warnings {
	t.Helper()
	repo, err := gir.Load(strings.NewReader(wrapExample(rs.Info.Kind, snippet)))
	require.NoError(t, err)
	l := &girlint.Linter{RuleSets: []*girlint.RuleSet{rs}}
	warnings, err := l.Run(context.Background(), repo.Namespace())
	require.NoError(t, err)
	return warnings
}

func TestDocExamples(t *testing.T) {
	for _, rs := range girlint.RuleSets {
		rs := rs
		t.Run(rs.Info.Name, func(t *testing.T) {
			if warnings := runExample(t, rs, rs.Info.Before); len(warnings) == 0 {
				t.Errorf("before example produced no warnings")
			}
			for _, w := range runExample(t, rs, rs.Info.After) {
				t.Errorf("after example: unexpected %s", w)
			}
		})
	}
}
