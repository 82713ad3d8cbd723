// Package checkers provides the girlint rule sets.
package checkers

import (
	"github.com/go-lintpack/girlint"
)

var collection = &girlint.CheckerCollection{
	URL: "https://github.com/go-lintpack/girlint",
}

func init() {
	var info girlint.CheckerInfo

	info = girlint.CheckerInfo{Name: "class", Kind: girlint.KindClass}
	info.Tags = []string{"docs"}
	info.Summary = "Detects undocumented classes"
	info.Details = "A class without a docstring is reported twice: once as an error by this rule set and once by the generic docstring check."
	info.Before = `<class name="Widget"/>`
	info.After = `
<class name="Widget">
  <doc xml:space="preserve">A widget.</doc>
</class>`
	addChecker(info, func(t *girlint.Target) girlint.DocChecker {
		return NewClassChecker(t.Class)
	})

	info = girlint.CheckerInfo{Name: "property", Kind: girlint.KindProperty}
	info.Tags = []string{"docs", "accessors"}
	info.Summary = "Detects undocumented properties and inconsistent accessors"
	info.Details = `Readable properties should declare a getter and writable ones a setter.
Construct-only and non-writable properties must not declare a setter,
and non-readable properties must not declare a getter. When a method
named after the property exists, its get-property/set-property
annotation must match the declared accessor.`
	info.Before = `<property name="label" readable="0" getter="get_label"/>`
	info.After = `
<property name="label" getter="get_label">
  <doc xml:space="preserve">Text shown on the widget.</doc>
</property>`
	addChecker(info, func(t *girlint.Target) girlint.DocChecker {
		return NewPropertyChecker(t.Property, t.Class, t.Methods)
	})

	info = girlint.CheckerInfo{Name: "method", Kind: girlint.KindMethod}
	info.Tags = []string{"docs", "async"}
	info.Summary = "Detects async methods without a finish function"
	info.Details = "A method taking an async-scoped callback is expected to declare glib:finish-func."
	info.Before = `
<method name="load">
  <parameters>
    <parameter name="callback" scope="async"/>
  </parameters>
</method>`
	info.After = `
<method name="load" glib:finish-func="load_finish">
  <doc xml:space="preserve">Starts loading asynchronously.</doc>
  <parameters>
    <parameter name="callback" scope="async">
      <doc xml:space="preserve">Called once loading finishes.</doc>
    </parameter>
  </parameters>
</method>`
	addChecker(info, func(t *girlint.Target) girlint.DocChecker {
		return NewMethodChecker(t.Method, t.Class)
	})

	info = girlint.CheckerInfo{Name: "parameter", Kind: girlint.KindParameter}
	info.Tags = []string{"docs", "callbacks"}
	info.Summary = "Detects notified callbacks without closure or destroy notifier"
	info.Before = `<parameter name="func" scope="notified"/>`
	info.After = `
<parameter name="func" scope="notified" closure="2" destroy="3">
  <doc xml:space="preserve">Called for every item.</doc>
</parameter>`
	addChecker(info, func(t *girlint.Target) girlint.DocChecker {
		return NewParameterChecker(t.Parameter, t.ParentName)
	})
}

func addChecker(info girlint.CheckerInfo, construct func(*girlint.Target) girlint.DocChecker) {
	collection.AddChecker(&info, construct)
}
