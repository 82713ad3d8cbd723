// Package girlint checks GObject-Introspection metadata against
// documentation and API-contract rules.
//
// Rule sets live in the checkers package and register themselves with
// CheckerCollection.AddChecker. A Linter walks a namespace, runs every
// enabled rule set over the matching entities and returns the collected
// warnings ranked by severity.
package girlint

// CheckerDoc holds checker structured documentation.
type CheckerDoc struct {
	// Summary is a short one sentence description.
	// Should not end with a period.
	Summary string

	// Details extends summary with additional info. Optional.
	Details string

	// Before is a GIR snippet that violates the rule.
	Before string

	// After is a GIR snippet that complies to the rule.
	After string

	// Note is an optional caution message or advice.
	Note string
}

// Kind is the entity variant a rule set checks.
type Kind int

const (
	KindClass Kind = iota
	KindProperty
	KindMethod
	KindParameter
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindProperty:
		return "property"
	case KindMethod:
		return "method"
	case KindParameter:
		return "parameter"
	default:
		return "unknown"
	}
}

// CheckerInfo describes a registered rule set.
type CheckerInfo struct {
	CheckerDoc

	// Name is the rule set name used by -enable and -disable.
	Name string

	// Kind selects the entities the rule set is run against.
	Kind Kind

	// Tags is a list of labels that can be used to enable or disable
	// a group of rule sets.
	Tags []string

	// Collection is the collection the rule set was registered in.
	Collection *CheckerCollection
}
