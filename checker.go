package girlint

import (
	"github.com/go-lintpack/girlint/gir"
)

// Checker is a rule set bound to a single entity.
type Checker interface {
	// Identifier returns a label for the checked entity, like "Class Foo".
	// It prefixes every warning message the rule set produces.
	Identifier() string

	// Check appends the rule set's own warnings.
	Check(warnings *Warnings)
}

// DocChecker is a Checker whose entity can carry a docstring.
type DocChecker interface {
	Checker

	// Documentable returns the documentation-bearing view of the entity.
	Documentable() gir.Documentable
}

// CheckDocs adds a SeverityWarning warning when the entity checked by c
// has no docstring.
func CheckDocs(c DocChecker, warnings *Warnings) {
	doc := c.Documentable()
	if doc.Documentation() == nil {
		warnings.Add(NewWarning(doc.SourcePosition(), c.Identifier(), "missing a docstring"))
	}
}

// CheckAll runs c.Check and then CheckDocs.
func CheckAll(c DocChecker, warnings *Warnings) {
	c.Check(warnings)
	CheckDocs(c, warnings)
}
