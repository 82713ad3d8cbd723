package checkers

import (
	"github.com/go-lintpack/girlint"
	"github.com/go-lintpack/girlint/gir"
)

// ClassChecker checks a single class.
type ClassChecker struct {
	girlint.CheckerBase
	class *gir.Class
}

func NewClassChecker(class *gir.Class) *ClassChecker {
	return &ClassChecker{class: class}
}

func (c *ClassChecker) Identifier() string {
	return c.ID(func() string {
		return "Class " + c.class.Name
	})
}

func (c *ClassChecker) Documentable() gir.Documentable { return c.class }

func (c *ClassChecker) Check(warnings *girlint.Warnings) {
	if c.class.Documentation() == nil {
		warnings.Add(girlint.NewError(c.class.SourcePosition(), c.Identifier(), "is missing docs"))
	}
}
