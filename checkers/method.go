package checkers

import (
	"github.com/go-lintpack/girlint"
	"github.com/go-lintpack/girlint/gir"
)

// MethodChecker checks a single method of a class.
type MethodChecker struct {
	girlint.CheckerBase
	class  *gir.Class
	method *gir.Method
}

func NewMethodChecker(method *gir.Method, class *gir.Class) *MethodChecker {
	return &MethodChecker{class: class, method: method}
}

func (c *MethodChecker) Identifier() string {
	return c.ID(func() string {
		if c.method.CIdentifier != "" {
			return "Method " + c.method.CIdentifier
		}
		return "Method " + c.class.Name + "." + c.method.Name
	})
}

func (c *MethodChecker) Documentable() gir.Documentable { return c.method }

func (c *MethodChecker) Check(warnings *girlint.Warnings) {
	if c.isAsync() && c.method.FinishFunc == "" {
		warnings.Add(girlint.NewInfo(c.method.SourcePosition(), c.Identifier(), "is missing a finish-func"))
	}
}

// isAsync reports whether the method completes asynchronously.
// Destroy notifiers also run after the call returns, but they are scoped
// as notified, so only async-scoped callbacks count here.
func (c *MethodChecker) isAsync() bool {
	if c.method.FinishFunc != "" {
		return true
	}
	for i := range c.method.Parameters {
		if c.method.Parameters[i].Scope == gir.ScopeAsync {
			return true
		}
	}
	return false
}
