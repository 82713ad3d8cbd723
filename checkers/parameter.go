package checkers

import (
	"github.com/go-lintpack/girlint"
	"github.com/go-lintpack/girlint/gir"
)

// ParameterChecker checks a single function parameter.
type ParameterChecker struct {
	girlint.CheckerBase
	param      *gir.Parameter
	parentName string
}

// NewParameterChecker returns a checker for param. parentName is the
// name of the function param belongs to, as it should be reported.
func NewParameterChecker(param *gir.Parameter, parentName string) *ParameterChecker {
	return &ParameterChecker{param: param, parentName: parentName}
}

func (c *ParameterChecker) Identifier() string {
	return c.ID(func() string {
		return "Parameter " + c.param.Name + " of " + c.parentName
	})
}

func (c *ParameterChecker) Documentable() gir.Documentable { return c.param }

func (c *ParameterChecker) Check(warnings *girlint.Warnings) {
	if c.param.Scope != gir.ScopeNotified {
		return
	}
	pos := c.param.SourcePosition()
	if c.param.Destroy == nil {
		warnings.Add(girlint.NewError(pos, c.Identifier(), "is missing destroy"))
	}
	if c.param.Closure == nil {
		warnings.Add(girlint.NewError(pos, c.Identifier(), "is missing closure"))
	}
}
