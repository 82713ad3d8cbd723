package checkers

import (
	"github.com/go-lintpack/girlint"
	"github.com/go-lintpack/girlint/gir"
)

// PropertyChecker checks a single property of a class.
type PropertyChecker struct {
	girlint.CheckerBase
	class   *gir.Class
	prop    *gir.Property
	methods gir.MethodIndex
}

// NewPropertyChecker returns a checker for prop. methods indexes the
// methods of class by name; it is built from class when nil.
func NewPropertyChecker(prop *gir.Property, class *gir.Class, methods gir.MethodIndex) *PropertyChecker {
	if methods == nil {
		methods = class.MethodIndex()
	}
	return &PropertyChecker{class: class, prop: prop, methods: methods}
}

func (c *PropertyChecker) Identifier() string {
	return c.ID(func() string {
		return "Property " + c.class.Name + ":" + c.prop.Name
	})
}

func (c *PropertyChecker) Documentable() gir.Documentable { return c.prop }

func (c *PropertyChecker) Check(warnings *girlint.Warnings) {
	prop := c.prop
	pos := prop.SourcePosition()
	id := c.Identifier()

	// Properties are held to a stricter standard than CheckDocs.
	if prop.Documentation() == nil {
		warnings.Add(girlint.NewError(pos, id, "is missing a docstring"))
	}

	if prop.IsReadable() {
		switch {
		case prop.Getter == "":
			warnings.Add(girlint.NewInfo(pos, id, "is missing a getter"))
		case !c.accessorMatches(func(m *gir.Method) string { return m.GetProperty }, prop.Getter):
			warnings.Add(girlint.NewError(pos, id, "has a getter but the getter does not have get-property"))
		}
	}
	if !prop.IsReadable() && prop.Getter != "" {
		warnings.Add(girlint.NewError(pos, id, "has a getter but it is not readable"))
	}

	if prop.IsWritable() && !prop.IsConstructOnly() {
		switch {
		case prop.Setter == "":
			warnings.Add(girlint.NewInfo(pos, id, "is missing a setter"))
		case !c.accessorMatches(func(m *gir.Method) string { return m.SetProperty }, prop.Setter):
			warnings.Add(girlint.NewError(pos, id, "has a setter but the setter does not have set-property"))
		}
	}
	if !prop.IsWritable() && prop.Setter != "" {
		warnings.Add(girlint.NewError(pos, id, "has a setter but it is not writable"))
	}
	if prop.IsConstructOnly() && prop.Setter != "" {
		warnings.Add(girlint.NewError(pos, id, "has a setter but it is construct-only"))
	}
}

// accessorMatches looks up the class method named after the property and
// reports whether its back-reference, as returned by backRef, equals
// accessor. A missing method is not an inconsistency.
func (c *PropertyChecker) accessorMatches(backRef func(*gir.Method) string, accessor string) bool {
	m, ok := c.methods[c.prop.Name]
	if !ok {
		return true
	}
	ref := backRef(m)
	return ref != "" && ref == accessor
}
