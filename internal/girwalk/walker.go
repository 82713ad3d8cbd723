// Package girwalk traverses a GIR namespace top-down.
package girwalk

import (
	"github.com/go-lintpack/girlint/gir"
)

// Walker visits classes, then each class's properties, then its methods
// and their parameters.
type Walker struct {
	// IgnoreDeprecated skips deprecated classes, properties and methods
	// together with everything below them. Parameters carry no
	// deprecation state of their own and are never skipped.
	IgnoreDeprecated bool
}

// Walk visits every class of ns in document order.
// Callers that shard work by class use WalkClass instead.
func (w Walker) Walk(ns *gir.Namespace, v interface{}) {
	for i := range ns.Classes {
		w.WalkClass(&ns.Classes[i], v)
	}
}

// WalkClass visits class and its members.
func (w Walker) WalkClass(class *gir.Class, v interface{}) {
	if w.skip(&class.Info) {
		return
	}
	if cv, ok := v.(ClassVisitor); ok {
		cv.VisitClass(class)
	}

	if pv, ok := v.(PropertyVisitor); ok && len(class.Properties) != 0 {
		methods := class.MethodIndex()
		for i := range class.Properties {
			prop := &class.Properties[i]
			if w.skip(&prop.Info) {
				continue
			}
			pv.VisitProperty(class, methods, prop)
		}
	}

	mv, _ := v.(MethodVisitor)
	parv, _ := v.(ParameterVisitor)
	if mv == nil && parv == nil {
		return
	}
	for i := range class.Methods {
		method := &class.Methods[i]
		if w.skip(&method.Info) {
			continue
		}
		if mv != nil {
			mv.VisitMethod(class, method)
		}
		if parv == nil {
			continue
		}
		parent := ParentName(method)
		for j := range method.Parameters {
			parv.VisitParameter(class, method, parent, &method.Parameters[j])
		}
	}
}

func (w Walker) skip(info *gir.Info) bool {
	return w.IgnoreDeprecated && info.IsDeprecated()
}

// ParentName returns the name parameters of method are reported under.
func ParentName(method *gir.Method) string {
	if method.CIdentifier != "" {
		return method.CIdentifier
	}
	return method.Name
}
