package girwalk

import (
	"github.com/go-lintpack/girlint/gir"
)

// Visitor interfaces.
//
// A visitor passed to Walker may implement any subset of them;
// entity kinds without a matching method are still traversed.
type (
	// ClassVisitor visits every class of a namespace.
	ClassVisitor interface {
		VisitClass(*gir.Class)
	}

	// PropertyVisitor visits every property of a class.
	// methods indexes the owning class methods by name.
	PropertyVisitor interface {
		VisitProperty(class *gir.Class, methods gir.MethodIndex, prop *gir.Property)
	}

	// MethodVisitor visits every method of a class.
	MethodVisitor interface {
		VisitMethod(class *gir.Class, method *gir.Method)
	}

	// ParameterVisitor visits every parameter of a method, excluding
	// the instance parameter. parentName is the method C identifier,
	// or its name when the identifier is unknown.
	ParameterVisitor interface {
		VisitParameter(class *gir.Class, method *gir.Method, parentName string, param *gir.Parameter)
	}
)
