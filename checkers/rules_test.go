package checkers

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-lintpack/girlint"
	"github.com/go-lintpack/girlint/gir"
)

func intp(v int) *int { return &v }

func falsep() *gir.Bool {
	b := gir.Bool(false)
	return &b
}

var documented = gir.Info{Doc: &gir.Doc{Text: "Documented."}}

func checkAll(c girlint.DocChecker) []string {
	var warnings girlint.Warnings
	girlint.CheckAll(c, &warnings)
	var out []string
	for _, w := range warnings {
		out = append(out, w.String())
	}
	return out
}

func TestClassChecker(t *testing.T) {
	pos := &gir.SourcePosition{Filename: "a.h", Line: "7"}
	tests := []struct {
		name  string
		class gir.Class
		want  []string
	}{
		{
			name:  "documented",
			class: gir.Class{Info: documented, Name: "Foo"},
		},
		{
			name:  "undocumented",
			class: gir.Class{Info: gir.Info{Position: pos}, Name: "Foo"},
			want: []string{
				"ERROR a.h:7: Class Foo is missing docs",
				"WARNING a.h:7: Class Foo missing a docstring",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			have := checkAll(NewClassChecker(&tt.class))
			if diff := cmp.Diff(tt.want, have); diff != "" {
				t.Errorf("(-want +have):\n%s", diff)
			}
		})
	}
}

func TestMethodChecker(t *testing.T) {
	class := &gir.Class{Name: "Foo"}
	asyncParam := gir.Parameter{Name: "cb", Scope: gir.ScopeAsync}
	tests := []struct {
		name   string
		method gir.Method
		want   []string
	}{
		{
			name:   "sync",
			method: gir.Method{Info: documented, Name: "bar", CIdentifier: "foo_bar"},
		},
		{
			name:   "async callback without finish func",
			method: gir.Method{Info: documented, Name: "bar", CIdentifier: "foo_bar", Parameters: []gir.Parameter{asyncParam}},
			want:   []string{"INFO: Method foo_bar is missing a finish-func"},
		},
		{
			name:   "async callback with finish func",
			method: gir.Method{Info: documented, Name: "bar", FinishFunc: "bar_finish", Parameters: []gir.Parameter{asyncParam}},
		},
		{
			name:   "finish func only",
			method: gir.Method{Info: documented, Name: "bar", FinishFunc: "bar_finish"},
		},
		{
			name: "notified callback is not async",
			method: gir.Method{Info: documented, Name: "bar", Parameters: []gir.Parameter{
				{Name: "cb", Scope: gir.ScopeNotified},
			}},
		},
		{
			name:   "identifier falls back to class and name",
			method: gir.Method{Name: "bar", Parameters: []gir.Parameter{asyncParam}},
			want: []string{
				"INFO: Method Foo.bar is missing a finish-func",
				"WARNING: Method Foo.bar missing a docstring",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			have := checkAll(NewMethodChecker(&tt.method, class))
			if diff := cmp.Diff(tt.want, have); diff != "" {
				t.Errorf("(-want +have):\n%s", diff)
			}
		})
	}
}

func TestParameterChecker(t *testing.T) {
	tests := []struct {
		name  string
		param gir.Parameter
		want  []string
	}{
		{
			name:  "plain",
			param: gir.Parameter{Info: documented, Name: "p"},
		},
		{
			name:  "notified complete",
			param: gir.Parameter{Info: documented, Name: "p", Scope: gir.ScopeNotified, Closure: intp(1), Destroy: intp(2)},
		},
		{
			name:  "notified without destroy",
			param: gir.Parameter{Info: documented, Name: "p", Scope: gir.ScopeNotified, Closure: intp(1)},
			want:  []string{"ERROR: Parameter p of foo_bar is missing destroy"},
		},
		{
			name:  "notified without closure",
			param: gir.Parameter{Info: documented, Name: "p", Scope: gir.ScopeNotified, Destroy: intp(0)},
			want:  []string{"ERROR: Parameter p of foo_bar is missing closure"},
		},
		{
			name:  "notified without both",
			param: gir.Parameter{Name: "p", Scope: gir.ScopeNotified},
			want: []string{
				"ERROR: Parameter p of foo_bar is missing destroy",
				"ERROR: Parameter p of foo_bar is missing closure",
				"WARNING: Parameter p of foo_bar missing a docstring",
			},
		},
		{
			name:  "async without both",
			param: gir.Parameter{Info: documented, Name: "p", Scope: gir.ScopeAsync},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			have := checkAll(NewParameterChecker(&tt.param, "foo_bar"))
			if diff := cmp.Diff(tt.want, have); diff != "" {
				t.Errorf("(-want +have):\n%s", diff)
			}
		})
	}
}

func TestPropertyChecker(t *testing.T) {
	tests := []struct {
		name    string
		prop    gir.Property
		methods []gir.Method
		want    []string
	}{
		{
			name: "readable with getter",
			prop: gir.Property{Info: documented, Name: "p", Getter: "get_p"},
		},
		{
			name: "readable without getter",
			prop: gir.Property{Info: documented, Name: "p"},
			want: []string{"INFO: Property Foo:p is missing a getter"},
		},
		{
			name: "not readable with getter",
			prop: gir.Property{Info: documented, Name: "p", Readable: falsep(), Getter: "get_p"},
			want: []string{"ERROR: Property Foo:p has a getter but it is not readable"},
		},
		{
			name: "writable without setter",
			prop: gir.Property{Info: documented, Name: "p", Readable: falsep(), Writable: true},
			want: []string{"INFO: Property Foo:p is missing a setter"},
		},
		{
			name: "not writable with setter",
			prop: gir.Property{Info: documented, Name: "p", Readable: falsep(), Setter: "set_p"},
			want: []string{"ERROR: Property Foo:p has a setter but it is not writable"},
		},
		{
			name: "construct-only with setter",
			prop: gir.Property{Info: documented, Name: "p", Readable: falsep(), Writable: true, ConstructOnly: true, Setter: "set_p"},
			want: []string{"ERROR: Property Foo:p has a setter but it is construct-only"},
		},
		{
			name: "construct-only without setter",
			prop: gir.Property{Info: documented, Name: "p", Readable: falsep(), Writable: true, ConstructOnly: true},
		},
		{
			name: "non-writable construct-only with setter",
			prop: gir.Property{Info: documented, Name: "p", Readable: falsep(), ConstructOnly: true, Setter: "set_p"},
			want: []string{
				"ERROR: Property Foo:p has a setter but it is not writable",
				"ERROR: Property Foo:p has a setter but it is construct-only",
			},
		},
		{
			name:    "same-named method with matching back-references",
			prop:    gir.Property{Info: documented, Name: "p", Writable: true, Getter: "get_p", Setter: "set_p"},
			methods: []gir.Method{{Name: "p", GetProperty: "get_p", SetProperty: "set_p"}},
		},
		{
			name:    "same-named method without back-references",
			prop:    gir.Property{Info: documented, Name: "p", Writable: true, Getter: "get_p", Setter: "set_p"},
			methods: []gir.Method{{Name: "p"}},
			want: []string{
				"ERROR: Property Foo:p has a getter but the getter does not have get-property",
				"ERROR: Property Foo:p has a setter but the setter does not have set-property",
			},
		},
		{
			name:    "only the first same-named method is consulted",
			prop:    gir.Property{Info: documented, Name: "p", Getter: "get_p"},
			methods: []gir.Method{{Name: "p", GetProperty: "other"}, {Name: "p", GetProperty: "get_p"}},
			want:    []string{"ERROR: Property Foo:p has a getter but the getter does not have get-property"},
		},
		{
			name:    "accessor methods are not looked up by accessor name",
			prop:    gir.Property{Info: documented, Name: "p", Getter: "get_p"},
			methods: []gir.Method{{Name: "get_p"}},
		},
		{
			name: "everything wrong",
			prop: gir.Property{
				Info:     gir.Info{Position: &gir.SourcePosition{Filename: "foo.c", Line: "3"}},
				Name:     "p",
				Readable: falsep(),
				Getter:   "get_p",
				Setter:   "set_p",
			},
			want: []string{
				"ERROR foo.c:3: Property Foo:p is missing a docstring",
				"ERROR foo.c:3: Property Foo:p has a getter but it is not readable",
				"ERROR foo.c:3: Property Foo:p has a setter but it is not writable",
				"WARNING foo.c:3: Property Foo:p missing a docstring",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class := &gir.Class{Name: "Foo", Methods: tt.methods}
			have := checkAll(NewPropertyChecker(&tt.prop, class, nil))
			if diff := cmp.Diff(tt.want, have); diff != "" {
				t.Errorf("(-want +have):\n%s", diff)
			}
		})
	}
}

func TestRegisteredRuleSets(t *testing.T) {
	var have []string
	for _, info := range girlint.GetCheckersInfo() {
		have = append(have, info.Kind.String()+"/"+info.Name)
	}
	want := []string{"class/class", "property/property", "method/method", "parameter/parameter"}
	if diff := cmp.Diff(want, have); diff != "" {
		t.Errorf("registered rule sets (-want +have):\n%s", diff)
	}
}
