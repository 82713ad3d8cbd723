package girlint

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-lintpack/girlint/gir"
)

type fakeChecker struct {
	CheckerBase
	class    *gir.Class
	computed int
}

func (c *fakeChecker) Identifier() string {
	return c.ID(func() string {
		c.computed++
		return "Fake " + c.class.Name
	})
}

func (c *fakeChecker) Documentable() gir.Documentable { return c.class }

func (c *fakeChecker) Check(warnings *Warnings) {
	warnings.Add(NewInfo(nil, c.Identifier(), "checked"))
	warnings.Add(NewInfo(nil, c.Identifier(), "checked again"))
}

func TestCheckAllOrder(t *testing.T) {
	c := &fakeChecker{class: &gir.Class{Name: "A"}}

	var ws Warnings
	CheckAll(c, &ws)

	want := []string{
		"INFO: Fake A checked",
		"INFO: Fake A checked again",
		"WARNING: Fake A missing a docstring",
	}
	if diff := cmp.Diff(want, messages(ws)); diff != "" {
		t.Errorf("(-want +have):\n%s", diff)
	}
	if c.computed != 1 {
		t.Errorf("identifier computed %d times, want 1", c.computed)
	}
}

func TestCheckDocsDocumented(t *testing.T) {
	c := &fakeChecker{class: &gir.Class{Info: gir.Info{Doc: &gir.Doc{}}, Name: "A"}}

	var ws Warnings
	CheckDocs(c, &ws)

	// An empty docstring still counts as present.
	if len(ws) != 0 {
		t.Errorf("unexpected warnings: %v", messages(ws))
	}
	if c.computed != 0 {
		t.Errorf("identifier computed without any warning")
	}
}
