package girlint

import (
	"fmt"
	"strings"

	"github.com/go-lintpack/girlint/gir"
)

// RuleSets is a list of registered rule sets, in registration order.
// Registration should be done with CheckerCollection.AddChecker.
var RuleSets []*RuleSet

// Target is the entity a rule set is constructed for, together with
// the context around it. Fields that do not apply to the visited
// kind are left nil.
type Target struct {
	// Class is the visited class or the class owning the visited member.
	Class *gir.Class

	// Methods indexes Class.Methods by name. Set for properties.
	Methods gir.MethodIndex

	Property *gir.Property

	// Method is the visited method or the method owning the parameter.
	Method *gir.Method

	Parameter *gir.Parameter

	// ParentName names the function a parameter belongs to.
	ParentName string
}

// RuleSet is a registered rule set.
type RuleSet struct {
	Info *CheckerInfo

	construct func(*Target) DocChecker
}

// New binds the rule set to the entity described by t.
func (r *RuleSet) New(t *Target) DocChecker {
	return r.construct(t)
}

// CheckerCollection groups rule sets registered by one package.
type CheckerCollection struct {
	// URL is a link for a main source of information on the collection.
	URL string
}

// AddChecker registers a rule set. construct is called once per
// visited entity of info.Kind.
//
// AddChecker panics on incomplete documentation; it is meant to be
// called from init functions.
func (coll *CheckerCollection) AddChecker(info *CheckerInfo, construct func(*Target) DocChecker) {
	trimDocumentation(&info.CheckerDoc)
	if err := validateCheckerInfo(info); err != nil {
		panic(fmt.Sprintf("add %q: %v", info.Name, err))
	}
	for _, r := range RuleSets {
		if r.Info.Name == info.Name {
			panic(fmt.Sprintf("add %q: rule set is already registered", info.Name))
		}
	}

	info.Collection = coll
	RuleSets = append(RuleSets, &RuleSet{
		Info:      info,
		construct: construct,
	})
}

// GetCheckersInfo returns the documentation of every registered rule set.
func GetCheckersInfo() []*CheckerInfo {
	infoList := make([]*CheckerInfo, len(RuleSets))
	for i, r := range RuleSets {
		infoList[i] = r.Info
	}
	return infoList
}

func trimDocumentation(d *CheckerDoc) {
	fields := []*string{
		&d.Summary,
		&d.Details,
		&d.Before,
		&d.After,
		&d.Note,
	}
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

func validateCheckerInfo(info *CheckerInfo) error {
	switch {
	case info.Name == "":
		return fmt.Errorf("missing name")
	case info.Kind < KindClass || info.Kind > KindParameter:
		return fmt.Errorf("unknown kind %d", info.Kind)
	case info.Summary == "":
		return fmt.Errorf("missing summary")
	case strings.HasSuffix(info.Summary, "."):
		return fmt.Errorf("summary should not end with a period")
	case info.Before == "" || info.After == "":
		return fmt.Errorf("missing before/after example")
	}
	return nil
}
