package girlint

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/go-lintpack/girlint/gir"
	"github.com/go-lintpack/girlint/internal/girwalk"
)

// Linter runs rule sets over a namespace.
type Linter struct {
	// RuleSets to run. All registered rule sets are used when nil.
	RuleSets []*RuleSet

	// IgnoreDeprecated skips deprecated classes, properties and methods.
	IgnoreDeprecated bool

	// Jobs is the number of classes checked concurrently.
	// Values below 2 check classes one after another.
	Jobs int

	Logger *zap.Logger
}

// Run checks every class of ns and returns the warnings sorted from most
// to least severe. Warnings of equal severity are returned in traversal
// order regardless of Jobs.
//
// Run only fails when ctx is cancelled.
func (l *Linter) Run(ctx context.Context, ns *gir.Namespace) (Warnings, error) {
	logger := l.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ruleSets := l.RuleSets
	if ruleSets == nil {
		ruleSets = RuleSets
	}
	var byKind [KindParameter + 1][]*RuleSet
	for _, r := range ruleSets {
		byKind[r.Info.Kind] = append(byKind[r.Info.Kind], r)
	}

	walker := girwalk.Walker{IgnoreDeprecated: l.IgnoreDeprecated}

	// One slot per class so concurrent workers never share a collection.
	// Slots are concatenated in class order afterwards.
	slots := make([]Warnings, len(ns.Classes))
	checkClass := func(i int) {
		class := &ns.Classes[i]
		r := &runner{byKind: &byKind, warnings: &slots[i]}
		walker.WalkClass(class, r)
		logger.Debug("class checked",
			zap.String("namespace", ns.Name),
			zap.String("class", class.Name),
			zap.Int("warnings", len(slots[i])))
	}

	if l.Jobs < 2 {
		for i := range ns.Classes {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			checkClass(i)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(l.Jobs)
		for i := range ns.Classes {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				checkClass(i)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	n := 0
	for _, s := range slots {
		n += len(s)
	}
	warnings := make(Warnings, 0, n)
	for _, s := range slots {
		warnings = append(warnings, s...)
	}
	warnings.Sort()

	logger.Info("namespace checked",
		zap.String("namespace", ns.Name),
		zap.Int("classes", len(ns.Classes)),
		zap.Int("errors", warnings.Count(SeverityError)),
		zap.Int("warnings", warnings.Count(SeverityWarning)),
		zap.Int("infos", warnings.Count(SeverityInfo)))
	return warnings, nil
}

// runner binds rule sets to the entities visited by girwalk.Walker.
type runner struct {
	byKind   *[KindParameter + 1][]*RuleSet
	warnings *Warnings
}

func (r *runner) run(kind Kind, t *Target) {
	for _, rs := range r.byKind[kind] {
		CheckAll(rs.New(t), r.warnings)
	}
}

func (r *runner) VisitClass(class *gir.Class) {
	r.run(KindClass, &Target{Class: class})
}

func (r *runner) VisitProperty(class *gir.Class, methods gir.MethodIndex, prop *gir.Property) {
	r.run(KindProperty, &Target{Class: class, Methods: methods, Property: prop})
}

func (r *runner) VisitMethod(class *gir.Class, method *gir.Method) {
	r.run(KindMethod, &Target{Class: class, Method: method})
}

func (r *runner) VisitParameter(class *gir.Class, method *gir.Method, parentName string, param *gir.Parameter) {
	r.run(KindParameter, &Target{
		Class:      class,
		Method:     method,
		Parameter:  param,
		ParentName: parentName,
	})
}
