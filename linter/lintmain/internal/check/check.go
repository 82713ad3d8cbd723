package check

import (
	"context"
	"flag"
	"fmt"
	"os"
	"regexp"

	"go.uber.org/zap"

	"github.com/go-lintpack/girlint"
	"github.com/go-lintpack/girlint/gir"
	"github.com/go-lintpack/girlint/linter/lintmain/internal/clilog"
	"github.com/go-lintpack/girlint/linter/lintmain/internal/hotload"
)

// Main implements sub-command entry point.
func Main() {
	level := zap.NewAtomicLevelAt(zap.WarnLevel)
	l := linter{
		level: level,
		log:   clilog.New(level),
	}
	defer func() { _ = l.log.Sync() }()

	steps := []struct {
		name string
		fn   func() error
	}{
		{"parse args", l.parseArgs},
		{"load config", l.loadConfig},
		{"init rule sets", l.initRuleSets},
		{"load files", l.loadFiles},
		{"run rule sets", l.runRuleSets},
		{"print warnings", l.printWarnings},
		{"exit if found issues", l.exit},
	}

	for _, step := range steps {
		if err := step.fn(); err != nil {
			l.log.Fatal(step.name, zap.Error(err))
		}
	}
}

type linter struct {
	level zap.AtomicLevel
	log   *zap.Logger

	opts options

	// explicit holds the names of flags given on the command line.
	explicit map[string]bool

	ruleSets []*girlint.RuleSet

	files []string
	repos []*gir.Repository

	warnings girlint.Warnings
	failOn   girlint.Severity
	minSev   girlint.Severity
}

// options mirror the command line flags.
type options struct {
	configPath       string
	ignoreDeprecated bool
	enable           string
	disable          string
	disableTags      string
	minSeverity      string
	failOn           string
	format           string
	coloredOutput    bool
	exitCode         int
	jobs             int
	plugin           string
	verbose          bool
}

func (l *linter) parseArgs() error {
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "usage: girlint check [flags] files.gir...\n\n")
		flag.PrintDefaults()
	}

	o := &l.opts
	flag.StringVar(&o.configPath, "config", "",
		`TOML file with default option values; command line flags win`)
	flag.BoolVar(&o.ignoreDeprecated, "ignoreDeprecated", false,
		`skip deprecated classes, properties and methods`)
	flag.StringVar(&o.disableTags, "disableTags", `^experimental$`,
		`regexp that excludes rule sets that have matching tag`)
	flag.StringVar(&o.disable, "disable", `<none>`,
		`regexp that disables unwanted rule sets`)
	flag.StringVar(&o.enable, "enable", `.*`,
		`regexp that selects what rule sets are being run. Applied after all other filters`)
	flag.StringVar(&o.minSeverity, "minSeverity", "info",
		`least severe warnings to print: info, warning or error`)
	flag.StringVar(&o.failOn, "failOn", "error",
		`least severe warning that makes the linter exit with -exitCode`)
	flag.StringVar(&o.format, "format", formatText,
		`output format: text or json`)
	flag.BoolVar(&o.coloredOutput, "coloredOutput", false,
		`whether to use colored output`)
	flag.IntVar(&o.exitCode, "exitCode", 1,
		`exit code to be used when lint issues are found`)
	flag.IntVar(&o.jobs, "jobs", 1,
		`number of classes checked concurrently`)
	flag.StringVar(&o.plugin, "plugin", "",
		`path to a Go plugin registering extra rule sets`)
	flag.BoolVar(&o.verbose, "v", false,
		`print debug logs to stderr`)

	flag.Parse()

	l.explicit = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		l.explicit[f.Name] = true
	})

	l.files = flag.Args()
	if len(l.files) == 0 {
		return fmt.Errorf("not enough arguments: expected at least one GIR file")
	}
	return nil
}

func (l *linter) loadConfig() error {
	if l.opts.configPath != "" {
		if err := mergeConfigFile(&l.opts, l.opts.configPath, l.explicit); err != nil {
			return err
		}
	}
	if l.opts.verbose {
		l.level.SetLevel(zap.DebugLevel)
	}

	var err error
	if l.minSev, err = girlint.ParseSeverity(l.opts.minSeverity); err != nil {
		return fmt.Errorf("-minSeverity: %w", err)
	}
	if l.failOn, err = girlint.ParseSeverity(l.opts.failOn); err != nil {
		return fmt.Errorf("-failOn: %w", err)
	}
	if l.opts.format != formatText && l.opts.format != formatJSON {
		return fmt.Errorf("-format: unknown format %q", l.opts.format)
	}
	return nil
}

func (l *linter) initRuleSets() error {
	ruleSets, err := hotload.RuleSetsFromDylib(girlint.RuleSets, l.opts.plugin)
	if err != nil {
		return fmt.Errorf("load plugin: %w", err)
	}

	disableTagsRE, err := regexp.Compile(l.opts.disableTags)
	if err != nil {
		return fmt.Errorf("-disableTags: %v", err)
	}
	disableRE, err := regexp.Compile(l.opts.disable)
	if err != nil {
		return fmt.Errorf("-disable: %v", err)
	}
	enableRE, err := regexp.Compile(l.opts.enable)
	if err != nil {
		return fmt.Errorf("-enable: %v", err)
	}

	l.ruleSets = selectRuleSets(ruleSets, enableRE, disableRE, disableTagsRE)
	if len(l.ruleSets) == 0 {
		return fmt.Errorf("no rule sets enabled")
	}
	for _, rs := range l.ruleSets {
		l.log.Debug("rule set enabled",
			zap.String("name", rs.Info.Name),
			zap.Stringer("kind", rs.Info.Kind))
	}
	return nil
}

func selectRuleSets(ruleSets []*girlint.RuleSet, enableRE, disableRE, disableTagsRE *regexp.Regexp) []*girlint.RuleSet {
	disabledByTags := func(rs *girlint.RuleSet) bool {
		for _, tag := range rs.Info.Tags {
			if disableTagsRE.MatchString(tag) {
				return true
			}
		}
		return false
	}

	var selected []*girlint.RuleSet
	for _, rs := range ruleSets {
		if disabledByTags(rs) || disableRE.MatchString(rs.Info.Name) {
			continue
		}
		if enableRE.MatchString(rs.Info.Name) {
			selected = append(selected, rs)
		}
	}
	return selected
}

func (l *linter) loadFiles() error {
	for _, filename := range l.files {
		repo, err := gir.LoadFile(filename)
		if err != nil {
			return err
		}
		l.log.Debug("file loaded",
			zap.String("file", filename),
			zap.Int("namespaces", len(repo.Namespaces)))
		l.repos = append(l.repos, repo)
	}
	return nil
}

func (l *linter) runRuleSets() error {
	lint := &girlint.Linter{
		RuleSets:         l.ruleSets,
		IgnoreDeprecated: l.opts.ignoreDeprecated,
		Jobs:             l.opts.jobs,
		Logger:           l.log,
	}
	for _, repo := range l.repos {
		for i := range repo.Namespaces {
			warnings, err := lint.Run(context.Background(), &repo.Namespaces[i])
			if err != nil {
				return err
			}
			l.warnings = append(l.warnings, warnings...)
		}
	}
	l.warnings.Sort()
	return nil
}

func (l *linter) printWarnings() error {
	p := printer{
		w:       os.Stdout,
		format:  l.opts.format,
		colored: l.opts.coloredOutput,
	}
	return p.print(l.warnings.Filter(l.minSev))
}

// failed reports whether the run should end with -exitCode.
// Warnings hidden by -minSeverity still count.
func (l *linter) failed() bool {
	return l.warnings.AtLeast(l.failOn)
}

func (l *linter) exit() error {
	if l.failed() {
		_ = l.log.Sync()
		os.Exit(l.opts.exitCode)
	}
	return nil
}
