package check

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// fileConfig is the layout of the -config TOML file.
type fileConfig struct {
	IgnoreDeprecated bool   `toml:"ignore_deprecated"`
	Enable           string `toml:"enable"`
	Disable          string `toml:"disable"`
	DisableTags      string `toml:"disable_tags"`
	MinSeverity      string `toml:"min_severity"`
	FailOn           string `toml:"fail_on"`
	Format           string `toml:"format"`
	ColoredOutput    bool   `toml:"colored_output"`
	ExitCode         int    `toml:"exit_code"`
	Jobs             int    `toml:"jobs"`
	Plugin           string `toml:"plugin"`
}

// mergeConfigFile overrides o with the values defined in the TOML file at
// path. Options whose flag appears in explicit are left untouched.
func mergeConfigFile(o *options, path string, explicit map[string]bool) error {
	var fc fileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		return fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}

	set := func(key, flagName string, apply func()) {
		if meta.IsDefined(key) && !explicit[flagName] {
			apply()
		}
	}
	set("ignore_deprecated", "ignoreDeprecated", func() { o.ignoreDeprecated = fc.IgnoreDeprecated })
	set("enable", "enable", func() { o.enable = fc.Enable })
	set("disable", "disable", func() { o.disable = fc.Disable })
	set("disable_tags", "disableTags", func() { o.disableTags = fc.DisableTags })
	set("min_severity", "minSeverity", func() { o.minSeverity = fc.MinSeverity })
	set("fail_on", "failOn", func() { o.failOn = fc.FailOn })
	set("format", "format", func() { o.format = fc.Format })
	set("colored_output", "coloredOutput", func() { o.coloredOutput = fc.ColoredOutput })
	set("exit_code", "exitCode", func() { o.exitCode = fc.ExitCode })
	set("jobs", "jobs", func() { o.jobs = fc.Jobs })
	set("plugin", "plugin", func() { o.plugin = fc.Plugin })
	return nil
}
