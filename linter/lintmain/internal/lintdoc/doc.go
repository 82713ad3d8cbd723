package lintdoc

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"go.uber.org/zap"

	"github.com/go-lintpack/girlint"
	"github.com/go-lintpack/girlint/linter/lintmain/internal/clilog"
)

// Main implements sub-command entry point.
func Main() {
	log := clilog.New(zap.NewAtomicLevelAt(zap.WarnLevel))
	defer func() { _ = log.Sync() }()

	flag.Parse()

	var err error
	switch args := flag.Args(); len(args) {
	case 0:
		err = printShortDoc(os.Stdout)
	case 1:
		err = printDoc(os.Stdout, args[0])
	default:
		err = fmt.Errorf("expected 0 or 1 positional arguments, got %d", len(args))
	}
	if err != nil {
		log.Fatal("print doc", zap.Error(err))
	}
}

func printShortDoc(w io.Writer) error {
	for _, info := range girlint.GetCheckersInfo() {
		if _, err := fmt.Fprintf(w, "%s (%s) %v\n", info.Name, info.Kind, info.Tags); err != nil {
			return err
		}
	}
	return nil
}

var docTemplate = template.Must(template.New("doc").Funcs(template.FuncMap{
	"indent": func(s string) string {
		return "  " + strings.ReplaceAll(s, "\n", "\n  ")
	},
}).Parse(`{{.Name}} rule set documentation
URL: {{.Collection.URL}}
Checks: {{.Kind}} entities
Tags: {{.Tags}}

{{.Summary}}.
{{- if .Details }}

{{.Details}}
{{- end }}

Non-compliant GIR:
{{indent .Before}}

Compliant GIR:
{{indent .After}}
{{- if .Note }}

{{.Note}}
{{- end }}
`))

func printDoc(w io.Writer, name string) error {
	info := findInfoByName(name)
	if info == nil {
		return fmt.Errorf("rule set with name %q not found", name)
	}
	if err := docTemplate.Execute(w, info); err != nil {
		return fmt.Errorf("executing rule set doc template: %w", err)
	}
	return nil
}

func findInfoByName(name string) *girlint.CheckerInfo {
	for _, info := range girlint.GetCheckersInfo() {
		if info.Name == name {
			return info
		}
	}
	return nil
}
