package check

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/logrusorgru/aurora"

	"github.com/go-lintpack/girlint"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type printer struct {
	w       io.Writer
	format  string
	colored bool
}

func (p *printer) print(warnings girlint.Warnings) error {
	if p.format == formatJSON {
		return p.printJSON(warnings)
	}
	for _, w := range warnings {
		if _, err := fmt.Fprintln(p.w, p.formatWarning(w)); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) formatWarning(w girlint.Warning) string {
	if !p.colored {
		return w.String()
	}
	sev := colorSeverity(w.Severity)
	if w.Pos != nil {
		return fmt.Sprintf("%v %v: %s", sev, aurora.Bold(w.Pos.Filename+":"+w.Pos.Line), w.Message)
	}
	return fmt.Sprintf("%v: %s", sev, w.Message)
}

func colorSeverity(sev girlint.Severity) aurora.Value {
	switch sev {
	case girlint.SeverityError:
		return aurora.Red(sev)
	case girlint.SeverityWarning:
		return aurora.Magenta(sev)
	default:
		return aurora.Cyan(sev)
	}
}

type jsonWarning struct {
	Severity string `json:"severity"`
	File     string `json:"file,omitempty"`
	Line     string `json:"line,omitempty"`
	Message  string `json:"message"`
}

type jsonOutput struct {
	Diagnostics []jsonWarning `json:"diagnostics"`
	Count       int           `json:"count"`
}

func (p *printer) printJSON(warnings girlint.Warnings) error {
	out := jsonOutput{
		Diagnostics: make([]jsonWarning, 0, len(warnings)),
		Count:       len(warnings),
	}
	for _, w := range warnings {
		jw := jsonWarning{
			Severity: w.Severity.String(),
			Message:  w.Message,
		}
		if w.Pos != nil {
			jw.File = w.Pos.Filename
			jw.Line = w.Pos.Line
		}
		out.Diagnostics = append(out.Diagnostics, jw)
	}

	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
