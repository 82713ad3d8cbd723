package girlint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-lintpack/girlint/gir"
)

// Severity ranks a warning. Higher values are more severe.
type Severity int

const (
	// SeverityInfo marks an advisory gap that may be intentional.
	SeverityInfo Severity = iota + 1
	// SeverityWarning marks missing documentation.
	SeverityWarning
	// SeverityError marks a broken API contract.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseSeverity converts a case-insensitive severity name.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(s) {
	case "info":
		return SeverityInfo, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	}
	return 0, fmt.Errorf("unknown severity %q", s)
}

// Position is a warning location copied from the GIR document.
type Position struct {
	Filename string
	Line     string
}

// Warning represents issue that is found by checker.
type Warning struct {
	// Pos is nil when the entity has no source position.
	Pos *Position

	Severity Severity

	// Message is "<identifier> <text>", without location info.
	Message string
}

func newWarning(pos *gir.SourcePosition, id, msg string, sev Severity) Warning {
	w := Warning{
		Message:  id + " " + msg,
		Severity: sev,
	}
	if pos != nil {
		w.Pos = &Position{Filename: pos.Filename, Line: pos.Line}
	}
	return w
}

// NewWarning returns a SeverityWarning warning for the entity labelled id.
func NewWarning(pos *gir.SourcePosition, id, msg string) Warning {
	return newWarning(pos, id, msg, SeverityWarning)
}

// NewInfo returns a SeverityInfo warning for the entity labelled id.
func NewInfo(pos *gir.SourcePosition, id, msg string) Warning {
	return newWarning(pos, id, msg, SeverityInfo)
}

// NewError returns a SeverityError warning for the entity labelled id.
func NewError(pos *gir.SourcePosition, id, msg string) Warning {
	return newWarning(pos, id, msg, SeverityError)
}

// Less orders warnings by severity only.
func (w Warning) Less(other Warning) bool {
	return w.Severity < other.Severity
}

func (w Warning) String() string {
	if w.Pos != nil {
		return fmt.Sprintf("%s %s:%s: %s", w.Severity, w.Pos.Filename, w.Pos.Line, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Severity, w.Message)
}

// Warnings is an append-only collection of warnings.
type Warnings []Warning

// Add appends w to the collection.
func (ws *Warnings) Add(w Warning) {
	*ws = append(*ws, w)
}

// Sort orders warnings from most to least severe.
// Warnings of equal severity keep the order they were added in.
func (ws Warnings) Sort() {
	sort.SliceStable(ws, func(i, j int) bool {
		return ws[j].Less(ws[i])
	})
}

// AtLeast reports whether any warning is at least as severe as sev.
func (ws Warnings) AtLeast(sev Severity) bool {
	for i := range ws {
		if ws[i].Severity >= sev {
			return true
		}
	}
	return false
}

// Count returns the number of warnings with severity sev.
func (ws Warnings) Count(sev Severity) int {
	n := 0
	for i := range ws {
		if ws[i].Severity == sev {
			n++
		}
	}
	return n
}

// Filter returns the warnings at least as severe as threshold, keeping order.
func (ws Warnings) Filter(threshold Severity) Warnings {
	out := make(Warnings, 0, len(ws))
	for _, w := range ws {
		if w.Severity >= threshold {
			out = append(out, w)
		}
	}
	return out
}
