package linttest

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/tools/txtar"

	"github.com/go-lintpack/girlint/gir"
)

// goldenFile is a parsed txtar test archive.
//
// The archive comment lists run options, one per line. Supported
// options are "ignoreDeprecated". Lines starting with "#" are ignored.
// The "input.gir" member holds the checked document and the "want"
// member the expected output, one rendered warning per line.
type goldenFile struct {
	filename string

	ignoreDeprecated bool

	repo *gir.Repository
	want []string
}

func readGoldenFile(filename string) (*goldenFile, error) {
	ar, err := txtar.ParseFile(filename)
	if err != nil {
		return nil, err
	}
	return parseGoldenArchive(filename, ar)
}

func parseGoldenArchive(filename string, ar *txtar.Archive) (*goldenFile, error) {
	g := &goldenFile{filename: filename}

	for _, line := range strings.Split(string(ar.Comment), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case line == "ignoreDeprecated":
			g.ignoreDeprecated = true
		default:
			return nil, fmt.Errorf("%s: unknown option %q", filename, line)
		}
	}

	var input, want []byte
	var haveInput, haveWant bool
	for _, f := range ar.Files {
		switch f.Name {
		case "input.gir":
			input, haveInput = f.Data, true
		case "want":
			want, haveWant = f.Data, true
		default:
			return nil, fmt.Errorf("%s: unexpected archive member %q", filename, f.Name)
		}
	}
	if !haveInput || !haveWant {
		return nil, fmt.Errorf("%s: archive needs both input.gir and want", filename)
	}

	repo, err := gir.Load(bytes.NewReader(input))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	g.repo = repo
	g.want = splitLines(string(want))
	return g, nil
}

// splitLines splits s into lines, dropping the trailing empty line.
func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
