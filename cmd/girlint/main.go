package main

import (
	_ "github.com/go-lintpack/girlint/checkers" // Registers the rule sets
	"github.com/go-lintpack/girlint/linter/lintmain"
)

var version = "v0.1.0"

func main() {
	lintmain.Run(lintmain.Config{
		Name:    "girlint",
		Version: version,
	})
}
