// Command staticlint runs the project's static analysis suite.
//
// It bundles a selection of golang.org/x/tools passes, the staticcheck SA
// checks and one simplification check from honnef.co/go/tools, plus the
// exitmain analyzer that rejects os.Exit inside main (the service must exit
// through run so deferred pool and logger cleanup happens).
//
// Usage:
//
//	go install ./cmd/staticlint
//	staticlint ./...
package main

import (
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
)

// simplifications picks the S checks worth enforcing here.
var simplifications = map[string]bool{
	"S1002": true, // omit comparison to bool constant
	"S1021": true, // merge variable declaration and assignment
}

func analyzers() []*analysis.Analyzer {
	list := []*analysis.Analyzer{
		errorsas.Analyzer,
		lostcancel.Analyzer,
		nilness.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
		unusedresult.Analyzer,
		ExitMainAnalyzer,
	}

	for _, la := range staticcheck.Analyzers {
		if strings.HasPrefix(la.Analyzer.Name, "SA") {
			list = append(list, la.Analyzer)
		}
	}
	for _, la := range simple.Analyzers {
		if simplifications[la.Analyzer.Name] {
			list = append(list, la.Analyzer)
		}
	}
	return list
}

func main() {
	multichecker.Main(analyzers()...)
}
