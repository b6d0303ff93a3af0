// Command graphlint is a go vet-compatible static analyzer for this
// module, generalized from the teacher's cmd/arenacheck.
//
//	graphlint ./...
//	go vet -vettool=$(which graphlint) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(Analyzer)
}
