// pcpsolve searches Post Correspondence Problem instances from the command line.
//
// Usage:
//
//	pcpsolve solve --pairs "(a,ab), (ba,a), (aba,b)"
//	pcpsolve solve -f instance.json [--format json]
//	pcpsolve batch a.json b.yaml [--parallel 4]
//	pcpsolve examples [--solve]
package main

import (
	"fmt"
	"os"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
