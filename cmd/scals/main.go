// Command scals resolves declarative UI documents from the command line:
// decode a document, run the resolution engine against a state seed, and
// print the resolved IR tree or its dependency index.
package main

import (
	"os"

	"github.com/go-scals/scals/cmd/scals/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
