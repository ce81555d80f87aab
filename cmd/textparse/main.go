// Command textparse is a demonstration CLI over the json example
// grammar: it checks whether its input is a JSON text and, on failure,
// prints the rendered Diagnostic.
package main

import (
	"os"

	"github.com/go-textparse/textparse/cmd/textparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
