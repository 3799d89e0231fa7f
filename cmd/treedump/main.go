// Command treedump renders a YAML outline file as a tree, optionally
// resolving a dotted path to print only a subtree.
package main

import (
	"os"

	"github.com/junior176/animated-tree-view/cmd/treedump/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
