// Command namecorpus generates directories of deliberately awkward (or
// deliberately ordinary) filenames for exercising file-renaming tools.
//
//	namecorpus edge    [dir]   adversarial names, fallback on rejection
//	namecorpus typical [dir]   everyday names with extension-appropriate content
//	namecorpus list    [edge|typical]
//	namecorpus check   [dir]
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	app := newApp()
	root := app.rootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgHiRed, color.Bold).Sprint("namecorpus:"), err)
		os.Exit(1)
	}
	os.Exit(app.exitCode)
}
