// Command parsec is a small CLI wrapping the library's two bundled
// grammars (JSON and arithmetic expressions) for ad hoc use and for
// exercising the error-presentation and tracing machinery from a
// terminal, in the idiom of this pack's other cobra-based tool
// commands.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
