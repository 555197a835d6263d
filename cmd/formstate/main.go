// Command formstate collects and validates the person form from the
// terminal or from non-interactive input.
package main

import (
	"errors"
	"fmt"
	"os"
)

var version = "dev" // set by the linker

func main() {
	a := newApp(os.Stdout, os.Stderr)
	if err := newRootCmd(a).Execute(); err != nil {
		if !errors.Is(err, errIncomplete) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
