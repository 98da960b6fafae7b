// Command dry formats and inspects expressions of the dry language.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		// Syntax errors were already reported as they were found.
		if !errors.Is(err, errSyntax) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(exitStatus(err))
	}
}

// exitStatus follows the sysexits convention: 65 for malformed input and 1
// for everything else.
func exitStatus(err error) int {
	if errors.Is(err, errSyntax) {
		return 65
	}
	return 1
}
