// Command reluri classifies URI references as relative or absolute.
//
// Usage:
//
//	reluri [flags] [uri...]
//
// Without arguments, newline separated references are read from stdin; blank lines are skipped.
// The exit code is 0 when every reference is relative, 1 when some are not
// and 2 on usage or I/O errors.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errNotRelative) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "reluri:", err)
		os.Exit(2)
	}
}
