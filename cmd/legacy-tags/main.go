// legacy-tags checks the legacy struct tags of Go packages.
//
// Usage:
//
//	legacy-tags check [--tag-key=<key>] [--mixins=<file>]... [--format=text|json] [--strict] [packages]
//	legacy-tags tags
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
