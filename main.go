// file: main.go
// version: 1.0.0
// guid: 1b5d9f3a-7c0e-4b2d-8f6a-4e8c0a2b6d1e

package main

import (
	"fmt"
	"os"

	"github.com/jdfalk/isbndb/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
