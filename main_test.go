// file: main_test.go
// version: 1.0.0
// guid: 0a4e8c2d-6f1b-4d5a-9e3c-7b1f5d9a3e6c

package main

import (
	"os"
	"testing"
)

func TestMainHelp(t *testing.T) {
	origArgs := os.Args
	defer func() {
		os.Args = origArgs
	}()

	os.Args = []string{"isbndb", "--help"}

	main()
}
