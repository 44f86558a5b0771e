//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

// Default target runs the fast tests
var Default = Test.Unit

// CI runs every test, the linters and the generated code check
func CI() error {
	fmt.Println("Running CI checks...")
	mg.Deps(Test.All, Lint.All, Gen.Verify)
	return nil
}
