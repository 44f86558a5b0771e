//go:build mage

package main

import (
	"fmt"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Lint mg.Namespace

// Go runs golangci-lint on the codebase
func (Lint) Go() error {
	fmt.Println("Running golangci-lint...")
	return sh.RunV("golangci-lint", "run", "--timeout=5m", "./...")
}

// Vet runs go vet on every package
func (Lint) Vet() error {
	fmt.Println("Running go vet...")
	return sh.RunV("go", "vet", "./...")
}

// Format fails if any file is not gofmt'd
func (Lint) Format() error {
	fmt.Println("Checking code formatting...")
	out, err := sh.Output("gofmt", "-l", "-s", ".")
	if err != nil {
		return err
	}
	if out = strings.TrimSpace(out); out != "" {
		return fmt.Errorf("files need gofmt:\n%s", out)
	}
	return nil
}

// All runs all linting checks
func (Lint) All() error {
	mg.Deps(Lint.Go, Lint.Vet, Lint.Format)
	return nil
}
