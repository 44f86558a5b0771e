//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Test mg.Namespace

// Unit runs the unit tests, skipping the ones that shell out to the go command
func (Test) Unit() error {
	fmt.Println("Running unit tests...")
	return sh.RunV("go", "test", "-short", "./...")
}

// Integration runs every test, including generation of the sample package
func (Test) Integration() error {
	fmt.Println("Running integration tests...")
	return sh.RunV("go", "test", "-v", "./...")
}

// Coverage runs tests with coverage report
func (Test) Coverage() error {
	fmt.Println("Running tests with coverage...")
	if err := sh.RunV("go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html")
}

// All runs all tests and checks
func (Test) All() error {
	mg.Deps(Test.Unit, Test.Integration)
	return nil
}
