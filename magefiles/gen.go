//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Gen mg.Namespace

// Sample regenerates the accessors and options of the sample beans
func (Gen) Sample() error {
	fmt.Println("Regenerating sample bean accessors...")
	return sh.RunV("go", "generate", "./sample/...")
}

// Verify regenerates the sample beans and checks if files changed
func (Gen) Verify() error {
	fmt.Println("Verifying generated files are up to date...")
	mg.Deps(Gen.Sample)

	out, err := sh.Output("git", "status", "--porcelain", "sample/")
	if err != nil {
		return err
	}

	if out != "" {
		return fmt.Errorf("generated files are out of date, run 'mage gen:sample'")
	}

	fmt.Println("Generated files are up to date!")
	return nil
}
