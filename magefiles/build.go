//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Build mg.Namespace

// Binary builds the beanfixture binary
func (Build) Binary() error {
	fmt.Println("Building beanfixture binary...")
	return sh.RunV("go", "build", "-o", "bin/beanfixture", ".")
}

// Install installs beanfixture to GOPATH/bin
func (Build) Install() error {
	fmt.Println("Installing beanfixture...")
	return sh.RunV("go", "install", ".")
}

// Clean removes built artifacts
func (Build) Clean() error {
	fmt.Println("Cleaning build artifacts...")
	return sh.Rm("bin")
}
