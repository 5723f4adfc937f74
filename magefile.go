//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build both binaries
var Default = Build

// Build compiles the medals and medalbar binaries into bin/
func Build() error {
	if err := sh.Run("go", "build", "-o", "bin/medals", "./cmd/medals"); err != nil {
		return err
	}
	return sh.Run("go", "build", "-o", "bin/medalbar", "./cmd/medalbar")
}

// Test runs the test suite
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.Run("go", "vet", "./...")
}

// QA runs vet and the tests
func QA() error {
	mg.SerialDeps(Vet, Test)
	return nil
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}
