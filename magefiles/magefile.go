//go:build mage

// Package main contains the mage build targets for unitwand.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "unitwand"
	binaryDir  = "bin"
	cmdDir     = "./cmd/unitwand"
)

// Build compiles the unitwand binary into bin/.
func Build() error {
	fmt.Println("Building", binaryName)
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binaryDir, err)
	}
	return sh.RunV("go", "build", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests, unit and integration.
func Test() error {
	mg.Deps(TestUnit)
	return TestIntegration()
}

// TestUnit runs the package-level tests.
func TestUnit() error {
	fmt.Println("Running unit tests")
	return sh.RunV("go", "test", "./pkg/...", "./internal/...", "./cmd/...")
}

// TestIntegration runs the integration suites under tests/.
func TestIntegration() error {
	mg.Deps(Build)
	fmt.Println("Running integration tests")
	return sh.RunV("go", "test", "./tests/...")
}

// Lint runs golangci-lint over the module.
func Lint() error {
	fmt.Println("Linting")
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	fmt.Println("Cleaning")
	return os.RemoveAll(binaryDir)
}

// Install builds the binary and copies it into GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output("go", "env", "GOPATH")
	if err != nil {
		return fmt.Errorf("reading GOPATH: %w", err)
	}
	dst := filepath.Join(gopath, "bin", binaryName)
	fmt.Println("Installing to", dst)
	data, err := os.ReadFile(filepath.Join(binaryDir, binaryName))
	if err != nil {
		return fmt.Errorf("reading binary: %w", err)
	}
	return os.WriteFile(dst, data, 0o755)
}
