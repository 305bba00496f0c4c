//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binary  = "stevens"
	mainPkg = "./cmd/stevens"
)

// Default target to run when none is specified
var Default = Build

// Build compiles the stevens binary
func Build() error {
	version := os.Getenv("VERSION")
	if version == "" {
		return sh.RunV("go", "build", "-o", binary, mainPkg)
	}
	ldflags := fmt.Sprintf("-X codeberg.org/snonux/stevens/internal.Version=%s", version)
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", binary, mainPkg)
}

// Install installs stevens into GOPATH/bin
func Install() error {
	return sh.RunV("go", "install", mainPkg)
}

// Test runs all tests with the race detector
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs go vet and checks formatting
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	if out != "" {
		return fmt.Errorf("files need gofmt:\n%s", out)
	}
	return nil
}

// All runs lint, test and build
func All() {
	mg.SerialDeps(Lint, Test, Build)
}

// Clean removes the built binary
func Clean() error {
	return sh.Rm(binary)
}
