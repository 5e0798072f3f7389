//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Check mg.Namespace

// Runs go vet on the engine packages.
func (Check) Vet() error {
	_, err := goRun("vet", withArgs(enginePackages), withStream())
	return err
}

// Fails when go.mod or go.sum are not tidy.
func (Check) Tidy() error {
	if _, err := goRun("mod", withArgs("tidy")); err != nil {
		return err
	}
	out, err := run("git", withArgs("status", "--porcelain", "go.mod", "go.sum"))
	if err != nil {
		return err
	}
	if out != "" {
		return fmt.Errorf("go.mod or go.sum changed after go mod tidy:\n%s", out)
	}
	return nil
}

// Runs every check and the unit tests.
func (Check) All() {
	mg.SerialDeps(Check.Vet, Check.Tidy, Test.Unit)
}
