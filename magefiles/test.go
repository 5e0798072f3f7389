//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs the unit tests of every package.
func (Test) Unit() error {
	fmt.Println("Run unit tests...")
	_, err := goRun("test", withArgs(enginePackages), withStream())
	return err
}

// Runs the unit tests with the race detector, mostly for the settings watcher.
func (Test) Race() error {
	_, err := goRun("test", withArgs("-race", enginePackages), withEnv("CGO_ENABLED", "1"), withStream())
	return err
}

// Writes a coverage profile to coverage.out and prints the per-function summary.
func (Test) Cover() error {
	if _, err := goRun("test", withArgs("-coverprofile=coverage.out", enginePackages)); err != nil {
		return err
	}
	_, err := goRun("tool", withArgs("cover", "-func=coverage.out"), withStream())
	return err
}
