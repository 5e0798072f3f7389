//go:build mage

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Packages every target works on.
const enginePackages = "./engine/..."

type goCmd struct {
	args   []string
	env    map[string]string
	stream bool
}

type goOption func(*goCmd)

func withArgs(args ...string) goOption {
	return func(c *goCmd) {
		c.args = append(c.args, args...)
	}
}

// withEnv adds a variable to the command environment. Values go through
// mage's $VAR expansion.
func withEnv(key, value string) goOption {
	return func(c *goCmd) {
		if c.env == nil {
			c.env = map[string]string{}
		}
		c.env[key] = value
	}
}

func withStream() goOption {
	return func(c *goCmd) {
		c.stream = true
	}
}

// run executes command and returns what it wrote to stdout and stderr. The
// output is echoed when streaming or when mage runs with -v, and dumped after
// a failure otherwise.
func run(command string, options ...goOption) (string, error) {
	c := &goCmd{}
	for _, o := range options {
		o(c)
	}

	var out bytes.Buffer
	stdout, stderr := io.Writer(&out), io.Writer(&out)
	echo := c.stream || mg.Verbose()
	if echo {
		stdout = io.MultiWriter(&out, os.Stdout)
		stderr = io.MultiWriter(&out, os.Stderr)
	}

	fmt.Printf("-> %s %v\n", command, c.args)
	ran, err := sh.Exec(c.env, stdout, stderr, command, c.args...)
	if err != nil {
		if ran && !echo {
			fmt.Print(out.String())
		}
		return "", fmt.Errorf("%s exited with code %d: %w", command, sh.ExitStatus(err), err)
	}
	return out.String(), nil
}

// goRun runs a go subcommand.
func goRun(sub string, options ...goOption) (string, error) {
	return run(mg.GoCmd(), append([]goOption{withArgs(sub)}, options...)...)
}
