package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// Move relocates a declared package to another scope, across every list
// that currently contains it.
func Move(args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("move", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = fs.PrintDefaults // pflag leaves Usage nil, unlike stdlib flag
	dest := fs.StringP("to", "t", "", "destination machine scope (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	names := fs.Args()
	if len(names) != 1 {
		fs.Usage()
		return fmt.Errorf("move: exactly one package name required")
	}
	if *dest == "" {
		fs.Usage()
		return fmt.Errorf("move: --to <scope> is required")
	}

	a, err := newApp(stdout)
	if err != nil {
		return err
	}
	// List-only: no installer runs, so no machine resolution is needed.
	return a.controller("", stdout).Move(names[0], *dest)
}
