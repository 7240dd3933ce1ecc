package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/nkoenig/decpac/internal/liststore"
)

// Add declares one or more packages, installing them first when the target
// scope applies to this machine.
func Add(args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("add", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = fs.PrintDefaults // pflag leaves Usage nil, unlike stdlib flag
	scope := fs.StringP("scope", "s", liststore.ScopeCommon, "machine scope to declare the packages in")
	if err := fs.Parse(args); err != nil {
		return err
	}
	names := fs.Args()
	if len(names) == 0 {
		fs.Usage()
		return fmt.Errorf("add: at least one package name required")
	}

	a, err := newApp(stdout)
	if err != nil {
		return err
	}
	m, err := a.resolver.Current()
	if err != nil {
		return err
	}
	return a.controller(m, stdout).Add(names, *scope)
}
