package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// Rm undeclares one or more packages, removing installed ones from the
// system first when the operation targets this machine.
func Rm(args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("rm", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = fs.PrintDefaults // pflag leaves Usage nil, unlike stdlib flag
	scope := fs.StringP("scope", "s", "", "only edit this scope's lists (default: every list containing the name)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	names := fs.Args()
	if len(names) == 0 {
		fs.Usage()
		return fmt.Errorf("rm: at least one package name required")
	}

	a, err := newApp(stdout)
	if err != nil {
		return err
	}
	m, err := a.resolver.Current()
	if err != nil {
		return err
	}
	return a.controller(m, stdout).Remove(names, *scope)
}
