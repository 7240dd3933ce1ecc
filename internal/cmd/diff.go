package cmd

import (
	"fmt"
	"io"
)

// Diff reports drift between this machine's declared target set and the
// installed set.
func Diff(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 {
		return fmt.Errorf("diff: unexpected argument %q", args[0])
	}
	a, err := newApp(stdout)
	if err != nil {
		return err
	}
	m, err := a.resolver.Current()
	if err != nil {
		return err
	}
	rep, err := a.engine.Diff(m)
	if err != nil {
		return err
	}

	renderSection(stdout, fmt.Sprintf("missing on %s (declared, not installed)", m), missingStyle, rep.Missing)
	fmt.Fprintln(stdout)
	renderSection(stdout, fmt.Sprintf("extra on %s (installed, declared elsewhere)", m), extraStyle, rep.Extra)
	return nil
}
