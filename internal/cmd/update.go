package cmd

import (
	"fmt"
	"io"
)

// Update reports how the lists diverge from observed reality: installed
// packages declared nowhere, and declared packages no longer installed.
func Update(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 {
		return fmt.Errorf("update: unexpected argument %q", args[0])
	}
	a, err := newApp(stdout)
	if err != nil {
		return err
	}
	m, err := a.resolver.Current()
	if err != nil {
		return err
	}
	rep, err := a.engine.Update(m)
	if err != nil {
		return err
	}

	renderSection(stdout, "unlisted (installed, declared in no list)", extraStyle, rep.Unlisted)
	fmt.Fprintln(stdout)
	renderSection(stdout, fmt.Sprintf("removed from system (declared for %s, not installed)", m), missingStyle, rep.Removed)
	return nil
}
