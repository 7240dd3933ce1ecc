package cmd

import (
	"fmt"
	"io"
	"strings"
)

// Sync proposes, per source, the install command that would satisfy this
// machine's declared target. It runs nothing.
func Sync(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 {
		return fmt.Errorf("sync: unexpected argument %q", args[0])
	}
	a, err := newApp(stdout)
	if err != nil {
		return err
	}
	m, err := a.resolver.Current()
	if err != nil {
		return err
	}
	steps, err := a.engine.SyncPlan(m)
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		fmt.Fprintln(stdout, okStyle.Render("nothing to install"))
		return nil
	}
	for _, step := range steps {
		argv := a.sys.InstallCommand(step.Source, step.Names)
		fmt.Fprintf(stdout, "%s %s\n", headingStyle.Render(string(step.Source)+":"), strings.Join(argv, " "))
	}
	return nil
}
