package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/nkoenig/decpac/internal/liststore"
)

// Ls prints the declared lists and their members. It never needs machine
// resolution.
func Ls(args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("ls", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	source := fs.String("source", "", "only lists of this source (pacman or aur)")
	scope := fs.StringP("scope", "s", "", "only lists of this machine scope")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *source != "" && *source != string(liststore.SourceOfficial) && *source != string(liststore.SourceForeign) {
		return fmt.Errorf("ls: unknown source %q", *source)
	}

	a, err := newApp(stdout)
	if err != nil {
		return err
	}
	refs, err := a.store.AllLists()
	if err != nil {
		return err
	}

	printed := false
	for _, ref := range refs {
		if *source != "" && string(ref.Source) != *source {
			continue
		}
		if *scope != "" && ref.Scope != *scope {
			continue
		}
		names, err := a.store.Load(ref.Source, ref.Scope)
		if err != nil {
			return err
		}
		if printed {
			fmt.Fprintln(stdout)
		}
		renderSection(stdout, fmt.Sprintf("%s-%s (%d)", ref.Source, ref.Scope, len(names)), okStyle, names)
		printed = true
	}
	if !printed {
		fmt.Fprintln(stdout, mutedStyle.Render("no lists found"))
	}
	return nil
}
