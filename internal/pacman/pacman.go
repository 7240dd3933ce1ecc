package pacman

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/nkoenig/decpac/internal/liststore"
)

// runCmd executes a command with output wired to log, echoing the exact
// command line first. Patched in tests.
var runCmd = func(log io.Writer, name string, args ...string) error {
	fmt.Fprintf(log, "[decpac] $ %s\n", strings.Join(append([]string{name}, args...), " "))
	cmd := exec.Command(name, args...)
	cmd.Stdout = log
	cmd.Stderr = log
	return cmd.Run()
}

// queryOutput captures a command's stdout. Patched in tests.
var queryOutput = func(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// System talks to pacman and the configured AUR helper on the current host.
// It provides both the installed-package inventory and the installer used
// to apply confirmed mutations.
type System struct {
	AURHelper string // e.g. "paru" or "yay"
}

// Installed returns the names of every installed package, official and
// foreign alike.
func (s *System) Installed() ([]string, error) {
	out, err := queryOutput("pacman", "-Qq")
	if err != nil {
		return nil, fmt.Errorf("pacman -Qq: %w", err)
	}
	var names []string
	for _, l := range strings.Split(string(out), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			names = append(names, l)
		}
	}
	return names, nil
}

// IsOfficial reports whether name is known to the configured sync
// repositories. It queries repository metadata, so it works for packages
// that are not installed.
func (s *System) IsOfficial(name string) (bool, error) {
	_, err := queryOutput("pacman", "-Si", name)
	if err == nil {
		return true, nil
	}
	// pacman -Si exits non-zero for repo-unknown names; that is the foreign
	// answer, not a failure.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	return false, fmt.Errorf("pacman -Si %s: %w", name, err)
}

// InstallCommand renders the exact command that would install names from
// the given source, in the order given.
func (s *System) InstallCommand(source liststore.Source, names []string) []string {
	if source == liststore.SourceForeign {
		return append([]string{s.AURHelper, "-S"}, names...)
	}
	return append([]string{"sudo", "pacman", "-S"}, names...)
}

// RemoveCommand renders the exact command that would remove names.
func (s *System) RemoveCommand(source liststore.Source, names []string) []string {
	if source == liststore.SourceForeign {
		return append([]string{s.AURHelper, "-Rns"}, names...)
	}
	return append([]string{"sudo", "pacman", "-Rns"}, names...)
}

// ConfirmWord is the literal string the operator must type to confirm a
// staged command of the given source family.
func (s *System) ConfirmWord(source liststore.Source) string {
	if source == liststore.SourceForeign {
		return s.AURHelper
	}
	return "pacman"
}

// Run executes a previously staged command verbatim.
func (s *System) Run(argv []string, log io.Writer) error {
	return runCmd(log, argv[0], argv[1:]...)
}
