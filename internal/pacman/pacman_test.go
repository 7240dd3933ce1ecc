package pacman

import (
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/nkoenig/decpac/internal/liststore"
)

func patchQuery(t *testing.T, out string, err error) {
	t.Helper()
	orig := queryOutput
	queryOutput = func(name string, args ...string) ([]byte, error) {
		return []byte(out), err
	}
	t.Cleanup(func() { queryOutput = orig })
}

func TestInstalled_ParsesQueryOutput(t *testing.T) {
	patchQuery(t, "git\ndocker\nhtop\n", nil)
	s := &System{AURHelper: "paru"}

	names, err := s.Installed()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Join(names, ",") != "git,docker,htop" {
		t.Errorf("got %v", names)
	}
}

func TestIsOfficial_RepoKnown(t *testing.T) {
	patchQuery(t, "Name : git\n", nil)
	s := &System{}
	ok, err := s.IsOfficial("git")
	if err != nil || !ok {
		t.Errorf("got %v, %v; want official", ok, err)
	}
}

func TestIsOfficial_RepoUnknownIsForeign(t *testing.T) {
	patchQuery(t, "", &exec.ExitError{})
	s := &System{}
	ok, err := s.IsOfficial("paru-bin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("repo-unknown name classified as official")
	}
}

func TestIsOfficial_ExecFailure(t *testing.T) {
	patchQuery(t, "", errors.New("pacman: not found"))
	s := &System{}
	if _, err := s.IsOfficial("git"); err == nil {
		t.Error("expected an error when pacman itself cannot run")
	}
}

func TestCommandRendering(t *testing.T) {
	s := &System{AURHelper: "yay"}

	if got := strings.Join(s.InstallCommand(liststore.SourceOfficial, []string{"git", "vim"}), " "); got != "sudo pacman -S git vim" {
		t.Errorf("official install = %q", got)
	}
	if got := strings.Join(s.InstallCommand(liststore.SourceForeign, []string{"topgrade"}), " "); got != "yay -S topgrade" {
		t.Errorf("foreign install = %q", got)
	}
	if got := strings.Join(s.RemoveCommand(liststore.SourceOfficial, []string{"git"}), " "); got != "sudo pacman -Rns git" {
		t.Errorf("official remove = %q", got)
	}
	if got := strings.Join(s.RemoveCommand(liststore.SourceForeign, []string{"topgrade"}), " "); got != "yay -Rns topgrade" {
		t.Errorf("foreign remove = %q", got)
	}
}

func TestConfirmWord(t *testing.T) {
	s := &System{AURHelper: "yay"}
	if s.ConfirmWord(liststore.SourceOfficial) != "pacman" {
		t.Error("official confirm word should be pacman")
	}
	if s.ConfirmWord(liststore.SourceForeign) != "yay" {
		t.Error("foreign confirm word should be the AUR helper")
	}
}
