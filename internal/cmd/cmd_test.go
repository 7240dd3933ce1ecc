package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupLists points the config at a temp lists dir and seeds it.
func setupLists(t *testing.T, files map[string]string) {
	t.Helper()
	dir := t.TempDir()
	lists := filepath.Join(dir, "lists")
	if err := os.MkdirAll(lists, 0755); err != nil {
		t.Fatal(err)
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(lists, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "lists_dir: " + lists + "\nmachine: desktop\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DECPAC_CONFIG", cfgPath)
}

func TestAdd_RequiresNames(t *testing.T) {
	err := Add(nil, io.Discard, io.Discard)
	if err == nil || !strings.Contains(err.Error(), "package name") {
		t.Errorf("got %v, want a validation error", err)
	}
}

func TestRm_RequiresNames(t *testing.T) {
	err := Rm(nil, io.Discard, io.Discard)
	if err == nil || !strings.Contains(err.Error(), "package name") {
		t.Errorf("got %v, want a validation error", err)
	}
}

func TestMove_RequiresDestination(t *testing.T) {
	err := Move([]string{"git"}, io.Discard, io.Discard)
	if err == nil || !strings.Contains(err.Error(), "--to") {
		t.Errorf("got %v, want a validation error", err)
	}
}

func TestMove_RequiresExactlyOneName(t *testing.T) {
	err := Move([]string{"--to", "laptop", "git", "vim"}, io.Discard, io.Discard)
	if err == nil || !strings.Contains(err.Error(), "exactly one") {
		t.Errorf("got %v, want a validation error", err)
	}
}

func TestLs_PrintsListsWithoutMachineResolution(t *testing.T) {
	setupLists(t, map[string]string{
		"pacman-common.pkgs": "git\nvim\n",
		"aur-desktop.pkgs":   "topgrade\n",
	})

	var out strings.Builder
	if err := Ls(nil, &out, io.Discard); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"pacman-common", "aur-desktop", "git", "vim", "topgrade"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestLs_SourceFilter(t *testing.T) {
	setupLists(t, map[string]string{
		"pacman-common.pkgs": "git\n",
		"aur-common.pkgs":    "topgrade\n",
	})

	var out strings.Builder
	if err := Ls([]string{"--source", "aur"}, &out, io.Discard); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out.String(), "pacman-common") {
		t.Errorf("official list shown despite --source aur:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "topgrade") {
		t.Errorf("aur list missing:\n%s", out.String())
	}
}

func TestLs_RejectsUnknownSource(t *testing.T) {
	setupLists(t, nil)
	if err := Ls([]string{"--source", "brew"}, io.Discard, io.Discard); err == nil {
		t.Error("expected an error for an unknown source")
	}
}

func TestDiff_RejectsArguments(t *testing.T) {
	if err := Diff([]string{"stray"}, io.Discard, io.Discard); err == nil {
		t.Error("expected an error for stray arguments")
	}
}
