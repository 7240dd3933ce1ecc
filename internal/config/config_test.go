package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("DECPAC_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AURHelper != "paru" {
		t.Errorf("AURHelper = %q, want paru", cfg.AURHelper)
	}
	if !strings.HasSuffix(cfg.ListsDir, filepath.Join(".config", "decpac", "lists")) {
		t.Errorf("ListsDir = %q, want default under ~/.config/decpac", cfg.ListsDir)
	}
	if len(cfg.SyncCommand) != 0 {
		t.Errorf("SyncCommand = %v, want none", cfg.SyncCommand)
	}
}

func TestLoad_ParsesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `lists_dir: /srv/pkgs
machine: desktop
machines:
  work-tp: laptop
aur_helper: yay
sync_command: [chezmoi, add]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DECPAC_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ListsDir != "/srv/pkgs" {
		t.Errorf("ListsDir = %q", cfg.ListsDir)
	}
	if cfg.Machine != "desktop" {
		t.Errorf("Machine = %q", cfg.Machine)
	}
	if cfg.Machines["work-tp"] != "laptop" {
		t.Errorf("Machines = %v", cfg.Machines)
	}
	if cfg.AURHelper != "yay" {
		t.Errorf("AURHelper = %q", cfg.AURHelper)
	}
	if len(cfg.SyncCommand) != 2 || cfg.SyncCommand[0] != "chezmoi" {
		t.Errorf("SyncCommand = %v", cfg.SyncCommand)
	}
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("lists_dir: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DECPAC_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Error("expected a parse error")
	}
}
