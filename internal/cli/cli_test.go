package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyConfigFileDefaults(t *testing.T) {
	content := `
out: /tmp/from-config
downloads: /tmp/from-config-dl
browser:
  headless: true
section: Criminal
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cmd := NewRootCmd()
	if err := cmd.ParseFlags([]string{"--config", path, "--out", "/tmp/from-flag"}); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}

	if err := applyConfigFile(cmd); err != nil {
		t.Fatalf("applyConfigFile failed: %v", err)
	}

	// An explicit flag beats the file; everything else falls back to it.
	if flagOut != "/tmp/from-flag" {
		t.Errorf("expected flag value to win, got %q", flagOut)
	}
	if flagDownloads != "/tmp/from-config-dl" {
		t.Errorf("expected downloads from config, got %q", flagDownloads)
	}
	if !flagHeadless {
		t.Error("expected headless from config")
	}
	if flagSection != "Criminal" {
		t.Errorf("expected section from config, got %q", flagSection)
	}
}

func TestApplyConfigFileMissing(t *testing.T) {
	cmd := NewRootCmd()
	if err := cmd.ParseFlags([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}
	if err := applyConfigFile(cmd); err == nil {
		t.Error("expected error for missing config file")
	}
}
