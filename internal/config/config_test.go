package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))

	if got := Owner(); got != "thegreatbey" {
		t.Errorf("Owner() = %q, want %q", got, "thegreatbey")
	}
	if got := Module(); got != "cjs" {
		t.Errorf("Module() = %q, want %q", got, "cjs")
	}
}

func TestLoadFromReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("owner: octocat\nmodule: esm\n"), 0644); err != nil {
		t.Fatal(err)
	}

	LoadFrom(path)

	if got := Owner(); got != "octocat" {
		t.Errorf("Owner() = %q, want %q", got, "octocat")
	}
	if got := Module(); got != "esm" {
		t.Errorf("Module() = %q, want %q", got, "esm")
	}
}

func TestSetInPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	LoadFrom(path)

	if err := SetIn(path, KeyOwner, "octocat"); err != nil {
		t.Fatalf("SetIn() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	if !strings.Contains(string(data), "owner: octocat") {
		t.Errorf("config file missing owner, got:\n%s", data)
	}

	LoadFrom(path)
	if got := Get(KeyOwner); got != "octocat" {
		t.Errorf("Get(owner) after reload = %q, want %q", got, "octocat")
	}
}

func TestSetInRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	LoadFrom(path)

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "color", "blue"},
		{"bad module", KeyModule, "amd"},
		{"blank owner", KeyOwner, "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := SetIn(path, tt.key, tt.value); err == nil {
				t.Errorf("SetIn(%q, %q) expected error", tt.key, tt.value)
			}
		})
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("config file should not be created on invalid input")
	}
}
