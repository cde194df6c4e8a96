package platform

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestNodeVersionNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := NodeVersion(context.Background())
	if !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("NodeVersion() error = %v, want ErrNodeNotFound", err)
	}
}

func TestNodeVersionFromStub(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stub requires a POSIX shell")
	}

	dir := t.TempDir()
	stub := "#!/bin/sh\necho v20.11.1\n"
	if err := os.WriteFile(filepath.Join(dir, "node"), []byte(stub), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	got, err := NodeVersion(context.Background())
	if err != nil {
		t.Fatalf("NodeVersion() error: %v", err)
	}
	if got != "v20.11.1" {
		t.Errorf("NodeVersion() = %q, want %q", got, "v20.11.1")
	}
}

func TestNodeVersionFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stub requires a POSIX shell")
	}

	dir := t.TempDir()
	stub := "#!/bin/sh\necho broken >&2\nexit 3\n"
	if err := os.WriteFile(filepath.Join(dir, "node"), []byte(stub), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	if _, err := NodeVersion(context.Background()); err == nil {
		t.Error("expected error from failing node")
	}
}
