package prompt

import (
	"bytes"
	"strings"
	"testing"
)

func TestLineAsk(t *testing.T) {
	var out bytes.Buffer
	p := NewLine(strings.NewReader("  my-app  \n\n"), &out)

	got, err := p.Ask("Project name", "demo")
	if err != nil {
		t.Fatalf("Ask() error: %v", err)
	}
	if got != "my-app" {
		t.Errorf("Ask() = %q, want my-app", got)
	}

	got, err = p.Ask("GitHub owner", "thegreatbey")
	if err != nil {
		t.Fatalf("Ask() error: %v", err)
	}
	if got != "" {
		t.Errorf("empty answer should return empty, got %q", got)
	}

	want := "• Project name [demo]: • GitHub owner [thegreatbey]: "
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestLineAskWithoutDefault(t *testing.T) {
	var out bytes.Buffer
	p := NewLine(strings.NewReader("vitest run\n"), &out)

	got, err := p.Ask("Custom test script (leave blank for no-op)", "")
	if err != nil {
		t.Fatalf("Ask() error: %v", err)
	}
	if got != "vitest run" {
		t.Errorf("Ask() = %q", got)
	}
	if out.String() != "• Custom test script (leave blank for no-op): " {
		t.Errorf("output = %q", out.String())
	}
}

func TestLineAskAtEOF(t *testing.T) {
	p := NewLine(strings.NewReader(""), &bytes.Buffer{})
	got, err := p.Ask("Project name", "demo")
	if err != nil {
		t.Fatalf("Ask() at EOF error: %v", err)
	}
	if got != "" {
		t.Errorf("Ask() at EOF = %q, want empty", got)
	}
}

func TestLineAskLastLineWithoutNewline(t *testing.T) {
	p := NewLine(strings.NewReader("esm"), &bytes.Buffer{})
	got, err := p.Ask("Module system (cjs/esm)", "cjs")
	if err != nil {
		t.Fatalf("Ask() error: %v", err)
	}
	if got != "esm" {
		t.Errorf("Ask() = %q, want esm", got)
	}
}

func TestLineConfirm(t *testing.T) {
	tests := []struct {
		input string
		def   bool
		want  bool
	}{
		{"y\n", false, true},
		{"YES\n", false, true},
		{"n\n", true, false},
		{"\n", false, false},
		{"\n", true, true},
		{"maybe\n", false, false},
		{"", true, true},
	}
	for _, tt := range tests {
		p := NewLine(strings.NewReader(tt.input), &bytes.Buffer{})
		got, err := p.Confirm("Add Jest?", tt.def)
		if err != nil {
			t.Fatalf("Confirm(%q) error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Confirm(%q, def=%v) = %v, want %v", tt.input, tt.def, got, tt.want)
		}
	}
}

func TestLineConfirmHint(t *testing.T) {
	var out bytes.Buffer
	p := NewLine(strings.NewReader("\n"), &out)
	if _, err := p.Confirm(`Add Jest config and set "test": "jest"?`, false); err != nil {
		t.Fatal(err)
	}
	if out.String() != `• Add Jest config and set "test": "jest"? (y/N): ` {
		t.Errorf("output = %q", out.String())
	}
}
