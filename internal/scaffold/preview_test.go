package scaffold

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestPreviewLeavesBaseUntouched(t *testing.T) {
	base := afero.NewMemMapFs()
	writeFile(t, base, "/p/README.md", "# Existing\nbody\n")
	writeFile(t, base, "/p/package.json", "{}\n")

	report, diffs, err := Preview(base, testConfig("/p"))
	if err != nil {
		t.Fatalf("Preview() error: %v", err)
	}

	if got := report.Status(Documentation); got != StatusOverwritten {
		t.Errorf("README status = %s, want overwritten", got)
	}
	if got := report.Status(Manifest); got != StatusSkipped {
		t.Errorf("package.json status = %s, want skipped", got)
	}

	if got := readFile(t, base, "/p/README.md"); got != "# Existing\nbody\n" {
		t.Errorf("base README modified: %q", got)
	}
	if exists, _ := afero.Exists(base, "/p/tsconfig.json"); exists {
		t.Error("preview wrote tsconfig.json to base")
	}

	byPath := make(map[string]FileDiff)
	for _, d := range diffs {
		byPath[d.Path] = d
	}
	if _, ok := byPath["package.json"]; ok {
		t.Error("skipped files should not have a diff")
	}

	readme, ok := byPath["README.md"]
	if !ok {
		t.Fatal("missing README diff")
	}
	assertContains(t, readme.Text, "  # Existing\n")
	assertContains(t, readme.Text, "+ [![npm](https://img.shields.io/npm/v/app?logo=npm)]")
	assertContains(t, readme.Text, "  body\n")

	ts, ok := byPath["tsconfig.json"]
	if !ok {
		t.Fatal("missing tsconfig diff")
	}
	for _, line := range strings.Split(strings.TrimSuffix(ts.Text, "\n"), "\n") {
		if !strings.HasPrefix(line, "+ ") {
			t.Errorf("new file diff line %q should be an insertion", line)
		}
	}
}

func TestLineDiff(t *testing.T) {
	got := LineDiff("a\nb\nc\n", "a\nx\nc\n")
	want := "  a\n- b\n+ x\n  c\n"
	if got != want {
		t.Errorf("LineDiff() = %q, want %q", got, want)
	}
}
